// This file is part of GopherPSX.
//
// GopherPSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPSX.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/prefs"
	"github.com/jetsetilly/gopherpsx/test"
)

// the format of the -prefs flag of the gopherpsx command
const hardwarePrefs = " hardware.openbus::0 ;hardware.catchup:: access; hardware.strictbus::true"

func TestCommandLineFormat(t *testing.T) {
	size := prefs.SizeCommandLineStack()

	// nothing has been used so everything is returned. keys are sorted and
	// whitespace is removed
	prefs.PushCommandLineStack(hardwarePrefs)
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), size+1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(),
		"hardware.catchup::access; hardware.openbus::0; hardware.strictbus::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), size)

	// malformed entries are dropped. a single colon is not a separator
	prefs.PushCommandLineStack("hardware.openbus:0; hardware.dmagranularity::16;")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.dmagranularity::16")
}

func TestCommandLineConsumed(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack(hardwarePrefs + "; hardware.unknown::1")

	var openBus prefs.Int
	var catchUp prefs.String
	var strict prefs.Bool
	test.ExpectSuccess(t, openBus.Set(0xff))
	test.ExpectSuccess(t, dsk.Add("hardware.openbus", &openBus))
	test.ExpectSuccess(t, dsk.Add("hardware.catchup", &catchUp))
	test.ExpectSuccess(t, dsk.Add("hardware.strictbus", &strict))

	test.ExpectEquality(t, openBus.Get().(int), 0)
	test.ExpectEquality(t, catchUp.Get().(string), "access")
	test.ExpectEquality(t, strict.Get().(bool), true)

	// a value is given to the first key that asks for it
	ok, _ := prefs.GetCommandLinePref("hardware.openbus")
	test.ExpectFailure(t, ok)

	// only keys that no preference asked for are left over
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.unknown::1")
}

func TestCommandLineGroups(t *testing.T) {
	// a script can push its own group on top of the group from the command
	// line. values are only taken from the most recent group
	prefs.PushCommandLineStack("hardware.openbus::0")
	prefs.PushCommandLineStack("hardware.catchup::instruction")

	ok, _ := prefs.GetCommandLinePref("hardware.openbus")
	test.ExpectFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("hardware.catchup")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "instruction")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.openbus::0")
}
