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

package faults_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/dma/faults"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestFaults(t *testing.T) {
	flt := faults.NewFaults()

	flt.NewEntry("linked list", faults.MisalignedPointer, 2, 0x1000, 0x1002)
	flt.NewEntry("linked list", faults.MisalignedPointer, 2, 0x1000, 0x1002)
	flt.NewEntry("linked list", faults.OutsideRAM, 2, 0x1000, 0x300000)

	test.ExpectEquality(t, flt.Len(), 2)
	test.ExpectEquality(t, flt.Log[0].Count, 2)
	test.ExpectEquality(t, flt.Log[1].Count, 1)

	w := &test.CompareWriter{}
	flt.WriteLog(w)
	test.ExpectSuccess(t, w.Compare(`misaligned pointer: linked list: 001002 (channel 2, MADR: 001000)
outside RAM: linked list: 300000 (channel 2, MADR: 001000)
`))

	// copy is independent of the original
	c := flt.Copy()
	flt.Clear()
	test.ExpectEquality(t, flt.Len(), 0)
	test.ExpectEquality(t, c.Len(), 2)

	c.NewEntry("linked list", faults.MisalignedPointer, 2, 0x1000, 0x1002)
	test.ExpectEquality(t, c.Log[0].Count, 3)
}
