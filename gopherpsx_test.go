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

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherpsx/modalflag"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestRunMode(t *testing.T) {
	out := &strings.Builder{}
	md := &modalflag.Modes{Output: out}

	err := launch(md, []string{"RUN", "-steps", "10"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.String(), "RUN")
	test.ExpectSuccess(t, strings.Contains(out.String(), "PSX: 10 steps, 60 cycles"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "pc=bfc00028"))
}

func TestMemviz(t *testing.T) {
	out := &strings.Builder{}
	md := &modalflag.Modes{Output: out}

	fn := filepath.Join(t.TempDir(), "cpu.dot")
	err := launch(md, []string{"RUN", "-steps", "1", "-memviz", fn})
	test.ExpectSuccess(t, err)

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestBadBIOS(t *testing.T) {
	out := &strings.Builder{}
	md := &modalflag.Modes{Output: out}

	fn := filepath.Join(t.TempDir(), "bios.bin")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 1024), 0o644))

	err := launch(md, []string{"RUN", "-steps", "1", "-bios", fn})
	test.ExpectFailure(t, err)
}

func TestScriptMode(t *testing.T) {
	out := &strings.Builder{}
	md := &modalflag.Modes{Output: out}

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("step(2)\nprint(pc())\n"), 0o644))

	err := launch(md, []string{"SCRIPT", fn})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.String(), "SCRIPT")
	test.ExpectEquality(t, out.String(), "3217031176\n")

	// missing script
	md = &modalflag.Modes{Output: out}
	test.ExpectFailure(t, launch(md, []string{"SCRIPT"}))
}

func TestStrictPrefs(t *testing.T) {
	out := &strings.Builder{}
	md := &modalflag.Modes{Output: out}

	// the emulation starts in an empty BIOS so nothing touches unmapped
	// memory. the preference is accepted
	err := launch(md, []string{"RUN", "-steps", "2", "-prefs", "hardware.catchup::access"})
	test.ExpectSuccess(t, err)

	md = &modalflag.Modes{Output: out}
	err = launch(md, []string{"RUN", "-steps", "2", "-strict"})
	test.ExpectSuccess(t, err)
}

func TestVersion(t *testing.T) {
	out := &strings.Builder{}
	md := &modalflag.Modes{Output: out}

	err := launch(md, []string{"VERSION"})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "GopherPSX "))
}

func TestBusMap(t *testing.T) {
	out := &strings.Builder{}
	md := &modalflag.Modes{Output: out}

	err := launch(md, []string{"RUN", "-steps", "1", "-log"})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "bus map:"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "1f801080 -> 1f8010ff\tDMA"))
}

func TestDMAFaults(t *testing.T) {
	// a BIOS that starts a linked list transfer to RAM on the GPU channel
	bios := make([]byte, 512*1024)
	for i, w := range []uint32{
		0x3c081f80, // lui $t0, 0x1f80
		0x35081000, // ori $t0, $t0, 0x1000
		0x34090800, // ori $t1, $zero, 0x0800
		0xad0900f0, // sw $t1, 0xf0($t0) (DPCR)
		0x3c090100, // lui $t1, 0x0100
		0x35290400, // ori $t1, $t1, 0x0400
		0xad0900a8, // sw $t1, 0xa8($t0) (GPU CHCR)
	} {
		binary.LittleEndian.PutUint32(bios[i*4:], w)
	}
	fn := filepath.Join(t.TempDir(), "bios.bin")
	test.DemandSuccess(t, os.WriteFile(fn, bios, 0o644))

	out := &strings.Builder{}
	md := &modalflag.Modes{Output: out}
	err := launch(md, []string{"RUN", "-steps", "8", "-bios", fn})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "dma faults:"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "bad direction: linked list to RAM"))

	// no faults, no fault log
	out.Reset()
	md = &modalflag.Modes{Output: out}
	err = launch(md, []string{"RUN", "-steps", "8"})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !strings.Contains(out.String(), "dma faults:"))
}
