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

package dma

import (
	"fmt"
	"strings"
)

// Sync is the synchronisation mode of a channel.
type Sync int

// List of valid Sync values.
const (
	Manual Sync = iota
	Request
	LinkedList
	Reserved
)

func (s Sync) String() string {
	switch s {
	case Manual:
		return "manual"
	case Request:
		return "request"
	case LinkedList:
		return "linked list"
	}
	return "reserved"
}

// Control is the value of a channel control register (CHCR).
type Control uint32

// bits in the channel control register.
const (
	ctrlFromRAM  Control = 1 << 0
	ctrlBackward Control = 1 << 1
	ctrlChopping Control = 1 << 8
	ctrlBusy     Control = 1 << 24
	ctrlTrigger  Control = 1 << 28

	// bits of CHCR that can be written by the CPU
	ctrlWritable Control = 0x71770703

	// the OTC channel only allows the busy, trigger and one of the unknown
	// bits to be written. the step direction is always backwards
	ctrlWritableOTC Control = 0x51000000
	ctrlFixedOTC    Control = ctrlBackward
)

// FromRAM returns true if the transfer direction is from RAM to the port.
func (c Control) FromRAM() bool {
	return c&ctrlFromRAM == ctrlFromRAM
}

// Backward returns true if the memory address decreases after every word.
func (c Control) Backward() bool {
	return c&ctrlBackward == ctrlBackward
}

// Chopping returns true if a manual transfer is split into bursts.
func (c Control) Chopping() bool {
	return c&ctrlChopping == ctrlChopping
}

// Sync returns the synchronisation mode.
func (c Control) Sync() Sync {
	return Sync((c >> 9) & 0x03)
}

// DMAWindow is the size of a burst when chopping is enabled, expressed as a
// power of two.
func (c Control) DMAWindow() int {
	return int((c >> 16) & 0x07)
}

// CPUWindow is the time given to the CPU between bursts when chopping is
// enabled, expressed as a power of two.
func (c Control) CPUWindow() int {
	return int((c >> 20) & 0x07)
}

// Busy returns true if the channel is enabled. The bit is cleared by the
// engine when the transfer completes.
func (c Control) Busy() bool {
	return c&ctrlBusy == ctrlBusy
}

// Trigger returns true if the manual trigger bit is set.
func (c Control) Trigger() bool {
	return c&ctrlTrigger == ctrlTrigger
}

func (c Control) String() string {
	s := strings.Builder{}
	if c.FromRAM() {
		s.WriteString("from RAM")
	} else {
		s.WriteString("to RAM")
	}
	if c.Backward() {
		s.WriteString(" backward")
	}
	s.WriteString(", ")
	s.WriteString(c.Sync().String())
	if c.Chopping() {
		fmt.Fprintf(&s, ", chop %d/%d", 1<<c.DMAWindow(), 1<<c.CPUWindow())
	}
	if c.Busy() {
		s.WriteString(", busy")
	}
	if c.Trigger() {
		s.WriteString(", trigger")
	}
	return s.String()
}

// bits in the interrupt register (DICR).
const (
	dicrForce        = 1 << 15
	dicrMasterEnable = 1 << 23
	dicrMasterFlag   = 1 << 31

	dicrEnableShift = 16
	dicrFlagShift   = 24

	// bits of DICR that are written directly. the flag bits are cleared by
	// writing a one and the master flag cannot be written at all
	dicrWritable = 0x00ff803f
	dicrFlags    = 0x7f000000
)

// the reset value of DPCR.
const dpcrReset = 0x07654321
