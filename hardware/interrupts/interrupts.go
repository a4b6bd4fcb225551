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

package interrupts

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
)

// Line is an interrupt line. The value of the line is the bit number in the
// pending and mask registers.
type Line int

// List of valid Line values.
const (
	VBlank Line = iota
	GPU
	CDROM
	DMA
	Timer0
	Timer1
	Timer2
	Pad
	SIO
	SPU
	Lightpen

	// the number of interrupt lines
	NumLines
)

func (l Line) String() string {
	switch l {
	case VBlank:
		return "VBLANK"
	case GPU:
		return "GPU"
	case CDROM:
		return "CDROM"
	case DMA:
		return "DMA"
	case Timer0:
		return "TMR0"
	case Timer1:
		return "TMR1"
	case Timer2:
		return "TMR2"
	case Pad:
		return "PAD"
	case SIO:
		return "SIO"
	case SPU:
		return "SPU"
	case Lightpen:
		return "LIGHTPEN"
	}
	return fmt.Sprintf("line %d", int(l))
}

// Lines is a set of interrupt lines in the same layout as the pending and mask
// registers.
type Lines uint32

// LinesMask is the set of every interrupt line.
const LinesMask = Lines(1<<NumLines - 1)

// Bit returns the set with only line l.
func Bit(l Line) Lines {
	return Lines(1 << l)
}

// Has returns true if line l is in the set.
func (s Lines) Has(l Line) bool {
	return s&Bit(l) != 0
}

func (s Lines) String() string {
	var n []string
	for l := range NumLines {
		if s.Has(l) {
			n = append(n, l.String())
		}
	}
	if len(n) == 0 {
		return "-"
	}
	return strings.Join(n, " ")
}

// register offsets in the bus window.
const (
	regStatus = 0x0
	regMask   = 0x4
)

// Controller is the interrupt controller.
type Controller struct {
	pending Lines
	mask    Lines

	// the most recent level of each line given to Signal()
	levels Lines
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

func (ic *Controller) String() string {
	return fmt.Sprintf("stat=%03x mask=%03x [%s]", uint32(ic.pending), uint32(ic.mask), ic.pending&ic.mask)
}

// Snapshot creates a copy of the controller in its current state.
func (ic *Controller) Snapshot() *Controller {
	n := *ic
	return &n
}

// Plumb restores the state of the controller from a snapshot.
func (ic *Controller) Plumb(s *Controller) {
	*ic = *s
}

// Reset the controller to its power-on state.
func (ic *Controller) Reset() {
	ic.pending = 0
	ic.mask = 0
	ic.levels = 0
}

// Raise sets the pending bit for the line. The mask has no effect on whether
// the bit is set.
func (ic *Controller) Raise(line Line) {
	ic.pending |= Bit(line) & LinesMask
}

// Signal sets the level of a level-driven line. The pending bit is set only
// when the level changes from false to true.
func (ic *Controller) Signal(line Line, level bool) {
	b := Bit(line) & LinesMask
	if level && ic.levels&b == 0 {
		ic.pending |= b
	}
	if level {
		ic.levels |= b
	} else {
		ic.levels &^= b
	}
}

// Acknowledge clears the pending bits for the lines.
func (ic *Controller) Acknowledge(lines Lines) {
	ic.pending &^= lines
}

// Pending returns the pending register.
func (ic *Controller) Pending() Lines {
	return ic.pending
}

// Mask returns the mask register.
func (ic *Controller) Mask() Lines {
	return ic.mask
}

// SetMask sets the mask register.
func (ic *Controller) SetMask(mask Lines) {
	ic.mask = mask & LinesMask
}

// Active returns true if any pending line is not masked. This is the value
// seen by the CPU.
func (ic *Controller) Active() bool {
	return ic.pending&ic.mask != 0
}

// read a register without side effects. reading has no side effects on this
// device so Read() and Peek() are the same
func (ic *Controller) reg(offset uint32) uint32 {
	switch offset &^ 3 {
	case regStatus:
		return uint32(ic.pending)
	case regMask:
		return uint32(ic.mask)
	}
	return 0
}

// Read implements the bus.Device interface.
func (ic *Controller) Read(offset uint32, width bus.Width) (uint32, error) {
	return ic.reg(offset) >> ((offset & 3) * 8), nil
}

// Write implements the bus.Device interface. Accesses narrower than a word
// affect only the bits of the register covered by the access.
func (ic *Controller) Write(offset uint32, width bus.Width, value uint32) error {
	shift := (offset & 3) * 8
	bits := Lines(width.Mask() << shift)
	v := Lines(value << shift)

	switch offset &^ 3 {
	case regStatus:
		ic.Acknowledge(^v & bits)
	case regMask:
		ic.SetMask(ic.mask&^bits | v&bits)
	}
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (ic *Controller) Peek(offset uint32, width bus.Width) (uint32, error) {
	return ic.Read(offset, width)
}

// Poke implements the bus.DebuggerBus interface. Unlike Write(), a poke of
// the status register sets the register to the value.
func (ic *Controller) Poke(offset uint32, width bus.Width, value uint32) error {
	switch offset &^ 3 {
	case regStatus:
		ic.pending = Lines(value) & LinesMask
	case regMask:
		ic.SetMask(Lines(value))
	}
	return nil
}
