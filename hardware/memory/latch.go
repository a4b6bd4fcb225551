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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
)

// Latch is a small area of registers that remember the last value written to
// them and have no other effect. Used for the memory control registers, the
// RAM size register and the cache control register, all of which configure
// the real hardware in ways that are not emulated.
type Latch struct {
	label string
	data  []byte
}

// NewLatch is the preferred method of initialisation for the Latch type. The
// size is rounded up to a multiple of four so that every offset in the range
// can be accessed as a word.
func NewLatch(label string, size uint32) *Latch {
	return &Latch{
		label: label,
		data:  make([]byte, (size+3)&^3),
	}
}

func (l *Latch) String() string {
	return fmt.Sprintf("%s: % x", l.label, l.data)
}

// Clear all registers in the latch.
func (l *Latch) Clear() {
	clear(l.data)
}

// Data returns the underlying byte slice.
func (l *Latch) Data() []byte {
	return l.data
}

// Read implements the bus.Device interface.
func (l *Latch) Read(offset uint32, width bus.Width) (uint32, error) {
	return readLE(l.data, offset, width), nil
}

// Write implements the bus.Device interface.
func (l *Latch) Write(offset uint32, width bus.Width, value uint32) error {
	writeLE(l.data, offset, width, value)
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (l *Latch) Peek(offset uint32, width bus.Width) (uint32, error) {
	return l.Read(offset, width)
}

// Poke implements the bus.DebuggerBus interface.
func (l *Latch) Poke(offset uint32, width bus.Width, value uint32) error {
	return l.Write(offset, width, value)
}
