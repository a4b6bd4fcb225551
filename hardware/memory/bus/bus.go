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

package bus

import "fmt"

// Width of a bus access in bits.
type Width int

// List of valid Width values.
const (
	Byte Width = 8
	Half Width = 16
	Word Width = 32
)

func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Half:
		return "half"
	case Word:
		return "word"
	}
	return fmt.Sprintf("%d bit", int(w))
}

// Bytes returns the number of bytes in an access of the width.
func (w Width) Bytes() uint32 {
	return uint32(w) / 8
}

// Mask returns the bits of a 32 bit value that are significant for the width.
func (w Width) Mask() uint32 {
	switch w {
	case Byte:
		return 0x000000ff
	case Half:
		return 0x0000ffff
	}
	return 0xffffffff
}

// Aligned returns true if the address is aligned for the width.
func (w Width) Aligned(address uint32) bool {
	return address&(w.Bytes()-1) == 0
}

// Device defines the operations for a device attached to the bus. The value
// for both Read() and Write() is in the low bits of the uint32 for accesses
// narrower than Word.
//
// An error should be returned only for conditions that are the fault of the
// emulation, not the emulated program.
type Device interface {
	Read(offset uint32, width Width) (uint32, error)
	Write(offset uint32, width Width, value uint32) error
}

// Latency is implemented by devices that take a number of cycles to access
// other than one.
type Latency interface {
	Cycles(width Width) int
}

// DebuggerBus defines the meta-operations for devices on the bus. Think of
// these functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. Peek and Poke should have no side effects
// other than the change of the poked value.
type DebuggerBus interface {
	Peek(offset uint32, width Width) (uint32, error)
	Poke(offset uint32, width Width, value uint32) error
}

// Memory defines the operations of the bus itself, as seen from the CPU and
// the DMA engine. The address is a CPU address.
type Memory interface {
	Read(address uint32, width Width) (uint32, error)
	Write(address uint32, width Width, value uint32) error
}
