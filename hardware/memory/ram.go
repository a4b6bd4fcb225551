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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/random"
)

// RAM is a little-endian area of read/write memory. The size of RAM must be a
// power of two. Offsets beyond the size of the RAM wrap around, which is how
// main RAM is mirrored in the RAM area of the memory map.
type RAM struct {
	label string
	data  []byte
	mask  uint32
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, size uint32) *RAM {
	return &RAM{
		label: label,
		data:  make([]byte, size),
		mask:  size - 1,
	}
}

func (ram *RAM) String() string {
	return fmt.Sprintf("%s: %dKB", ram.label, len(ram.data)/1024)
}

// Label returns the name of the RAM.
func (ram *RAM) Label() string {
	return ram.label
}

// Size returns the number of bytes in RAM.
func (ram *RAM) Size() uint32 {
	return uint32(len(ram.data))
}

// Clear sets every byte of RAM to zero.
func (ram *RAM) Clear() {
	clear(ram.data)
}

// Randomise sets every byte of RAM to a random value.
func (ram *RAM) Randomise(rnd *random.Random) {
	for i := 0; i < len(ram.data); i += 4 {
		binary.LittleEndian.PutUint32(ram.data[i:], rnd.Uint32())
	}
}

// Data returns the underlying byte slice. Changes to the slice change the
// contents of RAM.
func (ram *RAM) Data() []byte {
	return ram.data
}

// Read implements the bus.Device interface.
func (ram *RAM) Read(offset uint32, width bus.Width) (uint32, error) {
	return readLE(ram.data, offset&ram.mask, width), nil
}

// Write implements the bus.Device interface.
func (ram *RAM) Write(offset uint32, width bus.Width, value uint32) error {
	writeLE(ram.data, offset&ram.mask, width, value)
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (ram *RAM) Peek(offset uint32, width bus.Width) (uint32, error) {
	return ram.Read(offset, width)
}

// Poke implements the bus.DebuggerBus interface.
func (ram *RAM) Poke(offset uint32, width bus.Width, value uint32) error {
	return ram.Write(offset, width, value)
}

// read a value of the width from data. a value that runs past the end of the
// slice continues from the start
func readLE(data []byte, offset uint32, width bus.Width) uint32 {
	n := width.Bytes()
	if int(offset+n) > len(data) {
		var v uint32
		for i := range n {
			v |= uint32(data[int(offset+i)%len(data)]) << (i * 8)
		}
		return v
	}

	switch width {
	case bus.Byte:
		return uint32(data[offset])
	case bus.Half:
		return uint32(binary.LittleEndian.Uint16(data[offset:]))
	}
	return binary.LittleEndian.Uint32(data[offset:])
}

// write a value of the width to data. a value that runs past the end of the
// slice continues from the start
func writeLE(data []byte, offset uint32, width bus.Width, value uint32) {
	n := width.Bytes()
	if int(offset+n) > len(data) {
		for i := range n {
			data[int(offset+i)%len(data)] = uint8(value >> (i * 8))
		}
		return
	}

	switch width {
	case bus.Byte:
		data[offset] = uint8(value)
	case bus.Half:
		binary.LittleEndian.PutUint16(data[offset:], uint16(value))
	default:
		binary.LittleEndian.PutUint32(data[offset:], value)
	}
}
