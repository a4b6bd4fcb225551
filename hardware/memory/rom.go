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
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/instance"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
)

// InvalidImageSize is returned by ROM.Load() when the data is not the same
// size as the ROM.
const InvalidImageSize = "rom: %s image is %d bytes, expected %d"

// the number of cycles for any access to ROM. the BIOS is on an 8 bit bus and
// is much slower than RAM.
const romLatency = 6

// ROM is an area of read-only memory. Writes from the bus are dropped. The
// contents of the ROM can be changed with Load() or Poke().
type ROM struct {
	RAM
	env *instance.Instance
}

// NewROM is the preferred method of initialisation for the ROM type.
func NewROM(label string, size uint32) *ROM {
	return &ROM{
		RAM: *NewRAM(label, size),
	}
}

// Plumb the instance into the ROM. The instance is only used for logging.
func (rom *ROM) Plumb(env *instance.Instance) {
	rom.env = env
}

// Load an image into ROM. The image must be exactly the size of the ROM.
func (rom *ROM) Load(data []byte) error {
	if len(data) != len(rom.data) {
		return curated.Errorf(InvalidImageSize, rom.label, len(data), len(rom.data))
	}
	copy(rom.data, data)
	return nil
}

// Write implements the bus.Device interface. Writes to ROM are dropped.
func (rom *ROM) Write(offset uint32, width bus.Width, value uint32) error {
	if rom.env != nil {
		rom.env.Log.Logf(rom.env, "rom", "dropped %s write to %s at offset %08x", width, rom.label, offset)
	}
	return nil
}

// Cycles implements the bus.Latency interface.
func (rom *ROM) Cycles(_ bus.Width) int {
	return romLatency
}

// Poke implements the bus.DebuggerBus interface. Unlike Write() the value
// is changed.
func (rom *ROM) Poke(offset uint32, width bus.Width, value uint32) error {
	return rom.RAM.Write(offset, width, value)
}
