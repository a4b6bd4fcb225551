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

// Snapshot creates a copy of the RAM.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.data = make([]byte, len(ram.data))
	copy(n.data, ram.data)
	return &n
}

// Plumb copies the contents of a snapshot into the RAM. The snapshot must
// have come from a RAM of the same size.
func (ram *RAM) Plumb(s *RAM) {
	copy(ram.data, s.data)
}

// Snapshot creates a copy of the latch.
func (l *Latch) Snapshot() *Latch {
	n := *l
	n.data = make([]byte, len(l.data))
	copy(n.data, l.data)
	return &n
}

// Plumb copies the contents of a snapshot into the latch.
func (l *Latch) Plumb(s *Latch) {
	copy(l.data, s.data)
}

// Snapshot creates a copy of the writable state of the bus: the cycle and
// access counters and the contents of the built-in read/write devices. The
// BIOS and the device map are not copied and the copy cannot be used as a bus.
func (mem *Memory) Snapshot() *Memory {
	return &Memory{
		cycles:       mem.cycles,
		accesses:     mem.accesses,
		RAM:          mem.RAM.Snapshot(),
		Scratchpad:   mem.Scratchpad.Snapshot(),
		MemControl:   mem.MemControl.Snapshot(),
		RAMSize:      mem.RAMSize.Snapshot(),
		CacheControl: mem.CacheControl.Snapshot(),
	}
}

// Plumb restores the writable state of the bus from a snapshot. Attached
// devices are unchanged.
func (mem *Memory) Plumb(s *Memory) {
	mem.cycles = s.cycles
	mem.accesses = s.accesses
	mem.RAM.Plumb(s.RAM)
	mem.Scratchpad.Plumb(s.Scratchpad)
	mem.MemControl.Plumb(s.MemControl)
	mem.RAMSize.Plumb(s.RAMSize)
	mem.CacheControl.Plumb(s.CacheControl)
}
