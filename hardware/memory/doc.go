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

// Package memory implements the PSX system bus. The bus and memorymap
// sub-packages help with this.
//
// The Memory type is the bus. Devices are attached to the bus at a range of
// physical addresses with the Attach() function. Overlapping ranges are
// rejected when they are attached, which means that the map is always
// consistent by the time the emulation starts. The bus is sealed by the
// hardware package when the first instruction is executed and no more
// devices can be attached after that.
//
// Accesses from the CPU and the DMA engine use the Read() and Write()
// functions. The address is translated from a CPU address into a physical
// address with memorymap.MaskRegion() and then located in the map by binary
// search. The device sees only the offset of the address from the origin of
// its range.
//
//	CPU ---- Read()/Write() ---- MEMORY ---- RAM
//	                               |  \
//	DMA ---- Read()/Write() -------'   \---- BIOS
//	                               |
//	                               |-------- Scratchpad
//	                               |
//	                               |-------- DMA registers
//	                               |
//	                               `-------- Interrupt registers, etc.
//
// Each access advances the cycle counter by the latency of the device. The
// counter is used for coarse timing only and is available with the Cycles()
// function.
//
// Access to an address that has no device is handled according to the
// StrictBus preference. In strict mode the access results in an error that
// can be tested for with curated.Is(err, memory.UnmappedAccess). In lenient
// mode a read returns the OpenBus preference value and a write is dropped.
//
// The Peek() and Poke() functions are for debuggers and other tools. They do
// not advance the cycle counter and are not subject to the StrictBus
// preference.
package memory
