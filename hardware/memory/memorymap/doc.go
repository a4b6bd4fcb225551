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

// Package memorymap describes the physical memory map of the PSX and the
// translation of CPU (virtual) addresses to physical addresses.
//
// The CPU address space is divided into four segments by the top three bits
// of the address. KUSEG and KSEG0 are cached views of physical memory, KSEG1
// is an uncached view of the same memory and KSEG2 holds the cache control
// register. MaskRegion() translates a CPU address into a physical address by
// discarding the segment bits.
//
//	0x00000000 -> 0x7fffffff	KUSEG
//	0x80000000 -> 0x9fffffff	KSEG0
//	0xa0000000 -> 0xbfffffff	KSEG1
//	0xc0000000 -> 0xffffffff	KSEG2
//
// Each area of the physical memory map has an origin and a size. The Area
// type identifies the area and the Range() function returns the extent of
// the area. For a summary of the entire map see the Summary() function.
//
// Not every area is emulated by the core. The areas belonging to the GPU, SPU,
// CD-ROM, MDEC, timers and peripheral I/O are the register windows of external
// devices. The hardware package allows those devices to attach themselves to
// the bus at the ranges defined here.
package memorymap
