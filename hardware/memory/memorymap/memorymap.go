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

package memorymap

import "fmt"

// Range is a region of physical memory.
type Range struct {
	Origin uint32
	Size   uint32
}

func (r Range) String() string {
	return fmt.Sprintf("%08x -> %08x", r.Origin, r.Memtop())
}

// Memtop returns the last address in the range.
func (r Range) Memtop() uint32 {
	return r.Origin + r.Size - 1
}

// Contains returns true if the physical address is in the range. The offset of
// the address from the origin is also returned.
func (r Range) Contains(address uint32) (uint32, bool) {
	if address < r.Origin {
		return 0, false
	}
	offset := address - r.Origin
	return offset, offset < r.Size
}

// Overlaps returns true if the two ranges share any address.
func (r Range) Overlaps(o Range) bool {
	return r.Origin <= o.Memtop() && o.Origin <= r.Memtop()
}

// Area represents the different areas of memory.
type Area int

// The different memory areas in the PSX. Areas are listed in order of
// origin.
const (
	Undefined Area = iota
	RAM
	Expansion1
	Scratchpad
	MemControl
	PeripheralIO
	RAMSize
	Interrupts
	DMA
	Timers
	CDROM
	GPU
	MDEC
	SPU
	Expansion2
	Expansion3
	BIOS
	CacheControl
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Expansion1:
		return "Expansion 1"
	case Scratchpad:
		return "Scratchpad"
	case MemControl:
		return "Memory Control"
	case PeripheralIO:
		return "Peripheral I/O"
	case RAMSize:
		return "RAM Size"
	case Interrupts:
		return "Interrupts"
	case DMA:
		return "DMA"
	case Timers:
		return "Timers"
	case CDROM:
		return "CD-ROM"
	case GPU:
		return "GPU"
	case MDEC:
		return "MDEC"
	case SPU:
		return "SPU"
	case Expansion2:
		return "Expansion 2"
	case Expansion3:
		return "Expansion 3"
	case BIOS:
		return "BIOS"
	case CacheControl:
		return "Cache Control"
	}
	return "undefined"
}

// The size of RAM and BIOS. RAM is mirrored four times in the RAM area.
const (
	SizeRAM  = uint32(0x00200000)
	SizeBIOS = uint32(0x00080000)
)

// ResetVector is the address of the first instruction executed after a reset.
// It is the start of the BIOS in the uncached KSEG1 segment.
const ResetVector = uint32(0xbfc00000)

// the extent of each area, indexed by Area.
var ranges = [...]Range{
	Undefined:    {},
	RAM:          {Origin: 0x00000000, Size: SizeRAM * 4},
	Expansion1:   {Origin: 0x1f000000, Size: 0x00800000},
	Scratchpad:   {Origin: 0x1f800000, Size: 0x00000400},
	MemControl:   {Origin: 0x1f801000, Size: 0x00000024},
	PeripheralIO: {Origin: 0x1f801040, Size: 0x00000020},
	RAMSize:      {Origin: 0x1f801060, Size: 0x00000004},
	Interrupts:   {Origin: 0x1f801070, Size: 0x00000008},
	DMA:          {Origin: 0x1f801080, Size: 0x00000080},
	Timers:       {Origin: 0x1f801100, Size: 0x00000030},
	CDROM:        {Origin: 0x1f801800, Size: 0x00000004},
	GPU:          {Origin: 0x1f801810, Size: 0x00000008},
	MDEC:         {Origin: 0x1f801820, Size: 0x00000008},
	SPU:          {Origin: 0x1f801c00, Size: 0x00000400},
	Expansion2:   {Origin: 0x1f802000, Size: 0x00000088},
	Expansion3:   {Origin: 0x1fa00000, Size: 0x00200000},
	BIOS:         {Origin: 0x1fc00000, Size: SizeBIOS},
	CacheControl: {Origin: 0xfffe0130, Size: 0x00000004},
}

// Range returns the extent of the area in physical memory. The Undefined area
// returns a zero sized range.
func (a Area) Range() Range {
	if a < 0 || int(a) >= len(ranges) {
		return Range{}
	}
	return ranges[a]
}

// Segment is one of the four divisions of the CPU address space.
type Segment int

// List of valid Segment values.
const (
	KUSEG Segment = iota
	KSEG0
	KSEG1
	KSEG2
)

func (s Segment) String() string {
	switch s {
	case KUSEG:
		return "KUSEG"
	case KSEG0:
		return "KSEG0"
	case KSEG1:
		return "KSEG1"
	case KSEG2:
		return "KSEG2"
	}
	return "unknown segment"
}

// SegmentOf returns the segment the CPU address is in.
func SegmentOf(address uint32) Segment {
	switch {
	case address < 0x80000000:
		return KUSEG
	case address < 0xa0000000:
		return KSEG0
	case address < 0xc0000000:
		return KSEG1
	}
	return KSEG2
}

// region masks indexed by the top three bits of the address. KSEG2 addresses
// are not translated.
var regionMask = [8]uint32{
	// KUSEG: 2048MB
	0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	// KSEG0: 512MB
	0x7fffffff,
	// KSEG1: 512MB
	0x1fffffff,
	// KSEG2: 1024MB
	0xffffffff, 0xffffffff,
}

// MaskRegion translates a CPU address into a physical address.
func MaskRegion(address uint32) uint32 {
	return address & regionMask[address>>29]
}

// MapAddress translates the CPU address into a physical address and returns
// the area of memory it falls in.
func MapAddress(address uint32) (uint32, Area) {
	phys := MaskRegion(address)
	for a := RAM; a <= CacheControl; a++ {
		if _, ok := ranges[a].Contains(phys); ok {
			return phys, a
		}
	}
	return phys, Undefined
}
