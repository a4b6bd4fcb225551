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
	"slices"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/instance"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
)

// Sentinal error patterns returned by the memory package.
const (
	UnmappedAccess   = "bus: unmapped %s %s at %08x"
	OverlappingRange = "bus: %s (%s) overlaps %s (%s)"
	InvalidRange     = "bus: %s has an invalid range (%s)"
	BusSealed        = "bus: cannot attach %s after the emulation has started"
	NoInspection     = "bus: %s does not support inspection"
	Unmapped         = "bus: no device at %08x"
	DeviceError      = "bus: %s: %v"
	CrossesRange     = "bus: %s at %08x crosses the end of %s"
)

// entry in the bus map.
type entry struct {
	label   string
	rng     memorymap.Range
	dev     bus.Device
	latency bus.Latency
}

// Memory is the system bus of the PSX. It implements the bus.Memory
// interface.
type Memory struct {
	env *instance.Instance

	// sorted by origin. ranges do not overlap
	entries []entry

	// no more devices can be attached once the bus is sealed
	sealed bool

	// number of cycles and accesses since reset
	cycles   uint64
	accesses uint64

	// the built-in devices
	RAM          *RAM
	Scratchpad   *RAM
	BIOS         *ROM
	MemControl   *Latch
	RAMSize      *Latch
	CacheControl *Latch
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The built-in devices are attached to the map.
func NewMemory(env *instance.Instance) (*Memory, error) {
	mem := &Memory{
		env:          env,
		RAM:          NewRAM("RAM", memorymap.SizeRAM),
		Scratchpad:   NewRAM("Scratchpad", memorymap.Scratchpad.Range().Size),
		BIOS:         NewROM("BIOS", memorymap.SizeBIOS),
		MemControl:   NewLatch("Memory Control", memorymap.MemControl.Range().Size),
		RAMSize:      NewLatch("RAM Size", memorymap.RAMSize.Range().Size),
		CacheControl: NewLatch("Cache Control", memorymap.CacheControl.Range().Size),
	}

	mem.BIOS.Plumb(env)

	for _, a := range []struct {
		area memorymap.Area
		dev  bus.Device
	}{
		{area: memorymap.RAM, dev: mem.RAM},
		{area: memorymap.Scratchpad, dev: mem.Scratchpad},
		{area: memorymap.MemControl, dev: mem.MemControl},
		{area: memorymap.RAMSize, dev: mem.RAMSize},
		{area: memorymap.BIOS, dev: mem.BIOS},
		{area: memorymap.CacheControl, dev: mem.CacheControl},
	} {
		if err := mem.Attach(a.area.String(), a.area.Range(), a.dev); err != nil {
			return nil, err
		}
	}

	return mem, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d devices, %d cycles", len(mem.entries), mem.cycles)
}

// Summary returns a multiline string listing the devices attached to the
// bus, in order of origin.
func (mem *Memory) Summary() string {
	s := strings.Builder{}
	for _, e := range mem.entries {
		fmt.Fprintf(&s, "%s\t%s\n", e.rng, e.label)
	}
	return s.String()
}

// Attach a device to the bus at the physical range. The range must not
// overlap any other range and cannot be attached after the bus has been
// sealed.
func (mem *Memory) Attach(label string, rng memorymap.Range, dev bus.Device) error {
	if mem.sealed {
		return curated.Errorf(BusSealed, label)
	}
	if rng.Size == 0 || rng.Memtop() < rng.Origin {
		return curated.Errorf(InvalidRange, label, rng)
	}

	idx, _ := slices.BinarySearchFunc(mem.entries, rng.Origin, func(e entry, origin uint32) int {
		if e.rng.Origin < origin {
			return -1
		}
		if e.rng.Origin > origin {
			return 1
		}
		return 0
	})

	// only the neighbours of the insertion point can overlap
	for _, i := range []int{idx - 1, idx} {
		if i >= 0 && i < len(mem.entries) && mem.entries[i].rng.Overlaps(rng) {
			return curated.Errorf(OverlappingRange, label, rng, mem.entries[i].label, mem.entries[i].rng)
		}
	}

	e := entry{
		label: label,
		rng:   rng,
		dev:   dev,
	}
	if l, ok := dev.(bus.Latency); ok {
		e.latency = l
	}

	mem.entries = slices.Insert(mem.entries, idx, e)

	return nil
}

// Seal the bus. No more devices can be attached.
func (mem *Memory) Seal() {
	mem.sealed = true
}

// Sealed returns true if the bus has been sealed.
func (mem *Memory) Sealed() bool {
	return mem.sealed
}

// lookup returns the entry for the physical address or nil if there is no
// device at that address.
func (mem *Memory) lookup(phys uint32) *entry {
	i, _ := slices.BinarySearchFunc(mem.entries, phys, func(e entry, phys uint32) int {
		if e.rng.Memtop() < phys {
			return -1
		}
		if e.rng.Origin > phys {
			return 1
		}
		return 0
	})
	if i < len(mem.entries) {
		if _, ok := mem.entries[i].rng.Contains(phys); ok {
			return &mem.entries[i]
		}
	}
	return nil
}

// Reset the cycle counter and the built-in devices. RAM and the scratchpad
// are randomised if the RandomState preference is set. The BIOS is not
// changed.
func (mem *Memory) Reset() {
	mem.cycles = 0
	mem.accesses = 0

	if mem.env.Prefs.RandomState.Get().(bool) {
		mem.RAM.Randomise(mem.env.Random)
		mem.Scratchpad.Randomise(mem.env.Random)
	} else {
		mem.RAM.Clear()
		mem.Scratchpad.Clear()
	}

	mem.MemControl.Clear()
	mem.RAMSize.Clear()
	mem.CacheControl.Clear()
}

// Cycles returns the number of cycles consumed by bus accesses since reset.
func (mem *Memory) Cycles() uint64 {
	return mem.cycles
}

// Accesses returns the number of bus accesses since reset.
func (mem *Memory) Accesses() uint64 {
	return mem.accesses
}

// an access that starts in the range but does not end in it. only possible
// for misaligned accesses, which only Peek() and Poke() allow
func (e *entry) crosses(phys uint32, width bus.Width) bool {
	return phys-e.rng.Origin+width.Bytes() > e.rng.Size
}

func (e *entry) cycles(width bus.Width) uint64 {
	if e.latency == nil {
		return 1
	}
	return uint64(e.latency.Cycles(width))
}

// unmapped access. returns an error in strict mode
func (mem *Memory) unmapped(op string, address uint32, width bus.Width) error {
	mem.cycles++
	if mem.env.Prefs.StrictBus.Get().(bool) {
		return curated.Errorf(UnmappedAccess, width, op, address)
	}
	mem.env.Log.Logf(mem.env, "bus", "unmapped %s %s at %08x", width, op, address)
	return nil
}

// Read implements the bus.Memory interface.
func (mem *Memory) Read(address uint32, width bus.Width) (uint32, error) {
	mem.accesses++

	phys := memorymap.MaskRegion(address)
	e := mem.lookup(phys)
	if e == nil {
		if err := mem.unmapped("read", address, width); err != nil {
			return 0, err
		}
		return uint32(mem.env.Prefs.OpenBus.Get().(int)) & width.Mask(), nil
	}

	mem.cycles += e.cycles(width)

	v, err := e.dev.Read(phys-e.rng.Origin, width)
	if err != nil {
		return 0, curated.Errorf(DeviceError, e.label, err)
	}

	return v & width.Mask(), nil
}

// Write implements the bus.Memory interface.
func (mem *Memory) Write(address uint32, width bus.Width, value uint32) error {
	mem.accesses++

	phys := memorymap.MaskRegion(address)
	e := mem.lookup(phys)
	if e == nil {
		return mem.unmapped("write", address, width)
	}

	mem.cycles += e.cycles(width)

	if err := e.dev.Write(phys-e.rng.Origin, width, value&width.Mask()); err != nil {
		return curated.Errorf(DeviceError, e.label, err)
	}

	return nil
}

// Peek returns the value at the address without side effects. The cycle
// counter is not advanced and the StrictBus preference is ignored.
func (mem *Memory) Peek(address uint32, width bus.Width) (uint32, error) {
	phys := memorymap.MaskRegion(address)
	e := mem.lookup(phys)
	if e == nil {
		return 0, curated.Errorf(Unmapped, address)
	}
	d, ok := e.dev.(bus.DebuggerBus)
	if !ok {
		return 0, curated.Errorf(NoInspection, e.label)
	}
	if e.crosses(phys, width) {
		return 0, curated.Errorf(CrossesRange, width, address, e.label)
	}
	v, err := d.Peek(phys-e.rng.Origin, width)
	return v & width.Mask(), err
}

// Poke changes the value at the address without side effects. The cycle
// counter is not advanced and the StrictBus preference is ignored. Read-only
// devices such as the BIOS can be poked.
func (mem *Memory) Poke(address uint32, width bus.Width, value uint32) error {
	phys := memorymap.MaskRegion(address)
	e := mem.lookup(phys)
	if e == nil {
		return curated.Errorf(Unmapped, address)
	}
	d, ok := e.dev.(bus.DebuggerBus)
	if !ok {
		return curated.Errorf(NoInspection, e.label)
	}
	if e.crosses(phys, width) {
		return curated.Errorf(CrossesRange, width, address, e.label)
	}
	return d.Poke(phys-e.rng.Origin, width, value&width.Mask())
}

// Area returns the label of the device at the address. Returns the empty
// string if there is no device at the address.
func (mem *Memory) Area(address uint32) string {
	if e := mem.lookup(memorymap.MaskRegion(address)); e != nil {
		return e.label
	}
	return ""
}
