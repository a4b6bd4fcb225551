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

package dma

import (
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
)

// read a register without side effects. the offset must be word aligned
func (dma *DMA) reg(offset uint32) uint32 {
	switch offset {
	case regDPCR:
		return dma.DPCR
	case regDICR:
		return dma.dicr()
	}

	n := int(offset >> 4)
	if n >= NumChannels {
		return 0
	}

	ch := &dma.Channels[n]
	switch offset & 0x0c {
	case regMADR:
		return ch.MADR
	case regBCR:
		return ch.BCR
	case regCHCR:
		return uint32(ch.CHCR)
	}
	return 0
}

// write a register. the bits argument are the bits of the register covered by
// the access
func (dma *DMA) setReg(offset uint32, value uint32, bits uint32) {
	switch offset {
	case regDPCR:
		dma.DPCR = value
		return
	case regDICR:
		dma.DICR = dma.DICR&^(dicrWritable&bits) | value&dicrWritable&bits
		dma.DICR &^= value & bits & dicrFlags
		dma.updateIRQ()
		return
	}

	n := int(offset >> 4)
	if n >= NumChannels {
		return
	}

	ch := &dma.Channels[n]
	switch offset & 0x0c {
	case regMADR:
		ch.MADR = value & madrMask
	case regBCR:
		ch.BCR = value
	case regCHCR:
		ch.setControl(value)
	}
}

// merge a narrow access with the current value of the register
func (dma *DMA) merge(offset uint32, width bus.Width, value uint32) (uint32, uint32) {
	shift := (offset & 3) * 8
	bits := width.Mask() << shift
	return dma.reg(offset&^3)&^bits | (value<<shift)&bits, bits
}

// Read implements the bus.Device interface.
func (dma *DMA) Read(offset uint32, width bus.Width) (uint32, error) {
	return dma.reg(offset&^3) >> ((offset & 3) * 8), nil
}

// Write implements the bus.Device interface. Accesses narrower than a word
// affect only the bits of the register covered by the access.
func (dma *DMA) Write(offset uint32, width bus.Width, value uint32) error {
	v, bits := dma.merge(offset, width, value)
	dma.setReg(offset&^3, v, bits)
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (dma *DMA) Peek(offset uint32, width bus.Width) (uint32, error) {
	return dma.Read(offset, width)
}

// Poke implements the bus.DebuggerBus interface. Unlike Write(), a poke of a
// channel control register does not start or stop a transfer and a poke of
// DICR sets the flags to the value.
func (dma *DMA) Poke(offset uint32, width bus.Width, value uint32) error {
	v, _ := dma.merge(offset, width, value)

	switch offset &^ 3 {
	case regDPCR:
		dma.DPCR = v
		return nil
	case regDICR:
		dma.DICR = v &^ dicrMasterFlag
		return nil
	}

	n := int(offset >> 4)
	if n >= NumChannels {
		return nil
	}

	ch := &dma.Channels[n]
	switch offset & 0x0c {
	case regMADR:
		ch.MADR = v & madrMask
	case regBCR:
		ch.BCR = v
	case regCHCR:
		ch.CHCR = Control(v)
	}
	return nil
}
