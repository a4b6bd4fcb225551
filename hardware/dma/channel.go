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
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
)

// List of channel numbers.
const (
	MDECIn = iota
	MDECOut
	GPU
	CDROM
	SPU
	PIO
	OTC

	// the number of DMA channels
	NumChannels
)

// ChannelName returns the name of the peripheral connected to the channel.
func ChannelName(id int) string {
	switch id {
	case MDECIn:
		return "MDECin"
	case MDECOut:
		return "MDECout"
	case GPU:
		return "GPU"
	case CDROM:
		return "CDROM"
	case SPU:
		return "SPU"
	case PIO:
		return "PIO"
	case OTC:
		return "OTC"
	}
	return fmt.Sprintf("channel %d", id)
}

// the memory address register is 24 bits wide but addresses used during a
// transfer are word aligned and wrap inside the 2MB of RAM
const (
	madrMask    = 0x00ffffff
	addressMask = memorymap.SizeRAM - 4
)

// Channel is a single DMA channel.
type Channel struct {
	ID int

	// the registers as seen by the CPU
	MADR uint32
	BCR  uint32
	CHCR Control

	// Failed is true if the most recent transfer was aborted because of a
	// fault. It is reset when the next transfer starts
	Failed bool

	// progress of the current transfer. only valid when started is true
	started   bool
	fromRAM   bool
	address   uint32
	remaining uint32
	blocks    uint32
}

func (ch *Channel) String() string {
	s := fmt.Sprintf("%-7s madr=%06x bcr=%08x chcr=%08x [%s]", ChannelName(ch.ID), ch.MADR, ch.BCR, uint32(ch.CHCR), ch.CHCR)
	if ch.Failed {
		s = fmt.Sprintf("%s failed", s)
	}
	return s
}

// reset channel to power-on state
func (ch *Channel) reset() {
	*ch = Channel{ID: ch.ID}
	if ch.ID == OTC {
		ch.CHCR = ctrlFixedOTC
	}
}

// Active returns true if the channel has a transfer in progress or waiting to
// start. A channel in manual mode needs the trigger bit as well as the busy
// bit.
func (ch *Channel) Active() bool {
	if !ch.CHCR.Busy() {
		return false
	}
	if ch.CHCR.Sync() == Manual {
		return ch.CHCR.Trigger()
	}
	return true
}

// setControl writes the bits of CHCR that can be written.
func (ch *Channel) setControl(v uint32) {
	was := ch.CHCR

	if ch.ID == OTC {
		ch.CHCR = Control(v)&ctrlWritableOTC | ctrlFixedOTC
	} else {
		ch.CHCR = Control(v) & ctrlWritable
	}

	// a change to the busy bit in either direction cancels any progress. the
	// transfer will be restarted if the channel is busy
	if !was.Busy() || !ch.CHCR.Busy() {
		ch.started = false
	}

	// the direction of the transfer cannot change while the channel is busy
	if ch.started {
		ch.CHCR = ch.CHCR&^ctrlFromRAM | was&ctrlFromRAM
	}
}

// wordCount interprets a 16 bit count, where zero means the maximum.
func wordCount(v uint32) uint32 {
	v &= 0xffff
	if v == 0 {
		return 0x10000
	}
	return v
}

// begin the transfer with the current register values.
func (ch *Channel) begin() {
	ch.started = true
	ch.Failed = false
	ch.fromRAM = ch.CHCR.FromRAM()
	ch.address = ch.MADR & addressMask

	switch ch.CHCR.Sync() {
	case Manual:
		ch.remaining = wordCount(ch.BCR)
	case Request:
		ch.remaining = wordCount(ch.BCR)
		ch.blocks = wordCount(ch.BCR >> 16)
	}
}

// advance the address to the next word
func (ch *Channel) step() {
	if ch.CHCR.Backward() {
		ch.address -= 4
	} else {
		ch.address += 4
	}
	ch.address &= addressMask
}

// stop the channel. the busy and trigger bits are cleared
func (ch *Channel) stop() {
	ch.CHCR &^= ctrlBusy | ctrlTrigger
	ch.started = false
}
