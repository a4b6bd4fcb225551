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
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/dma/faults"
	"github.com/jetsetilly/gopherpsx/hardware/instance"
	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
)

// Sentinal error patterns returned by the dma package.
const (
	NoChannel = "dma: no channel %d"
	PortInUse = "dma: %s already has a port attached"
)

// Port is implemented by peripherals connected to a DMA channel.
type Port interface {
	// DMARequest returns true if the peripheral is ready to send or receive
	// a word. Only consulted by channels in request mode
	DMARequest() bool

	// DMAWrite receives a word from RAM
	DMAWrite(word uint32)

	// DMARead returns a word to be written to RAM
	DMARead() uint32
}

// Interrupts is the part of the interrupt controller used by the DMA engine.
type Interrupts interface {
	Signal(line interrupts.Line, level bool)
}

// the number of nodes a linked list can have before it is considered to be
// looping. it is not possible to have more nodes than there are words in RAM
const maxNodes = int(memorymap.SizeRAM / 4)

// register offsets in the bus window.
const (
	regMADR = 0x0
	regBCR  = 0x4
	regCHCR = 0x8
	regDPCR = 0x70
	regDICR = 0x74
)

// DMA is the DMA engine. It implements the bus.Device and bus.DebuggerBus
// interfaces.
type DMA struct {
	env *instance.Instance
	mem bus.Memory
	irq Interrupts

	Channels [NumChannels]Channel

	// the control register (DPCR) and the interrupt register (DICR). the
	// master flag in DICR is never stored and is created on demand
	DPCR uint32
	DICR uint32

	// Faults records every transfer that has been aborted
	Faults faults.Faults

	ports [NumChannels]Port
}

// NewDMA is the preferred method of initialisation for the DMA type. RAM
// accesses are made through the mem argument.
func NewDMA(env *instance.Instance, mem bus.Memory, irq Interrupts) *DMA {
	dma := &DMA{
		env:    env,
		mem:    mem,
		irq:    irq,
		Faults: faults.NewFaults(),
	}
	for i := range dma.Channels {
		dma.Channels[i].ID = i
	}
	dma.Reset()
	return dma
}

func (dma *DMA) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "dpcr=%08x dicr=%08x", dma.DPCR, dma.dicr())
	for i := range dma.Channels {
		s.WriteString("\n")
		s.WriteString(dma.Channels[i].String())
	}
	return s.String()
}

// Reset the engine to its power-on state. Attached ports are not affected.
func (dma *DMA) Reset() {
	for i := range dma.Channels {
		dma.Channels[i].reset()
	}
	dma.DPCR = dpcrReset
	dma.DICR = 0
	dma.Faults.Clear()
	dma.updateIRQ()
}

// Snapshot creates a copy of the engine in its current state.
func (dma *DMA) Snapshot() *DMA {
	n := *dma
	n.Faults = dma.Faults.Copy()
	return &n
}

// Plumb restores the state of the engine from a snapshot. The environment,
// the bus and the attached ports are kept.
func (dma *DMA) Plumb(s *DMA) {
	env, mem, irq, ports := dma.env, dma.mem, dma.irq, dma.ports
	*dma = *s
	dma.Faults = s.Faults.Copy()
	dma.env, dma.mem, dma.irq, dma.ports = env, mem, irq, ports
}

// AttachPort connects a peripheral to a channel. Attaching a port to the OTC
// channel replaces the built-in ordering table clear.
func (dma *DMA) AttachPort(channel int, port Port) error {
	if channel < 0 || channel >= NumChannels {
		return curated.Errorf(NoChannel, channel)
	}
	if dma.ports[channel] != nil {
		return curated.Errorf(PortInUse, ChannelName(channel))
	}
	dma.ports[channel] = port
	return nil
}

// the DICR value including the master flag.
func (dma *DMA) dicr() uint32 {
	if dma.masterFlag() {
		return dma.DICR | dicrMasterFlag
	}
	return dma.DICR
}

func (dma *DMA) masterFlag() bool {
	if dma.DICR&dicrForce == dicrForce {
		return true
	}
	if dma.DICR&dicrMasterEnable == 0 {
		return false
	}
	flags := (dma.DICR >> dicrFlagShift) & 0x7f
	enables := (dma.DICR >> dicrEnableShift) & 0x7f
	return flags&enables != 0
}

// the interrupt controller reacts to the rising edge of the master flag
func (dma *DMA) updateIRQ() {
	if dma.irq != nil {
		dma.irq.Signal(interrupts.DMA, dma.masterFlag())
	}
}

// Priority returns the priority value of the channel from DPCR. Lower values
// are serviced first.
func (dma *DMA) Priority(channel int) int {
	return int(dma.DPCR>>(channel*4)) & 0x07
}

// Enabled returns true if the channel is enabled in DPCR.
func (dma *DMA) Enabled(channel int) bool {
	return (dma.DPCR>>(channel*4+3))&0x01 == 0x01
}

// arbitrate returns the channels that are ready for service in the order
// they should be serviced.
func (dma *DMA) arbitrate(order []*Channel) []*Channel {
	order = order[:0]
	for i := range dma.Channels {
		ch := &dma.Channels[i]
		if dma.Enabled(i) && ch.Active() {
			order = append(order, ch)
		}
	}
	slices.SortFunc(order, func(a, b *Channel) int {
		if c := cmp.Compare(dma.Priority(a.ID), dma.Priority(b.ID)); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return order
}

// Service performs pending transfers. The budget is the number of words
// that can be moved before returning. A budget of zero or less means that
// transfers continue until no channel can make progress. Manual and linked
// list transfers are never split by the budget.
//
// Returns the number of cycles used by the engine, which is one per word
// moved. The cycles taken by the bus for the RAM side of each transfer are
// counted by the bus.
func (dma *DMA) Service(budget int) (int, error) {
	var cycles int
	var order [NumChannels]*Channel

	// manual transfers with chopping enabled get one burst for every call
	// to Service()
	var burst [NumChannels]bool

	for budget <= 0 || cycles < budget {
		ready := dma.arbitrate(order[:])
		if len(ready) == 0 {
			break
		}

		var progress bool
		for _, ch := range ready {
			if !ch.started {
				dma.begin(ch)
			}

			var n int
			var ok bool
			var err error

			switch ch.CHCR.Sync() {
			case Manual:
				if burst[ch.ID] {
					continue
				}
				burst[ch.ID] = ch.CHCR.Chopping()
				n, ok, err = dma.manual(ch)
			case Request:
				n, ok, err = dma.request(ch)
			case LinkedList:
				n, ok, err = dma.linkedList(ch)
			default:
				dma.fault(ch, faults.UnsupportedSync, "reserved sync mode", ch.MADR)
				ok = true
			}

			cycles += n
			progress = progress || ok
			if err != nil {
				return cycles, err
			}
		}

		if !progress {
			break
		}
	}

	return cycles, nil
}

// start the transfer for the channel
func (dma *DMA) begin(ch *Channel) {
	ch.begin()
	if dma.ports[ch.ID] == nil && ch.ID != OTC && ch.CHCR.Sync() != Reserved {
		dma.env.Log.Logf(dma.env, "dma", "%s has no port attached", ChannelName(ch.ID))
	}
}

// the transfer of the channel has completed
func (dma *DMA) complete(ch *Channel) {
	ch.stop()
	dma.DICR |= 1 << (dicrFlagShift + ch.ID)
	dma.updateIRQ()
}

// the transfer of the channel has been aborted
func (dma *DMA) fault(ch *Channel, category faults.Category, event string, accessAddr uint32) {
	ch.stop()
	ch.Failed = true
	e := dma.Faults.NewEntry(event, category, ch.ID, ch.MADR, accessAddr)
	dma.env.Log.Log(dma.env, "dma", e)
}

func (dma *DMA) portReady(ch *Channel) bool {
	if p := dma.ports[ch.ID]; p != nil {
		return p.DMARequest()
	}
	return true
}

func (dma *DMA) portRead(ch *Channel) uint32 {
	if p := dma.ports[ch.ID]; p != nil {
		return p.DMARead()
	}
	if ch.ID == OTC {
		return orderingTable(ch.address, ch.remaining)
	}
	return 0
}

func (dma *DMA) portWrite(ch *Channel, word uint32) {
	if p := dma.ports[ch.ID]; p != nil {
		p.DMAWrite(word)
	}
}

// move a single word between RAM and the port, advancing the address
func (dma *DMA) move(ch *Channel) error {
	if ch.fromRAM {
		v, err := dma.mem.Read(ch.address, bus.Word)
		if err != nil {
			return err
		}
		dma.portWrite(ch, v)
	} else {
		if err := dma.mem.Write(ch.address, bus.Word, dma.portRead(ch)); err != nil {
			return err
		}
	}
	ch.step()
	ch.remaining--
	return nil
}

// transfer the entire block or a single burst if chopping is enabled
func (dma *DMA) manual(ch *Channel) (int, bool, error) {
	n := ch.remaining
	if ch.CHCR.Chopping() {
		n = min(n, uint32(1)<<ch.CHCR.DMAWindow())
	}

	for i := range n {
		if err := dma.move(ch); err != nil {
			return int(i), true, err
		}
	}

	if ch.remaining == 0 {
		dma.complete(ch)
	}

	return int(n), true, nil
}

// transfer a single word if the port is requesting
func (dma *DMA) request(ch *Channel) (int, bool, error) {
	if !dma.portReady(ch) {
		return 0, false, nil
	}

	if err := dma.move(ch); err != nil {
		return 0, true, err
	}

	// block finished. MADR and the block count are updated
	if ch.remaining == 0 {
		ch.blocks--
		ch.MADR = ch.address
		ch.BCR = ch.BCR&0xffff | (ch.blocks&0xffff)<<16
		if ch.blocks == 0 {
			dma.complete(ch)
		} else {
			ch.remaining = wordCount(ch.BCR)
		}
	}

	return 1, true, nil
}

// follow the linked list starting at MADR until the end marker is found
func (dma *DMA) linkedList(ch *Channel) (int, bool, error) {
	if !ch.fromRAM {
		dma.fault(ch, faults.BadDirection, "linked list to RAM", ch.MADR)
		return 0, true, nil
	}

	var words int
	header := ch.MADR & madrMask

	for range maxNodes {
		if header&0x03 != 0 {
			dma.fault(ch, faults.MisalignedPointer, "linked list", header)
			return words, true, nil
		}
		if header >= memorymap.SizeRAM {
			dma.fault(ch, faults.OutsideRAM, "linked list", header)
			return words, true, nil
		}

		v, err := dma.mem.Read(header, bus.Word)
		if err != nil {
			return words, true, err
		}

		// the payload always follows the header in increasing address order
		ch.address = header
		for range v >> 24 {
			ch.address = (ch.address + 4) & addressMask
			w, err := dma.mem.Read(ch.address, bus.Word)
			if err != nil {
				return words, true, err
			}
			dma.portWrite(ch, w)
			words++
		}

		next := v & madrMask
		ch.MADR = next

		if next&0x800000 == 0x800000 {
			dma.complete(ch)
			return words, true, nil
		}

		header = next
	}

	dma.fault(ch, faults.ChainTooLong, "linked list", header)
	return words, true, nil
}
