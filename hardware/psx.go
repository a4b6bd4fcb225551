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

package hardware

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopherpsx/hardware/clocks"
	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/dma"
	"github.com/jetsetilly/gopherpsx/hardware/instance"
	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
)

// Clocked is implemented by collaborators that must be kept in step with the
// CPU, such as timers and the GPU. Clock() is called with the number of
// cycles that have elapsed since the previous call.
type Clocked interface {
	Clock(cycles int) error
}

// PSX struct is the main container for the emulated components of the PSX.
type PSX struct {
	Env *instance.Instance

	CPU        *cpu.CPU
	Mem        *memory.Memory
	Interrupts *interrupts.Controller
	DMA        *dma.DMA

	// collaborators brought up to date after every step
	clocked []Clocked

	// the value of the bus cycle counter when the clocked collaborators
	// were last brought up to date
	caughtUp uint64

	// the number of steps since reset
	steps uint64
}

// NewPSX creates a new PSX and everything associated with the hardware. The
// interrupt controller and the DMA engine are attached to the bus at their
// fixed addresses. Other devices can be attached with AttachDevice() before
// the first call to Step().
func NewPSX(env *instance.Instance) (*PSX, error) {
	var err error

	psx := &PSX{Env: env}

	psx.Mem, err = memory.NewMemory(env)
	if err != nil {
		return nil, err
	}

	psx.Interrupts = interrupts.NewController()
	err = psx.Mem.Attach(memorymap.Interrupts.String(), memorymap.Interrupts.Range(), psx.Interrupts)
	if err != nil {
		return nil, err
	}

	psx.DMA = dma.NewDMA(env, psx.Mem, psx.Interrupts)
	err = psx.Mem.Attach(memorymap.DMA.String(), memorymap.DMA.Range(), psx.DMA)
	if err != nil {
		return nil, err
	}

	psx.CPU = cpu.NewCPU(env, psx.Mem, psx.Interrupts)

	err = psx.Reset()
	if err != nil {
		return nil, err
	}

	return psx, nil
}

func (psx *PSX) String() string {
	return fmt.Sprintf("PSX: %d steps, %d cycles", psx.steps, psx.Mem.Cycles())
}

// LoadBIOS copies the BIOS image into ROM. The image must be exactly 512KB.
func (psx *PSX) LoadBIOS(data []byte) error {
	return psx.Mem.BIOS.Load(data)
}

// AttachDevice connects a device to the bus. Devices cannot be attached once
// the emulation has started.
func (psx *PSX) AttachDevice(label string, rng memorymap.Range, dev bus.Device) error {
	return psx.Mem.Attach(label, rng, dev)
}

// AttachClocked adds a collaborator to the list of devices that are brought
// up to date with the CPU.
func (psx *PSX) AttachClocked(c Clocked) {
	psx.clocked = append(psx.clocked, c)
}

// AttachPort connects a peripheral to a DMA channel.
func (psx *PSX) AttachPort(channel int, port dma.Port) error {
	return psx.DMA.AttachPort(channel, port)
}

// AttachCOP2 connects a coprocessor to the CPU as coprocessor 2. On the real
// hardware this is the GTE.
func (psx *PSX) AttachCOP2(cop2 cpu.Coprocessor) {
	psx.CPU.AttachCOP2(cop2)
}

// Reset returns every component to its power-on state. The PC is set to the
// reset vector. The contents of the BIOS and attached devices are not
// changed.
func (psx *PSX) Reset() error {
	psx.Mem.Reset()
	psx.Interrupts.Reset()
	psx.DMA.Reset()
	psx.CPU.Reset()
	psx.caughtUp = 0
	psx.steps = 0
	return nil
}

// Elapsed returns the time that would have passed on a real console since
// reset.
func (psx *PSX) Elapsed() time.Duration {
	return clocks.Duration(psx.Mem.Cycles())
}

// Steps returns the number of calls to Step() since reset.
func (psx *PSX) Steps() uint64 {
	return psx.steps
}
