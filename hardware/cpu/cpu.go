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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/execution"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherpsx/hardware/instance"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
)

// Memory defines the bus operations required by the CPU. The Cycles()
// function is used to measure the latency of each access.
type Memory interface {
	bus.Memory
	Cycles() uint64
}

// Interrupts is the output of the interrupt controller as seen by the CPU.
type Interrupts interface {
	Active() bool
}

// Coprocessor is implemented by a coprocessor attached as coprocessor 2.
type Coprocessor interface {
	// data registers. used by MFC2, MTC2, LWC2 and SWC2
	Read(reg int) uint32
	Write(reg int, value uint32)

	// control registers. used by CFC2 and CTC2
	ReadControl(reg int) uint32
	WriteControl(reg int, value uint32)

	// the 25 bit command of a COP2 instruction
	Command(command uint32)
}

type pendingLoad struct {
	reg   int
	value uint32
	valid bool
}

type pendingBranch struct {
	target uint32
	valid  bool
}

// CPU implements the R3000A.
type CPU struct {
	env  *instance.Instance
	mem  Memory
	irq  Interrupts
	cop2 Coprocessor

	// the system control coprocessor is always present
	COP0 *cop0.COP0

	regs [32]uint32
	pc   uint32
	hi   uint32
	lo   uint32

	// the load and the branch scheduled by the most recent instruction
	load   pendingLoad
	branch pendingBranch

	// last result. the result is finalised at the end of every call to
	// ExecuteInstruction()
	LastResult execution.Result

	// called after every bus access
	cycleCallback func(cycles int) error

	// the register written by the current instruction. negative if no
	// register has been written
	written int
}

// NewCPU is the preferred method of initialisation for the CPU type. The irq
// argument can be nil if interrupts are not required.
func NewCPU(env *instance.Instance, mem Memory, irq Interrupts) *CPU {
	mc := &CPU{
		env:  env,
		mem:  mem,
		irq:  irq,
		COP0: cop0.NewCOP0(env),
	}
	mc.Reset()
	return mc
}

// AttachCOP2 connects a coprocessor as coprocessor 2.
func (mc *CPU) AttachCOP2(cop2 Coprocessor) {
	mc.cop2 = cop2
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.COP0 = mc.COP0.Snapshot()
	n.cycleCallback = nil
	return &n
}

// Plumb restores the state of the CPU from a snapshot. The bus, the interrupt
// controller and the attached coprocessor are kept.
func (mc *CPU) Plumb(s *CPU) {
	env, mem, irq, cop2 := mc.env, mc.mem, mc.irq, mc.cop2
	cp := mc.COP0
	*mc = *s
	mc.env, mc.mem, mc.irq, mc.cop2 = env, mem, irq, cop2
	cp.Plumb(s.COP0)
	mc.COP0 = cp
}

// Reset reinitialises all registers. The PC is set to the reset vector.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	// checking for env == nil because it's possible for NewCPU to be called
	// with a nil instance (test package)
	if mc.env != nil && mc.env.Prefs.RandomState.Get().(bool) {
		for i := range mc.regs {
			mc.regs[i] = mc.env.Random.Uint32()
		}
		mc.hi = mc.env.Random.Uint32()
		mc.lo = mc.env.Random.Uint32()
	} else {
		clear(mc.regs[:])
		mc.hi = 0
		mc.lo = 0
	}
	mc.regs[0] = 0

	mc.pc = memorymap.ResetVector
	mc.load = pendingLoad{}
	mc.branch = pendingBranch{}
	mc.cycleCallback = nil
	mc.COP0.Reset()
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "pc=%08x hi=%08x lo=%08x", mc.pc, mc.hi, mc.lo)
	for i, r := range mc.regs {
		if i%4 == 0 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
		fmt.Fprintf(&s, "%4s=%08x", instructions.RegisterName(i), r)
	}
	return s.String()
}

// Register returns the value of a general purpose register. A pending load
// is not visible until the next instruction has executed.
func (mc *CPU) Register(reg int) uint32 {
	return mc.regs[reg&0x1f]
}

// SetRegister sets the value of a general purpose register. Setting register
// zero has no effect.
func (mc *CPU) SetRegister(reg int, value uint32) {
	reg &= 0x1f
	if reg != 0 {
		mc.regs[reg] = value
	}
}

// PC returns the address of the next instruction to execute, unless a branch
// is pending.
func (mc *CPU) PC() uint32 {
	return mc.pc
}

// SetPC sets the address of the next instruction. Any pending branch or load
// is cancelled.
func (mc *CPU) SetPC(pc uint32) {
	mc.pc = pc
	mc.branch = pendingBranch{}
	mc.load = pendingLoad{}
}

// HI returns the HI register of the multiply and divide unit.
func (mc *CPU) HI() uint32 {
	return mc.hi
}

// LO returns the LO register of the multiply and divide unit.
func (mc *CPU) LO() uint32 {
	return mc.lo
}

// PendingLoad returns the details of the load that will complete after the
// next instruction.
func (mc *CPU) PendingLoad() (reg int, value uint32, ok bool) {
	return mc.load.reg, mc.load.value, mc.load.valid
}

// PendingBranch returns the target of the branch that will be taken after the
// next instruction.
func (mc *CPU) PendingBranch() (target uint32, ok bool) {
	return mc.branch.target, mc.branch.valid
}

func (mc *CPU) log(detail string, args ...any) {
	if mc.env != nil {
		mc.env.Log.Logf(mc.env, "cpu", detail, args...)
	}
}
