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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/test"
)

// status register values used by the tests
const (
	srIEc = 1 << 0
	srKUc = 1 << 1
	srIM2 = 1 << 10
	srIsC = 1 << 16
	srBEV = 1 << 22
	srCU2 = 1 << 30
)

func TestReset(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, 100)
	m.mc.Reset()

	test.ExpectEquality(t, m.mc.PC(), memorymap.ResetVector)
	test.ExpectEquality(t, m.mc.Register(t0), uint32(0))
	test.ExpectEquality(t, m.mc.COP0.Status(), uint32(srBEV))

	// the BIOS is empty so the first instruction is a NOP
	m.step(t)
	test.ExpectEquality(t, m.mc.PC(), memorymap.ResetVector+4)
	test.ExpectEquality(t, m.mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, m.mc.LastResult.Accesses, 1)
	test.ExpectEquality(t, m.mc.LastResult.Instruction.String(), "nop")
}

func TestRegisterZero(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, data)
	m.poke(t, data, 0x12345678)
	m.program(t,
		addiu(zero, zero, 5),
		lw(zero, t0, 0),
		nop(),
	)

	m.step(t)
	m.reg(t, zero, 0)
	m.step(t)
	_, _, ok := m.mc.PendingLoad()
	test.ExpectFailure(t, ok)
	m.step(t)
	m.reg(t, zero, 0)

	m.mc.SetRegister(zero, 1)
	m.reg(t, zero, 0)
}

func TestLoadDelay(t *testing.T) {
	m := newMachine(t)
	m.poke(t, data, 0xdeadbeef)
	m.program(t,
		lui(t0, 0x8002),
		lw(t1, t0, 0),
		addu(t2, t1, zero),
		addu(t3, t1, zero),
	)

	m.steps(t, 2)
	m.reg(t, t1, 0)
	reg, value, ok := m.mc.PendingLoad()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg, t1)
	test.ExpectEquality(t, value, uint32(0xdeadbeef))

	// the instruction in the load delay slot sees the old value
	m.step(t)
	m.reg(t, t2, 0)
	m.reg(t, t1, 0xdeadbeef)

	m.step(t)
	m.reg(t, t3, 0xdeadbeef)
}

func TestLoadOverwritten(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, data)
	m.poke(t, data, 0xdeadbeef)
	m.program(t,
		lw(t1, t0, 0),
		addiu(t1, zero, 5),
		nop(),
	)

	// the write by the instruction in the delay slot wins
	m.steps(t, 2)
	m.reg(t, t1, 5)
	m.step(t)
	m.reg(t, t1, 5)
}

func TestUnalignedLoad(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, data)
	m.poke(t, data, 0x33221100)
	m.poke(t, data+4, 0x77665544)
	m.program(t,
		lwr(t1, t0, 1),
		lwl(t1, t0, 4),
		nop(),
	)

	m.step(t)
	m.reg(t, t1, 0)
	m.step(t)
	m.reg(t, t1, 0x00332211)

	// the second instruction merged with the load in flight
	m.step(t)
	m.reg(t, t1, 0x44332211)
}

func TestUnalignedStore(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, data)
	m.mc.SetRegister(t1, 0xaabbccdd)
	m.poke(t, data, 0x11111111)
	m.poke(t, data+4, 0x22222222)
	m.program(t,
		swr(t1, t0, 1),
		swl(t1, t0, 4),
	)

	m.steps(t, 2)
	test.ExpectEquality(t, m.peek(t, data), uint32(0xbbccdd11))
	test.ExpectEquality(t, m.peek(t, data+4), uint32(0x222222aa))

	// each unaligned store is a read and a write of the aligned word
	test.ExpectEquality(t, m.mc.LastResult.Accesses, 3)
}

func TestByteAndHalf(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, data)
	m.mc.SetRegister(t1, 0x000080ff)
	m.program(t,
		sb(t1, t0, 1),
		lb(t2, t0, 1),
		lh(t3, t0, 0),
		nop(),
	)

	m.steps(t, 4)
	test.ExpectEquality(t, m.peek(t, data), uint32(0x0000ff00))
	m.reg(t, t2, 0xffffffff)
	m.reg(t, t3, 0xffffff00)
}

func TestBranchDelaySlot(t *testing.T) {
	m := newMachine(t)
	m.program(t,
		beq(zero, zero, 2),
		addiu(t1, zero, 1),
		addiu(t2, zero, 2),
		addiu(t3, zero, 3),
	)

	m.step(t)
	test.ExpectEquality(t, m.mc.PC(), origin+4)
	target, ok := m.mc.PendingBranch()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, origin+12)

	// the delay slot is executed
	m.step(t)
	test.ExpectSuccess(t, m.mc.LastResult.InDelaySlot)
	m.reg(t, t1, 1)
	test.ExpectEquality(t, m.mc.PC(), origin+12)

	m.step(t)
	m.reg(t, t2, 0)
	m.reg(t, t3, 3)
}

func TestBranchNotTaken(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, 1)
	m.program(t,
		bne(t0, zero, 4),
		beq(t0, zero, 4),
		nop(),
	)

	m.step(t)
	_, ok := m.mc.PendingBranch()
	test.ExpectSuccess(t, ok)
	m.step(t)
	_, ok = m.mc.PendingBranch()
	test.ExpectFailure(t, ok)
}

func TestLink(t *testing.T) {
	m := newMachine(t)
	m.program(t, jal(origin+0x100))
	m.step(t)
	m.reg(t, ra, origin+8)
	target, ok := m.mc.PendingBranch()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, origin+0x100)

	// the link register is written even if the branch is not taken
	m = newMachine(t)
	m.mc.SetRegister(t0, 1)
	m.program(t, bltzal(t0, 4))
	m.step(t)
	m.reg(t, ra, origin+8)
	_, ok = m.mc.PendingBranch()
	test.ExpectFailure(t, ok)

	m = newMachine(t)
	m.mc.SetRegister(t0, origin+0x40)
	m.program(t, jalr(t1, t0))
	m.step(t)
	m.reg(t, t1, origin+8)
	target, _ = m.mc.PendingBranch()
	test.ExpectEquality(t, target, origin+0x40)
}

func TestArithmetic(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, 0xfffffff0)
	m.mc.SetRegister(t1, 3)
	m.program(t,
		sra(t2, t0, 2),
		slt(t3, t0, t1),
		sltu(t3+1, t0, t1),
		mult(t0, t1),
		mfhi(t3+2),
		mflo(t3+3),
	)

	m.steps(t, 6)
	m.reg(t, t2, 0xfffffffc)
	m.reg(t, t3, 1)
	m.reg(t, t3+1, 0)
	m.reg(t, t3+2, 0xffffffff)
	m.reg(t, t3+3, 0xffffffd0)
}

func TestOverflow(t *testing.T) {
	m := newMachine(t)
	m.mc.COP0.Write(cop0.SR, 0)
	m.mc.SetRegister(t0, 0x7fffffff)
	m.mc.SetRegister(t1, 1)
	m.program(t, add(t2, t0, t1))

	m.step(t)
	test.ExpectSuccess(t, m.mc.LastResult.Exception)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.Ov)
	test.ExpectEquality(t, m.mc.PC(), uint32(0x80000080))
	test.ExpectEquality(t, m.mc.COP0.EPC(), origin)
	test.ExpectFailure(t, m.mc.COP0.BranchDelay())

	// destination is not written
	m.reg(t, t2, 0)

	// addi and sub
	m = newMachine(t)
	m.mc.SetRegister(t0, 0x80000000)
	m.mc.SetRegister(t1, 1)
	m.program(t, addi(t2, t0, -1), sub(t2, t0, t1), addu(t2, t0, t0))
	m.step(t)
	test.ExpectEquality(t, m.mc.COP0.ExcCode(), cop0.Ov)
	m.mc.SetPC(origin + 4)
	m.step(t)
	test.ExpectEquality(t, m.mc.COP0.ExcCode(), cop0.Ov)
	m.mc.SetPC(origin + 8)
	m.step(t)
	test.ExpectFailure(t, m.mc.LastResult.Exception)
	m.reg(t, t2, 0)
}

func TestExceptionInDelaySlot(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, 0x7fffffff)
	m.mc.SetRegister(t1, 1)
	m.program(t,
		beq(zero, zero, 4),
		add(t2, t0, t1),
	)

	m.steps(t, 2)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.Ov)
	test.ExpectEquality(t, m.mc.COP0.EPC(), origin)
	test.ExpectSuccess(t, m.mc.COP0.BranchDelay())

	// BEV is set after reset
	test.ExpectEquality(t, m.mc.PC(), uint32(0xbfc00180))

	// the branch is not taken
	_, ok := m.mc.PendingBranch()
	test.ExpectFailure(t, ok)
}

func TestReturnFromException(t *testing.T) {
	m := newMachine(t)
	m.mc.COP0.Write(cop0.SR, srKUc|srIEc)
	m.program(t, syscall())
	m.step(t)
	test.ExpectEquality(t, m.mc.COP0.Status()&0x3f, uint32(0x0c))

	m.program(t, rfe())
	m.mc.SetPC(origin)
	m.step(t)
	test.ExpectEquality(t, m.mc.COP0.Status()&0x3f, uint32(0x03))
}

func TestInterrupt(t *testing.T) {
	m := newMachine(t)
	m.program(t, addiu(t1, zero, 1), nop())
	m.irq.SetMask(interrupts.Bit(interrupts.DMA))
	m.irq.Raise(interrupts.DMA)
	test.ExpectSuccess(t, m.irq.Active())

	// masked by the status register. the pending interrupt is visible in
	// the cause register
	m.mc.COP0.Write(cop0.SR, srIEc)
	m.step(t)
	test.ExpectFailure(t, m.mc.LastResult.Exception)
	m.reg(t, t1, 1)
	test.ExpectEquality(t, m.mc.COP0.Cause()&srIM2, uint32(srIM2))

	// unmasked. the instruction is not executed
	m.mc.COP0.Write(cop0.SR, srIEc|srIM2)
	m.step(t)
	test.ExpectSuccess(t, m.mc.LastResult.Exception)
	test.ExpectFailure(t, m.mc.LastResult.Fetched)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.Int)
	test.ExpectEquality(t, m.mc.LastResult.Accesses, 0)
	test.ExpectEquality(t, m.mc.COP0.EPC(), origin+4)
	test.ExpectEquality(t, m.mc.PC(), uint32(0x80000080))

	// interrupts are disabled by the exception
	test.ExpectEquality(t, m.mc.COP0.Status()&srIEc, uint32(0))

	// acknowledging the interrupt removes it from the cause register
	m.irq.Acknowledge(interrupts.Bit(interrupts.DMA))
	m.mc.COP0.Write(cop0.SR, srIEc|srIM2)
	m.mc.SetPC(origin + 4)
	m.step(t)
	test.ExpectFailure(t, m.mc.LastResult.Exception)
	test.ExpectEquality(t, m.mc.COP0.Cause()&srIM2, uint32(0))
}

func TestInterruptInDelaySlot(t *testing.T) {
	m := newMachine(t)
	m.program(t,
		beq(zero, zero, 4),
		addiu(t1, zero, 1),
	)

	m.mc.COP0.Write(cop0.SR, srIEc|srIM2)
	m.step(t)

	m.irq.SetMask(interrupts.Bit(interrupts.VBlank))
	m.irq.Raise(interrupts.VBlank)
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.Int)
	test.ExpectSuccess(t, m.mc.COP0.BranchDelay())
	test.ExpectEquality(t, m.mc.COP0.EPC(), origin)
	m.reg(t, t1, 0)
}

func TestSoftwareInterrupt(t *testing.T) {
	m := newMachine(t)
	m.program(t, nop())
	m.mc.COP0.Write(cop0.SR, srIEc|0x0100)
	m.mc.COP0.Write(cop0.Cause, 0x0100)
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.Int)
}

func TestAddressErrors(t *testing.T) {
	m := newMachine(t)
	m.mc.SetPC(origin + 2)
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.AdEL)
	test.ExpectEquality(t, m.mc.COP0.Read(cop0.BadVAddr), origin+2)
	test.ExpectEquality(t, m.mc.COP0.EPC(), origin+2)
	test.ExpectFailure(t, m.mc.LastResult.Fetched)

	m = newMachine(t)
	m.mc.SetRegister(t0, data+1)
	m.program(t, lw(t1, t0, 0), sw(t1, t0, 0), lh(t1, t0, 0), lb(t1, t0, 0))
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.AdEL)
	test.ExpectEquality(t, m.mc.COP0.Read(cop0.BadVAddr), data+1)
	_, _, ok := m.mc.PendingLoad()
	test.ExpectFailure(t, ok)

	m.mc.SetPC(origin + 4)
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.AdES)
	test.ExpectEquality(t, m.mc.COP0.EPC(), origin+4)

	m.mc.SetPC(origin + 8)
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.AdEL)

	// byte accesses are never misaligned
	m.mc.SetPC(origin + 12)
	m.step(t)
	test.ExpectFailure(t, m.mc.LastResult.Exception)
}

func TestDivide(t *testing.T) {
	for _, tc := range []struct {
		ins    uint32
		n, d   uint32
		hi, lo uint32
	}{
		{ins: div(t0, t1), n: 7, d: 2, hi: 1, lo: 3},
		{ins: div(t0, t1), n: 0xfffffff9, d: 2, hi: 0xffffffff, lo: 0xfffffffd},
		{ins: div(t0, t1), n: 7, d: 0, hi: 7, lo: 0xffffffff},
		{ins: div(t0, t1), n: 0xfffffff9, d: 0, hi: 0xfffffff9, lo: 1},
		{ins: div(t0, t1), n: 0x80000000, d: 0xffffffff, hi: 0, lo: 0x80000000},
		{ins: divu(t0, t1), n: 7, d: 0, hi: 7, lo: 0xffffffff},
		{ins: divu(t0, t1), n: 0xfffffff9, d: 2, hi: 1, lo: 0x7ffffffc},
	} {
		m := newMachine(t)
		m.mc.SetRegister(t0, tc.n)
		m.mc.SetRegister(t1, tc.d)
		m.program(t, tc.ins)
		m.step(t)
		test.ExpectEquality(t, m.mc.HI(), tc.hi, tc.n, tc.d)
		test.ExpectEquality(t, m.mc.LO(), tc.lo, tc.n, tc.d)
	}
}

func TestTraps(t *testing.T) {
	for _, tc := range []struct {
		ins  uint32
		code cop0.ExcCode
		ce   int
	}{
		{ins: syscall(), code: cop0.Sys},
		{ins: brk(), code: cop0.Bp},
		{ins: 0xfc000000, code: cop0.RI},
		{ins: mfc(1, t1, 0), code: cop0.CpU, ce: 1},
		{ins: mfc(3, t1, 0), code: cop0.CpU, ce: 3},
		{ins: 0x4a000000, code: cop0.CpU, ce: 2},
		{ins: itype(0x31, t0, t1, 0), code: cop0.CpU, ce: 1},
		{ins: itype(0x30, t0, t1, 0), code: cop0.CpU, ce: 0},

		// TLB instructions are not present
		{ins: 0x42000001, code: cop0.RI},
	} {
		m := newMachine(t)
		m.mc.SetRegister(t0, data)
		m.program(t, tc.ins)
		m.step(t)
		test.ExpectEquality(t, m.mc.LastResult.ExcCode, tc.code, tc.ins)
		test.ExpectEquality(t, m.mc.COP0.ExcCode(), tc.code, tc.ins)
		test.ExpectEquality(t, m.mc.COP0.CE(), tc.ce, tc.ins)
		test.ExpectEquality(t, m.mc.COP0.EPC(), origin, tc.ins)
	}
}

func TestCOP0Access(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, 0x0000ff01)
	m.program(t,
		mtc(0, t0, cop0.SR),
		mfc(0, t1, cop0.SR),
		nop(),
		mfc(0, t2, cop0.PRId),
		nop(),
	)

	m.step(t)
	test.ExpectEquality(t, m.mc.COP0.Status(), uint32(0x0000ff01))
	m.step(t)
	m.reg(t, t1, 0)
	m.step(t)
	m.reg(t, t1, 0x0000ff01)
	m.steps(t, 2)
	m.reg(t, t2, 2)

	// user mode without CU0
	m = newMachine(t)
	m.mc.COP0.Write(cop0.SR, srKUc)
	m.program(t, mfc(0, t1, cop0.SR))
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.CpU)
	test.ExpectEquality(t, m.mc.COP0.CE(), 0)
}

type gte struct {
	data     [32]uint32
	control  [32]uint32
	commands []uint32
}

func (g *gte) Read(reg int) uint32                { return g.data[reg] }
func (g *gte) Write(reg int, value uint32)        { g.data[reg] = value }
func (g *gte) ReadControl(reg int) uint32         { return g.control[reg] }
func (g *gte) WriteControl(reg int, value uint32) { g.control[reg] = value }
func (g *gte) Command(command uint32)             { g.commands = append(g.commands, command) }

func TestCOP2(t *testing.T) {
	m := newMachine(t)
	g := &gte{}

	// usable bit set but nothing attached
	m.mc.COP0.Write(cop0.SR, srBEV|srCU2)
	m.program(t, mtc(2, t0, 5))
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.CpU)
	test.ExpectEquality(t, m.mc.COP0.CE(), 2)

	m = newMachine(t)
	m.mc.AttachCOP2(g)

	// attached but usable bit is not set
	m.program(t, mtc(2, t0, 5))
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.CpU)
	test.ExpectEquality(t, m.mc.COP0.CE(), 2)

	m.mc.COP0.Write(cop0.SR, srBEV|srCU2)
	m.mc.SetRegister(t0, 0x1234)
	m.mc.SetRegister(t3, data)
	m.poke(t, data, 0xcafef00d)
	m.program(t,
		mtc(2, t0, 5),
		mfc(2, t1, 5),
		addu(t2, t1, zero),
		cop2(0x0180001),
		lwc2(6, t3, 0),
		swc2(6, t3, 4),
	)
	m.mc.SetPC(origin)

	m.step(t)
	test.ExpectEquality(t, g.data[5], uint32(0x1234))
	m.steps(t, 2)
	m.reg(t, t2, 0)
	m.reg(t, t1, 0x1234)

	m.step(t)
	test.ExpectEquality(t, len(g.commands), 1)
	test.ExpectEquality(t, g.commands[0], uint32(0x0180001))

	m.steps(t, 2)
	test.ExpectEquality(t, g.data[6], uint32(0xcafef00d))
	test.ExpectEquality(t, m.peek(t, data+4), uint32(0xcafef00d))
}

func TestCacheIsolation(t *testing.T) {
	m := newMachine(t)
	m.mc.COP0.Write(cop0.SR, srBEV|srIsC)
	m.mc.SetRegister(t0, data)
	m.mc.SetRegister(t1, 0x12345678)
	m.poke(t, data, 0xdeadbeef)
	m.program(t, sw(t1, t0, 0), sb(t1, t0, 0), swl(t1, t0, 1))

	m.steps(t, 3)
	test.ExpectEquality(t, m.peek(t, data), uint32(0xdeadbeef))
	test.ExpectEquality(t, m.mc.LastResult.Accesses, 1)

	// alignment is checked even when isolated
	m.program(t, sw(t1, t0, 2))
	m.mc.SetPC(origin)
	m.step(t)
	test.ExpectEquality(t, m.mc.LastResult.ExcCode, cop0.AdES)
}

func TestNestedBranch(t *testing.T) {
	m := newMachine(t)
	m.program(t,
		j(origin+0x20),
		j(origin+0x40),
	)

	m.step(t)
	test.ExpectFailure(t, m.mc.LastResult.NestedBranch)
	m.step(t)
	test.ExpectSuccess(t, m.mc.LastResult.NestedBranch)
	test.ExpectEquality(t, m.mc.PC(), origin+0x20)

	// the instruction at the first target is in the delay slot of the second
	// branch
	m.step(t)
	test.ExpectSuccess(t, m.mc.LastResult.InDelaySlot)
	test.ExpectEquality(t, m.mc.PC(), origin+0x40)

	w := &strings.Builder{}
	m.env.Log.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "branch in delay slot"))
}

func TestStrictBus(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, 0xbf801800)
	m.program(t, lw(t1, t0, 0))

	// lenient bus reads the open bus value
	m.step(t)

	m.env.Prefs.StrictBus.Set(true)
	m.mc.SetPC(origin)
	err := m.mc.ExecuteInstruction(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAccess))
}

func TestStrictBusRetry(t *testing.T) {
	// pending load survives the failed instruction
	m := newMachine(t)
	m.poke(t, data, 0xdeadbeef)
	m.mc.SetRegister(t0, data)
	m.mc.SetRegister(t3, 0xbf801800)
	m.program(t,
		lw(t1, t0, 0),
		lw(t2, t3, 0),
		nop(),
	)
	m.env.Prefs.StrictBus.Set(true)

	m.step(t)
	err := m.mc.ExecuteInstruction(nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, m.mc.PC(), origin+4)
	m.reg(t, t1, 0)
	reg, value, ok := m.mc.PendingLoad()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg, t1)
	test.ExpectEquality(t, value, uint32(0xdeadbeef))

	m.env.Prefs.StrictBus.Set(false)
	m.step(t)
	m.reg(t, t1, 0xdeadbeef)
	test.ExpectEquality(t, m.mc.PC(), origin+8)
	_, _, ok = m.mc.PendingLoad()
	test.ExpectSuccess(t, ok)

	// pending branch survives a failed delay slot
	m = newMachine(t)
	m.mc.SetRegister(t3, 0xbf801800)
	m.program(t,
		beq(zero, zero, 2),
		lw(t2, t3, 0),
		addiu(t1, zero, 1),
		addiu(t1, zero, 2),
	)
	m.env.Prefs.StrictBus.Set(true)

	m.step(t)
	err = m.mc.ExecuteInstruction(nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, m.mc.PC(), origin+4)
	target, ok := m.mc.PendingBranch()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, origin+12)

	m.env.Prefs.StrictBus.Set(false)
	m.step(t)
	test.ExpectSuccess(t, m.mc.LastResult.InDelaySlot)
	test.ExpectEquality(t, m.mc.PC(), origin+12)
	m.step(t)
	m.reg(t, t1, 2)
}

func TestCycles(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, data)
	m.program(t, lw(t1, t0, 0))

	var n int
	var calls int
	err := m.mc.ExecuteInstruction(func(cycles int) error {
		n += cycles
		calls++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, calls, 2)
	test.ExpectEquality(t, n, m.mc.LastResult.Cycles)
	test.ExpectEquality(t, m.mc.LastResult.Cycles, 2)
	test.ExpectEquality(t, m.mem.Cycles(), uint64(2))
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t)
	m.mc.SetRegister(t0, 100)
	m.mc.COP0.Write(cop0.SR, srBEV|srIEc)
	s := m.mc.Snapshot()

	m.mc.SetRegister(t0, 200)
	m.mc.COP0.Write(cop0.SR, 0)
	m.mc.SetPC(0)

	m.mc.Plumb(s)
	m.reg(t, t0, 100)
	test.ExpectEquality(t, m.mc.PC(), origin)
	test.ExpectEquality(t, m.mc.COP0.Status(), uint32(srBEV|srIEc))

	// the snapshot is independent of the live CPU
	m.mc.COP0.Write(cop0.SR, 0)
	test.ExpectEquality(t, s.COP0.Status(), uint32(srBEV|srIEc))

	// the restored CPU still runs
	m.program(t, addiu(t1, t0, 1))
	m.step(t)
	m.reg(t, t1, 101)
}

func TestString(t *testing.T) {
	m := newMachine(t)
	var _ *cpu.CPU = m.mc
	test.ExpectSuccess(t, strings.HasPrefix(m.mc.String(), "pc=80010000"))
}
