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
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/instance"
	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/test"
)

// register numbers used in the tests
const (
	zero = 0
	at   = 1
	t0   = 8
	t1   = 9
	t2   = 10
	t3   = 11
	ra   = 31
)

// origin of test programs. in KSEG0 so that exceptions go to the normal
// vector once BEV is cleared
const origin = uint32(0x80010000)

// data area used by test programs
const data = uint32(0x80020000)

// instruction encoding
func rtype(funct uint32, rs, rt, rd int, shamt uint32) uint32 {
	return uint32(rs)<<21 | uint32(rt)<<16 | uint32(rd)<<11 | shamt<<6 | funct
}

func itype(op uint32, rs, rt int, imm int32) uint32 {
	return op<<26 | uint32(rs)<<21 | uint32(rt)<<16 | uint32(imm)&0xffff
}

func nop() uint32                        { return 0 }
func add(rd, rs, rt int) uint32          { return rtype(0x20, rs, rt, rd, 0) }
func addu(rd, rs, rt int) uint32         { return rtype(0x21, rs, rt, rd, 0) }
func sub(rd, rs, rt int) uint32          { return rtype(0x22, rs, rt, rd, 0) }
func div(rs, rt int) uint32              { return rtype(0x1a, rs, rt, 0, 0) }
func divu(rs, rt int) uint32             { return rtype(0x1b, rs, rt, 0, 0) }
func mult(rs, rt int) uint32             { return rtype(0x18, rs, rt, 0, 0) }
func mfhi(rd int) uint32                 { return rtype(0x10, 0, 0, rd, 0) }
func mflo(rd int) uint32                 { return rtype(0x12, 0, 0, rd, 0) }
func jr(rs int) uint32                   { return rtype(0x08, rs, 0, 0, 0) }
func jalr(rd, rs int) uint32             { return rtype(0x09, rs, 0, rd, 0) }
func sra(rd, rt int, sa uint32) uint32   { return rtype(0x03, 0, rt, rd, sa) }
func slt(rd, rs, rt int) uint32          { return rtype(0x2a, rs, rt, rd, 0) }
func sltu(rd, rs, rt int) uint32         { return rtype(0x2b, rs, rt, rd, 0) }
func syscall() uint32                    { return 0x0000000c }
func brk() uint32                        { return 0x0000000d }
func addi(rt, rs int, imm int32) uint32  { return itype(0x08, rs, rt, imm) }
func addiu(rt, rs int, imm int32) uint32 { return itype(0x09, rs, rt, imm) }
func lui(rt int, imm int32) uint32       { return itype(0x0f, 0, rt, imm) }
func ori(rt, rs int, imm int32) uint32   { return itype(0x0d, rs, rt, imm) }
func beq(rs, rt int, off int32) uint32   { return itype(0x04, rs, rt, off) }
func bne(rs, rt int, off int32) uint32   { return itype(0x05, rs, rt, off) }
func bltzal(rs int, off int32) uint32    { return itype(0x01, rs, 0x10, off) }
func lb(rt, base int, off int32) uint32  { return itype(0x20, base, rt, off) }
func lh(rt, base int, off int32) uint32  { return itype(0x21, base, rt, off) }
func lwl(rt, base int, off int32) uint32 { return itype(0x22, base, rt, off) }
func lw(rt, base int, off int32) uint32  { return itype(0x23, base, rt, off) }
func lwr(rt, base int, off int32) uint32 { return itype(0x26, base, rt, off) }
func sb(rt, base int, off int32) uint32  { return itype(0x28, base, rt, off) }
func swl(rt, base int, off int32) uint32 { return itype(0x2a, base, rt, off) }
func sw(rt, base int, off int32) uint32  { return itype(0x2b, base, rt, off) }
func swr(rt, base int, off int32) uint32 { return itype(0x2e, base, rt, off) }
func j(target uint32) uint32             { return 0x02<<26 | (target>>2)&0x03ffffff }
func jal(target uint32) uint32           { return 0x03<<26 | (target>>2)&0x03ffffff }
func mfc(cop uint32, rt, rd int) uint32  { return (0x10|cop)<<26 | uint32(rt)<<16 | uint32(rd)<<11 }
func mtc(cop uint32, rt, rd int) uint32 {
	return (0x10|cop)<<26 | 0x04<<21 | uint32(rt)<<16 | uint32(rd)<<11
}
func cop2(command uint32) uint32          { return 0x12<<26 | 0x01<<25 | command&0x01ffffff }
func lwc2(rt, base int, off int32) uint32 { return itype(0x32, base, rt, off) }
func swc2(rt, base int, off int32) uint32 { return itype(0x3a, base, rt, off) }
func rfe() uint32                         { return 0x42000010 }

type machine struct {
	env *instance.Instance
	mem *memory.Memory
	irq *interrupts.Controller
	mc  *cpu.CPU
}

func newMachine(t *testing.T) *machine {
	t.Helper()

	env, err := instance.NewInstance(instance.Main, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	mem, err := memory.NewMemory(env)
	test.DemandSuccess(t, err)

	irq := interrupts.NewController()

	m := &machine{
		env: env,
		mem: mem,
		irq: irq,
		mc:  cpu.NewCPU(env, mem, irq),
	}
	m.mc.Reset()
	m.mc.SetPC(origin)

	return m
}

// put instructions in memory at the origin
func (m *machine) program(t *testing.T, words ...uint32) {
	t.Helper()
	for i, w := range words {
		test.DemandSuccess(t, m.mem.Poke(origin+uint32(i*4), bus.Word, w))
	}
}

func (m *machine) poke(t *testing.T, address uint32, value uint32) {
	t.Helper()
	test.DemandSuccess(t, m.mem.Poke(address, bus.Word, value))
}

func (m *machine) peek(t *testing.T, address uint32) uint32 {
	t.Helper()
	v, err := m.mem.Peek(address, bus.Word)
	test.DemandSuccess(t, err)
	return v
}

// step the CPU and check the validity of the result
func (m *machine) step(t *testing.T) {
	t.Helper()
	test.DemandSuccess(t, m.mc.ExecuteInstruction(nil))
	test.ExpectSuccess(t, m.mc.LastResult.IsValid())
}

func (m *machine) steps(t *testing.T, n int) {
	t.Helper()
	for range n {
		m.step(t)
	}
}

func (m *machine) reg(t *testing.T, reg int, value uint32) {
	t.Helper()
	test.ExpectEquality(t, m.mc.Register(reg), value, "register", reg)
}
