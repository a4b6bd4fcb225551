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
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
)

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// the link address of JAL, JALR, BLTZAL and BGEZAL. the PC has already been
// advanced to the delay slot
func (mc *CPU) link() uint32 {
	return mc.pc + 4
}

func (mc *CPU) execute(ins instructions.Instruction, load pendingLoad) error {
	rs := mc.regs[ins.Rs]
	rt := mc.regs[ins.Rt]

	switch ins.Opcode {
	case instructions.SLL:
		mc.setReg(ins.Rd, rt<<ins.Shamt)
	case instructions.SRL:
		mc.setReg(ins.Rd, rt>>ins.Shamt)
	case instructions.SRA:
		mc.setReg(ins.Rd, uint32(int32(rt)>>ins.Shamt))
	case instructions.SLLV:
		mc.setReg(ins.Rd, rt<<(rs&0x1f))
	case instructions.SRLV:
		mc.setReg(ins.Rd, rt>>(rs&0x1f))
	case instructions.SRAV:
		mc.setReg(ins.Rd, uint32(int32(rt)>>(rs&0x1f)))

	case instructions.ADD:
		r := rs + rt
		if (rs^r)&(rt^r)&0x80000000 != 0 {
			mc.exception(cop0.Ov, 0)
			break
		}
		mc.setReg(ins.Rd, r)
	case instructions.ADDU:
		mc.setReg(ins.Rd, rs+rt)
	case instructions.SUB:
		r := rs - rt
		if (rs^rt)&(rs^r)&0x80000000 != 0 {
			mc.exception(cop0.Ov, 0)
			break
		}
		mc.setReg(ins.Rd, r)
	case instructions.SUBU:
		mc.setReg(ins.Rd, rs-rt)
	case instructions.AND:
		mc.setReg(ins.Rd, rs&rt)
	case instructions.OR:
		mc.setReg(ins.Rd, rs|rt)
	case instructions.XOR:
		mc.setReg(ins.Rd, rs^rt)
	case instructions.NOR:
		mc.setReg(ins.Rd, ^(rs | rt))
	case instructions.SLT:
		mc.setReg(ins.Rd, b2u(int32(rs) < int32(rt)))
	case instructions.SLTU:
		mc.setReg(ins.Rd, b2u(rs < rt))

	case instructions.ADDI:
		imm := ins.SignedImm()
		r := rs + imm
		if (rs^r)&(imm^r)&0x80000000 != 0 {
			mc.exception(cop0.Ov, 0)
			break
		}
		mc.setReg(ins.Rt, r)
	case instructions.ADDIU:
		mc.setReg(ins.Rt, rs+ins.SignedImm())
	case instructions.SLTI:
		mc.setReg(ins.Rt, b2u(int32(rs) < int32(ins.SignedImm())))
	case instructions.SLTIU:
		mc.setReg(ins.Rt, b2u(rs < ins.SignedImm()))
	case instructions.ANDI:
		mc.setReg(ins.Rt, rs&ins.Imm)
	case instructions.ORI:
		mc.setReg(ins.Rt, rs|ins.Imm)
	case instructions.XORI:
		mc.setReg(ins.Rt, rs^ins.Imm)
	case instructions.LUI:
		mc.setReg(ins.Rt, ins.Imm<<16)

	case instructions.MULT:
		r := uint64(int64(int32(rs)) * int64(int32(rt)))
		mc.hi = uint32(r >> 32)
		mc.lo = uint32(r)
	case instructions.MULTU:
		r := uint64(rs) * uint64(rt)
		mc.hi = uint32(r >> 32)
		mc.lo = uint32(r)
	case instructions.DIV:
		mc.div(int32(rs), int32(rt))
	case instructions.DIVU:
		if rt == 0 {
			mc.hi = rs
			mc.lo = 0xffffffff
			break
		}
		mc.hi = rs % rt
		mc.lo = rs / rt
	case instructions.MFHI:
		mc.setReg(ins.Rd, mc.hi)
	case instructions.MTHI:
		mc.hi = rs
	case instructions.MFLO:
		mc.setReg(ins.Rd, mc.lo)
	case instructions.MTLO:
		mc.lo = rs

	case instructions.J:
		mc.branchTo(mc.pc&0xf0000000 | ins.Target<<2)
	case instructions.JAL:
		mc.setReg(31, mc.link())
		mc.branchTo(mc.pc&0xf0000000 | ins.Target<<2)
	case instructions.JR:
		mc.branchTo(rs)
	case instructions.JALR:
		mc.setReg(ins.Rd, mc.link())
		mc.branchTo(rs)
	case instructions.BEQ:
		if rs == rt {
			mc.branchTo(mc.pc + ins.BranchOffset())
		}
	case instructions.BNE:
		if rs != rt {
			mc.branchTo(mc.pc + ins.BranchOffset())
		}
	case instructions.BLEZ:
		if int32(rs) <= 0 {
			mc.branchTo(mc.pc + ins.BranchOffset())
		}
	case instructions.BGTZ:
		if int32(rs) > 0 {
			mc.branchTo(mc.pc + ins.BranchOffset())
		}
	case instructions.BLTZ:
		if int32(rs) < 0 {
			mc.branchTo(mc.pc + ins.BranchOffset())
		}
	case instructions.BGEZ:
		if int32(rs) >= 0 {
			mc.branchTo(mc.pc + ins.BranchOffset())
		}
	case instructions.BLTZAL:
		mc.setReg(31, mc.link())
		if int32(rs) < 0 {
			mc.branchTo(mc.pc + ins.BranchOffset())
		}
	case instructions.BGEZAL:
		mc.setReg(31, mc.link())
		if int32(rs) >= 0 {
			mc.branchTo(mc.pc + ins.BranchOffset())
		}

	case instructions.LB, instructions.LBU, instructions.LH, instructions.LHU,
		instructions.LW, instructions.LWL, instructions.LWR:
		return mc.executeLoad(ins, rs+ins.SignedImm(), rt, load)

	case instructions.SB, instructions.SH, instructions.SW, instructions.SWL,
		instructions.SWR:
		return mc.executeStore(ins, rs+ins.SignedImm(), rt)

	case instructions.MFC, instructions.CFC, instructions.MTC, instructions.CTC,
		instructions.COP, instructions.RFE, instructions.LWC, instructions.SWC:
		return mc.executeCoprocessor(ins, rs, rt)

	case instructions.SYSCALL:
		mc.exception(cop0.Sys, 0)
	case instructions.BREAK:
		mc.exception(cop0.Bp, 0)

	default:
		// words in a coprocessor group that do not decode to a valid
		// instruction are reported as unusable if the coprocessor is unusable
		if c, ok := ins.Coprocessor(); ok && !mc.coprocessorUsable(c) {
			mc.exception(cop0.CpU, c)
			break
		}
		mc.exception(cop0.RI, 0)
	}

	return nil
}

// signed division. the results for division by zero and for the one
// overflowing division are what the hardware produces
func (mc *CPU) div(n int32, d int32) {
	switch {
	case d == 0:
		mc.hi = uint32(n)
		if n >= 0 {
			mc.lo = 0xffffffff
		} else {
			mc.lo = 1
		}
	case n == -0x80000000 && d == -1:
		mc.hi = 0
		mc.lo = 0x80000000
	default:
		mc.hi = uint32(n % d)
		mc.lo = uint32(n / d)
	}
}

func (mc *CPU) executeLoad(ins instructions.Instruction, address uint32, rt uint32, load pendingLoad) error {
	switch ins.Opcode {
	case instructions.LB, instructions.LBU:
		v, err := mc.read(address, bus.Byte)
		if err != nil {
			return err
		}
		if ins.Opcode == instructions.LB {
			v = uint32(int32(int8(v)))
		}
		mc.scheduleLoad(ins.Rt, v)

	case instructions.LH, instructions.LHU:
		if !bus.Half.Aligned(address) {
			mc.addressError(cop0.AdEL, address)
			return nil
		}
		v, err := mc.read(address, bus.Half)
		if err != nil {
			return err
		}
		if ins.Opcode == instructions.LH {
			v = uint32(int32(int16(v)))
		}
		mc.scheduleLoad(ins.Rt, v)

	case instructions.LW:
		if !bus.Word.Aligned(address) {
			mc.addressError(cop0.AdEL, address)
			return nil
		}
		v, err := mc.read(address, bus.Word)
		if err != nil {
			return err
		}
		mc.scheduleLoad(ins.Rt, v)

	case instructions.LWL, instructions.LWR:
		w, err := mc.read(address&^0x03, bus.Word)
		if err != nil {
			return err
		}

		// unaligned loads merge with a load to the same register that is
		// still in flight
		cur := rt
		if load.valid && load.reg == ins.Rt {
			cur = load.value
		}

		var v uint32
		if ins.Opcode == instructions.LWL {
			switch address & 0x03 {
			case 0:
				v = cur&0x00ffffff | w<<24
			case 1:
				v = cur&0x0000ffff | w<<16
			case 2:
				v = cur&0x000000ff | w<<8
			case 3:
				v = w
			}
		} else {
			switch address & 0x03 {
			case 0:
				v = w
			case 1:
				v = cur&0xff000000 | w>>8
			case 2:
				v = cur&0xffff0000 | w>>16
			case 3:
				v = cur&0xffffff00 | w>>24
			}
		}
		mc.scheduleLoad(ins.Rt, v)
	}

	return nil
}

func (mc *CPU) executeStore(ins instructions.Instruction, address uint32, rt uint32) error {
	switch ins.Opcode {
	case instructions.SH:
		if !bus.Half.Aligned(address) {
			mc.addressError(cop0.AdES, address)
			return nil
		}
	case instructions.SW:
		if !bus.Word.Aligned(address) {
			mc.addressError(cop0.AdES, address)
			return nil
		}
	}

	// stores do not reach the bus while the cache is isolated
	if mc.COP0.IsolateCache() {
		return nil
	}

	switch ins.Opcode {
	case instructions.SB:
		return mc.write(address, bus.Byte, rt&0xff)
	case instructions.SH:
		return mc.write(address, bus.Half, rt&0xffff)
	case instructions.SW:
		return mc.write(address, bus.Word, rt)
	}

	// unaligned stores
	aligned := address &^ 0x03
	cur, err := mc.read(aligned, bus.Word)
	if err != nil {
		return err
	}

	var v uint32
	if ins.Opcode == instructions.SWL {
		switch address & 0x03 {
		case 0:
			v = cur&0xffffff00 | rt>>24
		case 1:
			v = cur&0xffff0000 | rt>>16
		case 2:
			v = cur&0xff000000 | rt>>8
		case 3:
			v = rt
		}
	} else {
		switch address & 0x03 {
		case 0:
			v = rt
		case 1:
			v = cur&0x000000ff | rt<<8
		case 2:
			v = cur&0x0000ffff | rt<<16
		case 3:
			v = cur&0x00ffffff | rt<<24
		}
	}

	return mc.write(aligned, bus.Word, v)
}

func (mc *CPU) coprocessorUsable(n int) bool {
	switch n {
	case 0:
		return mc.COP0.CoprocessorUsable(0)
	case 2:
		return mc.cop2 != nil && mc.COP0.CoprocessorUsable(2)
	}
	return false
}

func (mc *CPU) executeCoprocessor(ins instructions.Instruction, rs uint32, rt uint32) error {
	// only coprocessor 2 supports loads and stores
	if (ins.Opcode == instructions.LWC || ins.Opcode == instructions.SWC) && ins.Cop != 2 {
		mc.exception(cop0.CpU, ins.Cop)
		return nil
	}

	if !mc.coprocessorUsable(ins.Cop) {
		mc.exception(cop0.CpU, ins.Cop)
		return nil
	}

	if ins.Cop == 0 {
		switch ins.Opcode {
		case instructions.MFC:
			mc.scheduleLoad(ins.Rt, mc.COP0.Read(ins.Rd))
		case instructions.MTC:
			mc.COP0.Write(ins.Rd, rt)
		case instructions.RFE:
			mc.COP0.ReturnFromException()
		default:
			mc.exception(cop0.RI, 0)
		}
		return nil
	}

	switch ins.Opcode {
	case instructions.MFC:
		mc.scheduleLoad(ins.Rt, mc.cop2.Read(ins.Rd))
	case instructions.CFC:
		mc.scheduleLoad(ins.Rt, mc.cop2.ReadControl(ins.Rd))
	case instructions.MTC:
		mc.cop2.Write(ins.Rd, rt)
	case instructions.CTC:
		mc.cop2.WriteControl(ins.Rd, rt)
	case instructions.COP:
		mc.cop2.Command(ins.Command())
	case instructions.LWC:
		address := rs + ins.SignedImm()
		if !bus.Word.Aligned(address) {
			mc.addressError(cop0.AdEL, address)
			return nil
		}
		v, err := mc.read(address, bus.Word)
		if err != nil {
			return err
		}
		mc.cop2.Write(ins.Rt, v)
	case instructions.SWC:
		address := rs + ins.SignedImm()
		if !bus.Word.Aligned(address) {
			mc.addressError(cop0.AdES, address)
			return nil
		}
		if mc.COP0.IsolateCache() {
			return nil
		}
		return mc.write(address, bus.Word, mc.cop2.Read(ins.Rt))
	default:
		mc.exception(cop0.RI, 0)
	}

	return nil
}
