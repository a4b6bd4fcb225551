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

package instructions

import "fmt"

var registerNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// RegisterName returns the conventional name of a general purpose register.
func RegisterName(reg int) string {
	if reg < 0 || reg >= len(registerNames) {
		return fmt.Sprintf("r%d", reg)
	}
	return registerNames[reg]
}

func reg(r int) string {
	return "$" + RegisterName(r)
}

// String returns the instruction in assembler format. Branch targets are
// expressed as offsets from the delay slot. Use Disassemble() for absolute
// branch targets.
func (ins Instruction) String() string {
	return ins.format(func(offset uint32) string {
		return fmt.Sprintf("%+d", int32(offset))
	}, func(target uint32) string {
		return fmt.Sprintf("(%07x)", target<<2)
	})
}

// Disassemble returns the instruction in assembler format with branch and
// jump targets resolved for an instruction at the address.
func (ins Instruction) Disassemble(address uint32) string {
	return ins.format(func(offset uint32) string {
		return fmt.Sprintf("%08x", address+4+offset)
	}, func(target uint32) string {
		return fmt.Sprintf("%08x", (address+4)&0xf0000000|target<<2)
	})
}

func (ins Instruction) format(branch func(uint32) string, jump func(uint32) string) string {
	m := ins.Opcode.String()

	switch ins.Opcode {
	case Illegal:
		return fmt.Sprintf("illegal %08x", ins.Word)

	case SLL, SRL, SRA:
		if ins.Word == 0 {
			return "nop"
		}
		return fmt.Sprintf("%s %s, %s, %d", m, reg(ins.Rd), reg(ins.Rt), ins.Shamt)

	case SLLV, SRLV, SRAV:
		return fmt.Sprintf("%s %s, %s, %s", m, reg(ins.Rd), reg(ins.Rt), reg(ins.Rs))

	case ADD, ADDU, SUB, SUBU, AND, OR, XOR, NOR, SLT, SLTU:
		return fmt.Sprintf("%s %s, %s, %s", m, reg(ins.Rd), reg(ins.Rs), reg(ins.Rt))

	case ADDI, ADDIU, SLTI, SLTIU:
		return fmt.Sprintf("%s %s, %s, %d", m, reg(ins.Rt), reg(ins.Rs), int32(ins.SignedImm()))

	case ANDI, ORI, XORI:
		return fmt.Sprintf("%s %s, %s, 0x%04x", m, reg(ins.Rt), reg(ins.Rs), ins.Imm)

	case LUI:
		return fmt.Sprintf("%s %s, 0x%04x", m, reg(ins.Rt), ins.Imm)

	case MULT, MULTU, DIV, DIVU:
		return fmt.Sprintf("%s %s, %s", m, reg(ins.Rs), reg(ins.Rt))

	case MFHI, MFLO:
		return fmt.Sprintf("%s %s", m, reg(ins.Rd))

	case MTHI, MTLO, JR:
		return fmt.Sprintf("%s %s", m, reg(ins.Rs))

	case JALR:
		if ins.Rd == 31 {
			return fmt.Sprintf("%s %s", m, reg(ins.Rs))
		}
		return fmt.Sprintf("%s %s, %s", m, reg(ins.Rd), reg(ins.Rs))

	case J, JAL:
		return fmt.Sprintf("%s %s", m, jump(ins.Target))

	case BEQ, BNE:
		return fmt.Sprintf("%s %s, %s, %s", m, reg(ins.Rs), reg(ins.Rt), branch(ins.BranchOffset()))

	case BLEZ, BGTZ, BLTZ, BGEZ, BLTZAL, BGEZAL:
		return fmt.Sprintf("%s %s, %s", m, reg(ins.Rs), branch(ins.BranchOffset()))

	case LB, LBU, LH, LHU, LW, LWL, LWR, SB, SH, SW, SWL, SWR:
		return fmt.Sprintf("%s %s, %d(%s)", m, reg(ins.Rt), int32(ins.SignedImm()), reg(ins.Rs))

	case MFC, CFC, MTC, CTC:
		return fmt.Sprintf("%s%d %s, $%d", m, ins.Cop, reg(ins.Rt), ins.Rd)

	case COP:
		return fmt.Sprintf("%s%d 0x%07x", m, ins.Cop, ins.Command())

	case LWC, SWC:
		return fmt.Sprintf("%s%d $%d, %d(%s)", m, ins.Cop, ins.Rt, int32(ins.SignedImm()), reg(ins.Rs))

	case SYSCALL, BREAK:
		if code := (ins.Word >> 6) & 0xfffff; code != 0 {
			return fmt.Sprintf("%s 0x%05x", m, code)
		}
	}

	return m
}
