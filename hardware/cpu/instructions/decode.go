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

// Instruction is a decoded instruction word. Not every field is meaningful
// for every opcode.
type Instruction struct {
	Word   uint32
	Opcode Opcode

	// register numbers
	Rs int
	Rt int
	Rd int

	// shift amount
	Shamt uint32

	// the immediate value without sign extension
	Imm uint32

	// the 26 bit target of the J and JAL instructions
	Target uint32

	// the coprocessor number of coprocessor instructions
	Cop int
}

// SignedImm returns the immediate value sign extended to 32 bits.
func (ins Instruction) SignedImm() uint32 {
	return uint32(int32(int16(ins.Imm)))
}

// BranchOffset returns the offset of a conditional branch relative to the
// address of the delay slot.
func (ins Instruction) BranchOffset() uint32 {
	return ins.SignedImm() << 2
}

// Command returns the 25 bit command of a COP instruction.
func (ins Instruction) Command() uint32 {
	return ins.Word & 0x01ffffff
}

// primary opcode field values
const (
	opSpecial = 0x00
	opRegImm  = 0x01
	opJ       = 0x02
	opJAL     = 0x03
	opBEQ     = 0x04
	opBNE     = 0x05
	opBLEZ    = 0x06
	opBGTZ    = 0x07
	opADDI    = 0x08
	opADDIU   = 0x09
	opSLTI    = 0x0a
	opSLTIU   = 0x0b
	opANDI    = 0x0c
	opORI     = 0x0d
	opXORI    = 0x0e
	opLUI     = 0x0f
	opCOP0    = 0x10
	opCOP3    = 0x13
	opLB      = 0x20
	opLH      = 0x21
	opLWL     = 0x22
	opLW      = 0x23
	opLBU     = 0x24
	opLHU     = 0x25
	opLWR     = 0x26
	opSB      = 0x28
	opSH      = 0x29
	opSWL     = 0x2a
	opSW      = 0x2b
	opSWR     = 0x2e
	opLWC0    = 0x30
	opLWC3    = 0x33
	opSWC0    = 0x38
	opSWC3    = 0x3b
)

var primary = map[uint32]Opcode{
	opJ:     J,
	opJAL:   JAL,
	opBEQ:   BEQ,
	opBNE:   BNE,
	opBLEZ:  BLEZ,
	opBGTZ:  BGTZ,
	opADDI:  ADDI,
	opADDIU: ADDIU,
	opSLTI:  SLTI,
	opSLTIU: SLTIU,
	opANDI:  ANDI,
	opORI:   ORI,
	opXORI:  XORI,
	opLUI:   LUI,
	opLB:    LB,
	opLH:    LH,
	opLWL:   LWL,
	opLW:    LW,
	opLBU:   LBU,
	opLHU:   LHU,
	opLWR:   LWR,
	opSB:    SB,
	opSH:    SH,
	opSWL:   SWL,
	opSW:    SW,
	opSWR:   SWR,
}

// function field values of the special opcode
var special = map[uint32]Opcode{
	0x00: SLL,
	0x02: SRL,
	0x03: SRA,
	0x04: SLLV,
	0x06: SRLV,
	0x07: SRAV,
	0x08: JR,
	0x09: JALR,
	0x0c: SYSCALL,
	0x0d: BREAK,
	0x10: MFHI,
	0x11: MTHI,
	0x12: MFLO,
	0x13: MTLO,
	0x18: MULT,
	0x19: MULTU,
	0x1a: DIV,
	0x1b: DIVU,
	0x20: ADD,
	0x21: ADDU,
	0x22: SUB,
	0x23: SUBU,
	0x24: AND,
	0x25: OR,
	0x26: XOR,
	0x27: NOR,
	0x2a: SLT,
	0x2b: SLTU,
}

// Decode an instruction word.
func Decode(word uint32) Instruction {
	ins := Instruction{
		Word:   word,
		Rs:     int(word>>21) & 0x1f,
		Rt:     int(word>>16) & 0x1f,
		Rd:     int(word>>11) & 0x1f,
		Shamt:  (word >> 6) & 0x1f,
		Imm:    word & 0xffff,
		Target: word & 0x03ffffff,
	}

	op := word >> 26

	switch {
	case op == opSpecial:
		ins.Opcode = special[word&0x3f]

	case op == opRegImm:
		// the R3000A decodes only bit 0 and bits 4 to 1 of the rt field
		gez := ins.Rt&0x01 == 0x01
		link := ins.Rt&0x1e == 0x10
		switch {
		case gez && link:
			ins.Opcode = BGEZAL
		case gez:
			ins.Opcode = BGEZ
		case link:
			ins.Opcode = BLTZAL
		default:
			ins.Opcode = BLTZ
		}

	case op >= opCOP0 && op <= opCOP3:
		ins.Cop = int(op - opCOP0)
		ins.Opcode = decodeCop(ins)

	case op >= opLWC0 && op <= opLWC3:
		ins.Cop = int(op - opLWC0)
		ins.Opcode = LWC

	case op >= opSWC0 && op <= opSWC3:
		ins.Cop = int(op - opSWC0)
		ins.Opcode = SWC

	default:
		ins.Opcode = primary[op]
	}

	return ins
}

func decodeCop(ins Instruction) Opcode {
	// commands have bit 4 of the rs field set
	if ins.Rs&0x10 == 0x10 {
		if ins.Cop == 0 {
			if ins.Word&0x3f == 0x10 {
				return RFE
			}
			return Illegal
		}
		return COP
	}

	switch ins.Rs {
	case 0x00:
		return MFC
	case 0x02:
		return CFC
	case 0x04:
		return MTC
	case 0x06:
		return CTC
	}
	return Illegal
}

// Coprocessor returns the coprocessor number of the instruction word if it is
// in one of the coprocessor groups. This is true even for words in the group
// that decode to Illegal.
func (ins Instruction) Coprocessor() (int, bool) {
	switch op := ins.Word >> 26; {
	case op >= opCOP0 && op <= opCOP3, op >= opLWC0 && op <= opLWC3, op >= opSWC0 && op <= opSWC3:
		return int(op & 0x03), true
	}
	return 0, false
}
