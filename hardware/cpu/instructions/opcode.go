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

// Opcode identifies the operation of a decoded instruction.
type Opcode int

// List of valid Opcode values.
const (
	Illegal Opcode = iota

	// shift
	SLL
	SRL
	SRA
	SLLV
	SRLV
	SRAV

	// arithmetic and logic
	ADD
	ADDU
	SUB
	SUBU
	AND
	OR
	XOR
	NOR
	SLT
	SLTU
	ADDI
	ADDIU
	SLTI
	SLTIU
	ANDI
	ORI
	XORI
	LUI

	// multiply and divide
	MULT
	MULTU
	DIV
	DIVU
	MFHI
	MTHI
	MFLO
	MTLO

	// branch and jump
	J
	JAL
	JR
	JALR
	BEQ
	BNE
	BLEZ
	BGTZ
	BLTZ
	BGEZ
	BLTZAL
	BGEZAL

	// load and store
	LB
	LBU
	LH
	LHU
	LW
	LWL
	LWR
	SB
	SH
	SW
	SWL
	SWR

	// coprocessor. the coprocessor number is in the Cop field of the
	// Instruction
	MFC
	CFC
	MTC
	CTC
	COP
	RFE
	LWC
	SWC

	// system
	SYSCALL
	BREAK
)

var mnemonics = [...]string{
	Illegal: "illegal",
	SLL:     "sll",
	SRL:     "srl",
	SRA:     "sra",
	SLLV:    "sllv",
	SRLV:    "srlv",
	SRAV:    "srav",
	ADD:     "add",
	ADDU:    "addu",
	SUB:     "sub",
	SUBU:    "subu",
	AND:     "and",
	OR:      "or",
	XOR:     "xor",
	NOR:     "nor",
	SLT:     "slt",
	SLTU:    "sltu",
	ADDI:    "addi",
	ADDIU:   "addiu",
	SLTI:    "slti",
	SLTIU:   "sltiu",
	ANDI:    "andi",
	ORI:     "ori",
	XORI:    "xori",
	LUI:     "lui",
	MULT:    "mult",
	MULTU:   "multu",
	DIV:     "div",
	DIVU:    "divu",
	MFHI:    "mfhi",
	MTHI:    "mthi",
	MFLO:    "mflo",
	MTLO:    "mtlo",
	J:       "j",
	JAL:     "jal",
	JR:      "jr",
	JALR:    "jalr",
	BEQ:     "beq",
	BNE:     "bne",
	BLEZ:    "blez",
	BGTZ:    "bgtz",
	BLTZ:    "bltz",
	BGEZ:    "bgez",
	BLTZAL:  "bltzal",
	BGEZAL:  "bgezal",
	LB:      "lb",
	LBU:     "lbu",
	LH:      "lh",
	LHU:     "lhu",
	LW:      "lw",
	LWL:     "lwl",
	LWR:     "lwr",
	SB:      "sb",
	SH:      "sh",
	SW:      "sw",
	SWL:     "swl",
	SWR:     "swr",
	MFC:     "mfc",
	CFC:     "cfc",
	MTC:     "mtc",
	CTC:     "ctc",
	COP:     "cop",
	RFE:     "rfe",
	LWC:     "lwc",
	SWC:     "swc",
	SYSCALL: "syscall",
	BREAK:   "break",
}

func (op Opcode) String() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return mnemonics[Illegal]
	}
	return mnemonics[op]
}

// IsBranch returns true if the opcode is a branch or a jump. Branches and
// jumps are followed by a delay slot.
func (op Opcode) IsBranch() bool {
	return op >= J && op <= BGEZAL
}

// IsLoad returns true if the opcode reads from memory into a general
// purpose register.
func (op Opcode) IsLoad() bool {
	return op >= LB && op <= LWR
}

// IsStore returns true if the opcode writes a general purpose register to
// memory.
func (op Opcode) IsStore() bool {
	return op >= SB && op <= SWR
}

// IsCoprocessor returns true if the opcode is a coprocessor operation.
func (op Opcode) IsCoprocessor() bool {
	return op >= MFC && op <= SWC
}
