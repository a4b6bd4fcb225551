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

// Package instructions decodes the 32 bit instruction words of the R3000A.
// Every word decodes to an Instruction with one of the values of the Opcode
// type. Words that are not valid instructions decode to the Illegal opcode.
//
// The String() and Disassemble() functions of the Instruction type produce
// text in the conventional MIPS assembler style.
package instructions
