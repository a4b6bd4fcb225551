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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
)

// Result records the outcome of a single step of the CPU.
type Result struct {
	// the address of the instruction. if an interrupt was taken instead of
	// an instruction then this is the address of the instruction that will
	// execute after the interrupt handler returns
	Address uint32

	// the decoded instruction. not valid if Fetched is false
	Instruction instructions.Instruction
	Fetched     bool

	// number of cycles taken by bus accesses and the number of accesses,
	// including the instruction fetch
	Cycles   int
	Accesses int

	// the instruction was in the delay slot of a branch
	InDelaySlot bool

	// the instruction scheduled a branch while it was itself in a delay slot
	NestedBranch bool

	// an exception was raised during the step. an interrupt has the Int
	// exception code
	Exception bool
	ExcCode   cop0.ExcCode

	// the step has completed
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%08x ", r.Address)
	if r.Fetched {
		s.WriteString(r.Instruction.Disassemble(r.Address))
	} else {
		s.WriteString("-")
	}
	if r.InDelaySlot {
		s.WriteString(" [delay slot]")
	}
	if r.NestedBranch {
		s.WriteString(" [nested branch]")
	}
	if r.Exception {
		fmt.Fprintf(&s, " [%s]", r.ExcCode)
	}
	return s.String()
}
