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
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information that is
// consistent with itself.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	// every access takes at least one cycle
	if r.Cycles < r.Accesses {
		return curated.Errorf("cpu: fewer cycles than bus accesses (%d cycles for %d accesses)", r.Cycles, r.Accesses)
	}

	if !r.Fetched {
		// an instruction is always fetched unless an exception prevented it
		if !r.Exception {
			return curated.Errorf("cpu: no instruction fetched and no exception raised")
		}
		if r.ExcCode != cop0.Int && r.ExcCode != cop0.AdEL {
			return curated.Errorf("cpu: unexpected %s exception before instruction fetch", r.ExcCode)
		}
		if r.Accesses != 0 {
			return curated.Errorf("cpu: bus accessed without instruction fetch")
		}
		return nil
	}

	if r.Accesses < 1 {
		return curated.Errorf("cpu: instruction fetched without bus access")
	}

	if r.Instruction.Opcode == instructions.Illegal && (!r.Exception || (r.ExcCode != cop0.RI && r.ExcCode != cop0.CpU)) {
		return curated.Errorf("cpu: illegal instruction %08x did not raise an exception", r.Instruction.Word)
	}

	if r.NestedBranch {
		if !r.InDelaySlot {
			return curated.Errorf("cpu: nested branch outside of a delay slot")
		}
		if !r.Instruction.Opcode.IsBranch() {
			return curated.Errorf("cpu: nested branch for %s", r.Instruction.Opcode)
		}
	}

	if r.Exception && r.ExcCode == cop0.Int {
		return curated.Errorf("cpu: interrupt taken after instruction fetch")
	}

	return nil
}
