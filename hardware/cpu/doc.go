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

// Package cpu emulates the R3000A found in the PSX. The R3000A is a 32 bit
// MIPS processor with a five stage pipeline. The pipeline is not emulated
// directly but the two visible effects of the pipeline are: the branch delay
// slot and the load delay slot.
//
// The instruction following a branch or jump is always executed before the
// branch is taken. This is the delay slot of the branch. The value read by a
// load instruction is not available to the instruction that immediately
// follows it. The following instruction sees the old value of the register
// unless it writes to the register itself, in which case the loaded value is
// discarded.
//
// The instance of the CPU type requires an instance of the Memory interface,
// which will normally be the memory.Memory type. See the memory package for
// details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called after every bus
// access, with the number of cycles taken by the access.
//
//	mc := cpu.NewCPU(env, mem, irq)
//	mc.Reset()
//
//	for {
//		err := mc.ExecuteInstruction(func(cycles int) error {
//			return nil
//		})
//		if err != nil {
//			break
//		}
//	}
//
// The LastResult field can be inspected for information about the last
// instruction executed. See the execution package for more information.
//
// Exceptions, including interrupts, are handled by the system control
// coprocessor. See the cop0 package. The CPU samples the interrupt line at
// the start of every call to ExecuteInstruction().
//
// The geometry transformation engine (GTE) is coprocessor 2 and can be
// attached with AttachCOP2(). Without a COP2 all coprocessor 2 instructions
// raise the coprocessor unusable exception.
package cpu
