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

// ExecuteInstruction steps the CPU forward by one instruction. If an
// interrupt is pending and enabled, or if the PC is misaligned, the
// instruction is not executed and the exception is raised instead.
//
// The callback function will be called after every bus access. It can be nil.
//
// Errors are returned only for problems with the emulation, such as unmapped
// accesses when the StrictBus preference is set. Exceptions raised by the
// emulated program are not errors. After an error the PC and the pending load
// and branch slots are as they were before the call, so the instruction is
// attempted again by the next call.
func (mc *CPU) ExecuteInstruction(callback func(cycles int) error) error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.pc
	mc.cycleCallback = callback
	mc.written = -1

	// consume the slots scheduled by the previous instruction
	delay := mc.branch
	mc.branch = pendingBranch{}
	load := mc.load
	mc.load = pendingLoad{}

	mc.LastResult.InDelaySlot = delay.valid

	if mc.COP0.InterruptPending(mc.irq != nil && mc.irq.Active()) {
		mc.retire(load)
		mc.exception(cop0.Int, 0)
		mc.LastResult.Final = true
		return nil
	}

	if mc.pc&0x03 != 0 {
		mc.retire(load)
		mc.COP0.SetBadVAddr(mc.pc)
		mc.exception(cop0.AdEL, 0)
		mc.LastResult.Final = true
		return nil
	}

	word, err := mc.read(mc.pc, bus.Word)
	if err != nil {
		mc.rewind(delay, load)
		return err
	}

	ins := instructions.Decode(word)
	mc.LastResult.Instruction = ins
	mc.LastResult.Fetched = true

	// PC is now the address of the delay slot should the instruction be a
	// branch
	mc.pc += 4

	err = mc.execute(ins, load)
	if err != nil {
		mc.rewind(delay, load)
		return err
	}

	mc.retire(load)

	if delay.valid && !mc.LastResult.Exception {
		mc.pc = delay.target
	}

	if mc.LastResult.NestedBranch {
		mc.log("branch in delay slot at %08x", mc.LastResult.Address)
	}

	mc.LastResult.Final = true

	return nil
}

// restore the state consumed by an instruction that did not complete
func (mc *CPU) rewind(delay pendingBranch, load pendingLoad) {
	mc.pc = mc.LastResult.Address
	mc.branch = delay
	mc.load = load
}

// complete the load from the previous instruction unless the current
// instruction has written to the same register
func (mc *CPU) retire(load pendingLoad) {
	if load.valid && load.reg != mc.written {
		mc.regs[load.reg] = load.value
	}
}

// raise an exception for the current instruction
func (mc *CPU) exception(code cop0.ExcCode, coprocessor int) {
	mc.pc = mc.COP0.EnterException(code, mc.LastResult.Address, mc.LastResult.InDelaySlot, coprocessor)
	mc.branch = pendingBranch{}
	mc.load = pendingLoad{}
	mc.LastResult.Exception = true
	mc.LastResult.ExcCode = code
}

// raise an address error exception
func (mc *CPU) addressError(code cop0.ExcCode, address uint32) {
	mc.COP0.SetBadVAddr(address)
	mc.exception(code, 0)
}

func (mc *CPU) setReg(reg int, value uint32) {
	if reg != 0 {
		mc.regs[reg] = value
	}
	mc.written = reg
}

func (mc *CPU) scheduleLoad(reg int, value uint32) {
	if reg != 0 {
		mc.load = pendingLoad{reg: reg, value: value, valid: true}
	}
}

func (mc *CPU) branchTo(target uint32) {
	mc.branch = pendingBranch{target: target, valid: true}
	if mc.LastResult.InDelaySlot {
		mc.LastResult.NestedBranch = true
	}
}

// account for a bus access that started when the cycle counter was at the
// specified value
func (mc *CPU) access(before uint64) error {
	n := int(mc.mem.Cycles() - before)
	mc.LastResult.Cycles += n
	mc.LastResult.Accesses++
	if mc.cycleCallback != nil {
		return mc.cycleCallback(n)
	}
	return nil
}

func (mc *CPU) read(address uint32, width bus.Width) (uint32, error) {
	before := mc.mem.Cycles()
	v, err := mc.mem.Read(address, width)
	if err != nil {
		return 0, err
	}
	return v, mc.access(before)
}

func (mc *CPU) write(address uint32, width bus.Width, value uint32) error {
	before := mc.mem.Cycles()
	if err := mc.mem.Write(address, width, value); err != nil {
		return err
	}
	return mc.access(before)
}
