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

package cop0

import (
	"fmt"

	"github.com/jetsetilly/gopherpsx/hardware/instance"
)

// COP0 is the system control coprocessor.
type COP0 struct {
	env *instance.Instance

	sr       uint32
	cause    uint32
	epc      uint32
	badVAddr uint32

	// breakpoint registers. they are readable and writable but have no
	// effect on execution
	bpc      uint32
	bda      uint32
	jumpdest uint32
	dcic     uint32
	bdam     uint32
	bpcm     uint32

	// the number of exceptions entered and not yet returned from. a write to
	// SR replaces the mode stack and so starts the count again
	depth int

	// NestingOverflow is true if an exception has been entered when the mode
	// stack was already full. Overflows is the number of times it has
	// happened since reset
	NestingOverflow bool
	Overflows       int
}

// NewCOP0 is the preferred method of initialisation for the COP0 type. The
// env argument can be nil.
func NewCOP0(env *instance.Instance) *COP0 {
	cp := &COP0{env: env}
	cp.Reset()
	return cp
}

func (cp *COP0) String() string {
	return fmt.Sprintf("sr=%08x cause=%08x epc=%08x badvaddr=%08x", cp.sr, cp.cause, cp.epc, cp.badVAddr)
}

// Snapshot creates a copy of the coprocessor in its current state.
func (cp *COP0) Snapshot() *COP0 {
	n := *cp
	return &n
}

// Plumb restores the state of the coprocessor from a snapshot. The
// environment is kept.
func (cp *COP0) Plumb(s *COP0) {
	env := cp.env
	*cp = *s
	cp.env = env
}

// Reset the coprocessor to its power-on state. Exceptions go to the boot
// vector until the BEV bit is cleared.
func (cp *COP0) Reset() {
	env := cp.env
	*cp = COP0{env: env}
	cp.sr = srBEV
}

// Read returns the value of a register, as used by the MFC0 instruction.
// Registers that do not exist read as zero.
func (cp *COP0) Read(reg int) uint32 {
	switch reg {
	case BPC:
		return cp.bpc
	case BDA:
		return cp.bda
	case JUMPDEST:
		return cp.jumpdest
	case DCIC:
		return cp.dcic
	case BadVAddr:
		return cp.badVAddr
	case BDAM:
		return cp.bdam
	case BPCM:
		return cp.bpcm
	case SR:
		return cp.sr
	case Cause:
		return cp.cause
	case EPC:
		return cp.epc
	case PRId:
		return revision
	}
	return 0
}

// Write sets the value of a register, as used by the MTC0 instruction.
// Writes to read-only registers are ignored. Only the software interrupt
// bits of the Cause register can be written.
func (cp *COP0) Write(reg int, value uint32) {
	switch reg {
	case BPC:
		cp.bpc = value
	case BDA:
		cp.bda = value
	case DCIC:
		cp.dcic = value
	case BDAM:
		cp.bdam = value
	case BPCM:
		cp.bpcm = value
	case SR:
		cp.sr = value
		cp.depth = 0
	case Cause:
		cp.cause = cp.cause&^causeSoftware | value&causeSoftware
	}
}

// SetBadVAddr records the address that caused an address error exception.
func (cp *COP0) SetBadVAddr(address uint32) {
	cp.badVAddr = address
}

// EnterException updates the coprocessor for the start of an exception and
// returns the address of the exception handler.
//
// The epc argument is the address of the instruction that caused the
// exception, or the address of the next instruction to execute in the case of
// interrupts. If that instruction is in a branch delay slot then EPC is set to
// the address of the branch and the BD bit is set.
//
// The coprocessor argument is only meaningful for the CpU exception.
func (cp *COP0) EnterException(code ExcCode, epc uint32, inDelay bool, coprocessor int) uint32 {
	cp.cause &= causeIP
	cp.cause |= (uint32(code) << causeExcShift) & causeExcCode
	cp.cause |= (uint32(coprocessor) & 0x03) << causeCEShift

	if inDelay {
		cp.epc = epc - 4
		cp.cause |= causeBD
	} else {
		cp.epc = epc
	}

	// the old mode is lost if the stack is full
	if cp.depth >= 2 {
		cp.NestingOverflow = true
		cp.Overflows++
		if cp.env != nil {
			cp.env.Log.Logf(cp.env, "cop0", "%s exception nested too deeply (EPC %08x)", code, cp.epc)
		}
	} else {
		cp.depth++
	}

	// push mode stack. kernel mode with interrupts disabled
	cp.sr = cp.sr&^srMode | (cp.sr<<2)&srMode

	if cp.sr&srBEV == srBEV {
		return vectorBoot
	}
	return vectorNormal
}

// ReturnFromException pops the mode stack, as used by the RFE instruction.
// The oldest entry of the stack is unchanged.
func (cp *COP0) ReturnFromException() {
	cp.sr = cp.sr&^0x0f | (cp.sr>>2)&0x0f
	if cp.depth > 0 {
		cp.depth--
	}
}

// InterruptPending returns true if an interrupt exception should be taken.
// The external argument is the state of the interrupt controller, which is
// visible in the Cause register.
func (cp *COP0) InterruptPending(external bool) bool {
	if external {
		cp.cause |= causeHardware
	} else {
		cp.cause &^= causeHardware
	}
	return cp.sr&srIEc == srIEc && cp.cause&cp.sr&srIM != 0
}

// IsolateCache returns true if the cache is isolated from memory. When
// isolated, stores by the CPU do not reach the bus.
func (cp *COP0) IsolateCache() bool {
	return cp.sr&srIsC == srIsC
}

// CoprocessorUsable returns true if the usable bit for the coprocessor is set.
// Coprocessor 0 is always usable in kernel mode.
func (cp *COP0) CoprocessorUsable(n int) bool {
	if n == 0 && cp.KernelMode() {
		return true
	}
	return cp.sr&(1<<(srCUShift+n)) != 0
}

// KernelMode returns true if the current mode is kernel mode.
func (cp *COP0) KernelMode() bool {
	return cp.sr&srKUc == 0
}

// Status returns the status register.
func (cp *COP0) Status() uint32 {
	return cp.sr
}

// Cause returns the cause register.
func (cp *COP0) Cause() uint32 {
	return cp.cause
}

// EPC returns the exception program counter.
func (cp *COP0) EPC() uint32 {
	return cp.epc
}

// ExcCode returns the code of the most recent exception.
func (cp *COP0) ExcCode() ExcCode {
	return ExcCode((cp.cause & causeExcCode) >> causeExcShift)
}

// BranchDelay returns true if the most recent exception happened in a branch
// delay slot.
func (cp *COP0) BranchDelay() bool {
	return cp.cause&causeBD == causeBD
}

// CE returns the coprocessor number of the most recent CpU exception.
func (cp *COP0) CE() int {
	return int(cp.cause>>causeCEShift) & 0x03
}
