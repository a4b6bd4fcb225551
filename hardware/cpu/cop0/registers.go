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

import "fmt"

// List of register numbers.
const (
	BPC      = 3
	BDA      = 5
	JUMPDEST = 6
	DCIC     = 7
	BadVAddr = 8
	BDAM     = 9
	BPCM     = 11
	SR       = 12
	Cause    = 13
	EPC      = 14
	PRId     = 15
)

// RegisterName returns the conventional name of the coprocessor register.
func RegisterName(reg int) string {
	switch reg {
	case BPC:
		return "BPC"
	case BDA:
		return "BDA"
	case JUMPDEST:
		return "JUMPDEST"
	case DCIC:
		return "DCIC"
	case BadVAddr:
		return "BadVAddr"
	case BDAM:
		return "BDAM"
	case BPCM:
		return "BPCM"
	case SR:
		return "SR"
	case Cause:
		return "Cause"
	case EPC:
		return "EPC"
	case PRId:
		return "PRId"
	}
	return fmt.Sprintf("cop0r%d", reg)
}

// ExcCode is the exception code stored in the Cause register.
type ExcCode int

// List of valid ExcCode values. The TLB exceptions are not possible on the
// PSX and are omitted.
const (
	Int  ExcCode = 0x00
	AdEL ExcCode = 0x04
	AdES ExcCode = 0x05
	IBE  ExcCode = 0x06
	DBE  ExcCode = 0x07
	Sys  ExcCode = 0x08
	Bp   ExcCode = 0x09
	RI   ExcCode = 0x0a
	CpU  ExcCode = 0x0b
	Ov   ExcCode = 0x0c
)

func (c ExcCode) String() string {
	switch c {
	case Int:
		return "Int"
	case AdEL:
		return "AdEL"
	case AdES:
		return "AdES"
	case IBE:
		return "IBE"
	case DBE:
		return "DBE"
	case Sys:
		return "Sys"
	case Bp:
		return "Bp"
	case RI:
		return "RI"
	case CpU:
		return "CpU"
	case Ov:
		return "Ov"
	}
	return fmt.Sprintf("exception %#02x", int(c))
}

// bits in the status register.
const (
	srIEc  = 1 << 0
	srKUc  = 1 << 1
	srMode = 0x3f
	srIM   = 0xff00
	srIsC  = 1 << 16
	srBEV  = 1 << 22

	srCUShift = 28
)

// bits in the cause register.
const (
	causeExcCode  = 0x7c
	causeSoftware = 0x0300
	causeHardware = 1 << 10
	causeIP       = 0xff00
	causeBD       = 1 << 31

	causeExcShift = 2
	causeCEShift  = 28
)

// vectors for the general exception handler.
const (
	vectorBoot   = 0xbfc00180
	vectorNormal = 0x80000080
)

// the value of the processor ID register.
const revision = 0x00000002
