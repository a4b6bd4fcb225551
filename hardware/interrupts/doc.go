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

// Package interrupts implements the PSX interrupt controller. Devices raise
// interrupt lines and the controller records them in the pending register
// (I_STAT). The mask register (I_MASK) decides which pending lines are
// forwarded to the CPU. The CPU sees the result of the Active() function as
// bit 10 of the COP0 Cause register.
//
// Raising a line always sets the pending bit, regardless of the mask. The
// mask only affects whether the CPU is interrupted. A pending bit stays set
// until it is acknowledged.
//
// Acknowledgement through the bus follows the hardware: writing to I_STAT
// clears every bit that is zero in the written value and leaves every bit
// that is one unchanged.
//
//	I_STAT = I_STAT & value
//
// The Acknowledge() function takes the lines to clear. The bus write of value
// is therefore the same as Acknowledge(^value).
//
// Devices that signal with a level rather than a pulse should use Signal().
// The pending bit is set only on the rising edge of the level.
package interrupts
