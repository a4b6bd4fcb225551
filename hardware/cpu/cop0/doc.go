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

// Package cop0 implements the system control coprocessor of the R3000A. On
// the PSX the coprocessor has no TLB and is concerned only with exceptions,
// interrupt enabling and the debugging registers.
//
// Exceptions are started with EnterException(), which updates the Cause and
// EPC registers and pushes the mode stack in the Status register. The vector
// of the exception handler is returned and it is the responsibility of the
// CPU to continue execution from that address. The RFE instruction pops the
// mode stack with ReturnFromException().
//
// The mode stack has three entries, the current mode and two previous modes.
// Entering an exception when two exceptions are already nested discards the
// oldest mode. Hardware does not report this and so the fact is recorded in
// the NestingOverflow field and in the log.
package cop0
