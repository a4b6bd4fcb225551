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

// Package script runs Lua scripts against a running PSX emulation. Scripts
// are useful for setting up test conditions, for poking at the state of the
// machine and for running small test programs without a BIOS.
//
// The following functions are available to a script:
//
//	peek(address [, width])          returns the value at the address
//	poke(address, value [, width])   changes the value at the address
//	reg(n)                           returns general purpose register n
//	setreg(n, value)                 changes general purpose register n
//	pc()                             returns the program counter
//	setpc(address)                   changes the program counter
//	step([n])                        runs n steps and returns the elapsed cycles
//	raise(line)                      raises an interrupt line
//	cycles()                         returns the bus cycle counter
//	print(...)                       writes to the script output
//
// Width is one of 8, 16 or 32. The default width is 32.
//
// Access to memory from a script does not advance the cycle counter and is not
// subject to the StrictBus preference.
package script
