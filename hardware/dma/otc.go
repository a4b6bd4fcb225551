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

package dma

// the value written by the OTC channel for the word at the address. the last
// word of the table is the end marker and every other word points to the word
// before it.
func orderingTable(address uint32, remaining uint32) uint32 {
	if remaining == 1 {
		return 0x00ffffff
	}
	return (address - 4) & addressMask
}
