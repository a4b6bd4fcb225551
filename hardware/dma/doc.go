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

// Package dma implements the DMA engine of the PSX. The engine has seven
// channels, each connecting main RAM with a peripheral Port.
//
// Channel registers are exposed through the bus window at 0x1f801080. Every
// channel occupies 16 bytes of the window: the memory address register
// (MADR), the block control register (BCR) and the channel control register
// (CHCR). The control register (DPCR) and the interrupt register (DICR) are
// at the end of the window.
//
// Transfers are performed by the Service() function, which should be called
// by the machine after every CPU instruction. Channels do not run
// concurrently with the CPU. Channels that are ready are ordered by the
// priority value in DPCR, lowest first. When two channels have the same
// priority value the higher numbered channel goes first.
//
// There are three synchronisation modes:
//
// Manual mode transfers the entire block in one call to Service(). If
// chopping is enabled the transfer is split into bursts and one burst is
// transferred for every call to Service().
//
// Request mode transfers blocks of words while the Port is requesting data.
// At most one word is transferred per channel per arbitration pass so that
// request mode channels interleave.
//
// Linked list mode follows a chain of headers in RAM, sending the words that
// follow each header to the Port. A chain that cannot be followed is aborted
// and recorded in the Faults log. See the faults package.
//
// Channel 6 is the ordering table clear (OTC) channel. It has no peripheral
// and writes a reverse linked list of empty nodes into RAM.
package dma
