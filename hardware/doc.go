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

// Package hardware is the base package for the PSX emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The PSX type is the root of the emulation and contains external references
// to all the PSX sub-systems. From here, the emulation can either be started
// to run continuously (with optional callback to check for continuation); or
// it can be stepped instruction by instruction.
//
// Peripherals that are not part of the core (the GPU, the SPU, the CD-ROM
// controller and so on) are attached from outside the package. A peripheral
// with registers is attached to the bus with AttachDevice(), a peripheral that
// exchanges data by DMA is attached with AttachPort() and a peripheral that
// needs to run alongside the CPU is attached with AttachClocked().
package hardware
