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

// Package clocks defines the constant values that define the speed of the
// clocks in the PSX console.
//
// The CPU clock is the same in NTSC and PAL consoles. The GPU clock differs
// and is included for the benefit of GPU collaborators that need to convert
// CPU cycles to video cycles.
package clocks

import "time"

// Clock speeds in MHz.
const (
	CPU      = 33.8688
	GPU_NTSC = 53.693175
	GPU_PAL  = 53.203425
)

// Duration converts a number of CPU cycles to the time that would have
// elapsed on a real console.
func Duration(cycles uint64) time.Duration {
	return time.Duration(float64(cycles) / CPU * float64(time.Microsecond))
}

// Cycles converts a duration to the number of CPU cycles that would elapse on
// a real console.
func Cycles(d time.Duration) uint64 {
	return uint64(float64(d) / float64(time.Microsecond) * CPU)
}

// GPUCycles converts a number of CPU cycles to the number of GPU cycles for
// the GPU clock. The clock should be GPU_NTSC or GPU_PAL.
func GPUCycles(cycles int, clock float64) int {
	return int(float64(cycles) * clock / CPU)
}
