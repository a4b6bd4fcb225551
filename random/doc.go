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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// Random numbers are seeded by the cycle count of the emulated machine. The
// same cycle count always results in the same sequence of numbers for a
// given Random instance. This means that two instances of the emulation that
// are stepped identically see the same random values.
//
// If the same random numbers are required every single time, regardless of
// the process that is running the emulation, then set ZeroSeed to true. This
// is useful for testing purposes.
package random
