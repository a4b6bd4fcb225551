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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock is the source of emulated time for the random number generator.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// the number of values generated for the current cycle count. prevents
	// repeated calls in the same cycle from returning the same value
	cycles uint64
	n      uint64
}

// NewRandom is the preferred method of initialisation for the Random type.
// The clock can be nil, in which case it can be supplied later with Plumb().
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// Plumb a new clock into the random number generator.
func (rnd *Random) Plumb(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand() *rand.Rand {
	var c uint64
	if rnd.clock != nil {
		c = rnd.clock.Cycles()
	}

	if c != rnd.cycles {
		rnd.cycles = c
		rnd.n = 0
	}
	rnd.n++

	seed := c
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewPCG(seed, rnd.n))
}

// Uint32 returns a random 32 bit value.
func (rnd *Random) Uint32() uint32 {
	return rnd.rand().Uint32()
}

// IntN returns a random value in the range [0,n).
func (rnd *Random) IntN(n int) int {
	return rnd.rand().IntN(n)
}
