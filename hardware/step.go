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

package hardware

import (
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
)

// Step the emulation forward by one CPU instruction. The DMA engine is
// serviced after the instruction and the clocked collaborators are brought
// up to date.
//
// Returns the number of cycles that have elapsed during the step. This
// includes the cycles taken by the bus for the DMA transfers.
//
// The bus is sealed by the first call to Step().
func (psx *PSX) Step() (int, error) {
	psx.Mem.Seal()

	start := psx.Mem.Cycles()

	// when catching up on every access, the clocked collaborators see the
	// effect of each bus access before the instruction has finished
	var access func(int) error
	if len(psx.clocked) > 0 && psx.Env.Prefs.CatchUp.Get().(string) == preferences.CatchUpAccess {
		access = func(_ int) error {
			return psx.catchUp()
		}
	}

	err := psx.CPU.ExecuteInstruction(access)
	if err != nil {
		return int(psx.Mem.Cycles() - start), err
	}

	_, err = psx.DMA.Service(psx.Env.Prefs.DMAGranularity.Get().(int))
	if err != nil {
		return int(psx.Mem.Cycles() - start), err
	}

	err = psx.catchUp()
	if err != nil {
		return int(psx.Mem.Cycles() - start), err
	}

	psx.steps++

	return int(psx.Mem.Cycles() - start), nil
}

// bring the clocked collaborators up to date with the bus cycle counter
func (psx *PSX) catchUp() error {
	now := psx.Mem.Cycles()
	if now == psx.caughtUp {
		return nil
	}
	n := int(now - psx.caughtUp)
	psx.caughtUp = now

	for _, c := range psx.clocked {
		if err := c.Clock(n); err != nil {
			return err
		}
	}

	return nil
}
