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
	"github.com/jetsetilly/gopherpsx/hardware/cpu"
	"github.com/jetsetilly/gopherpsx/hardware/dma"
	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory"
)

// State stores the PSX sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
//
// Attached devices and clocked collaborators are not part of the snapshot
// process.
type State struct {
	CPU        *cpu.CPU
	Mem        *memory.Memory
	Interrupts *interrupts.Controller
	DMA        *dma.DMA

	steps uint64
}

// Snapshot creates a copy of a previously snapshotted PSX State.
func (s *State) Snapshot() *State {
	return &State{
		CPU:        s.CPU.Snapshot(),
		Mem:        s.Mem.Snapshot(),
		Interrupts: s.Interrupts.Snapshot(),
		DMA:        s.DMA.Snapshot(),
		steps:      s.steps,
	}
}

// Snapshot the state of the PSX sub-systems. Must be called between steps.
func (psx *PSX) Snapshot() *State {
	return &State{
		CPU:        psx.CPU.Snapshot(),
		Mem:        psx.Mem.Snapshot(),
		Interrupts: psx.Interrupts.Snapshot(),
		DMA:        psx.DMA.Snapshot(),
		steps:      psx.steps,
	}
}

// Plumb a previously snapshotted system. The state is copied so the same
// State can be plumbed more than once.
func (psx *PSX) Plumb(state *State) {
	if state == nil {
		panic("psx: cannot plumb in a nil state")
	}

	psx.CPU.Plumb(state.CPU)
	psx.Mem.Plumb(state.Mem)
	psx.Interrupts.Plumb(state.Interrupts)
	psx.DMA.Plumb(state.DMA)
	psx.steps = state.steps

	// clocked collaborators are not rewound. they continue from the
	// restored cycle count
	psx.caughtUp = psx.Mem.Cycles()
}
