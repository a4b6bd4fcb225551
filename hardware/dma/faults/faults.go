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

package faults

import (
	"fmt"
	"io"
)

// Category classifies the reason for a transfer fault
type Category string

// List of valid Category values
const (
	MisalignedPointer Category = "misaligned pointer"
	OutsideRAM        Category = "outside RAM"
	ChainTooLong      Category = "chain too long"
	BadDirection      Category = "bad direction"
	UnsupportedSync   Category = "unsupported sync mode"
)

// Entry is a single entry in the fault log
type Entry struct {
	Category Category

	// description of the event that triggered the fault
	Event string

	// the channel that was running and the address being accessed when the
	// fault occurred
	Channel     int
	AccessAddr  uint32
	ChannelAddr uint32

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s: %06x (channel %d, MADR: %06x)", e.Category, e.Event, e.AccessAddr, e.Channel, e.ChannelAddr)
}

// Faults records aborted DMA transfers.
type Faults struct {
	// entries are keyed by the category, the channel and the access address
	entries map[string]*Entry

	// all the faults in order of the first time they appear. the Count field
	// in the Entry can be used to see if that entry was seen more than once
	// *after* the first appearance
	Log []*Entry
}

// NewFaults is the preferred method of initialisation for the Faults type.
func NewFaults() Faults {
	return Faults{
		entries: make(map[string]*Entry),
	}
}

// Clear all entries from faults log
func (flt *Faults) Clear() {
	clear(flt.entries)
	flt.Log = flt.Log[:0]
}

// Len returns the number of distinct faults in the log
func (flt Faults) Len() int {
	return len(flt.Log)
}

// Copy returns an independent copy of the faults log.
func (flt Faults) Copy() Faults {
	n := NewFaults()
	for _, e := range flt.Log {
		c := *e
		n.Log = append(n.Log, &c)
		n.entries[key(c.Category, c.Channel, c.AccessAddr)] = &c
	}
	return n
}

// WriteLog writes the list of faults in the order they were added
func (flt Faults) WriteLog(w io.Writer) {
	for _, e := range flt.Log {
		w.Write([]byte(e.String()))
		w.Write([]byte("\n"))
	}
}

func key(category Category, channel int, accessAddr uint32) string {
	return fmt.Sprintf("%s%d%08x", category, channel, accessAddr)
}

// NewEntry adds a new entry to the list of faults. The entry is returned so
// that the caller can log it.
func (flt *Faults) NewEntry(event string, category Category, channel int, channelAddr uint32, accessAddr uint32) *Entry {
	if flt.entries == nil {
		flt.entries = make(map[string]*Entry)
	}

	k := key(category, channel, accessAddr)

	e, found := flt.entries[k]
	if !found {
		e = &Entry{
			Category:    category,
			Event:       event,
			Channel:     channel,
			AccessAddr:  accessAddr,
			ChannelAddr: channelAddr,
		}

		// record entry
		flt.entries[k] = e

		// update log
		flt.Log = append(flt.Log, e)
	}

	// increase the count for this entry
	e.Count++

	return e
}
