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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the PSX type, but is not actually the PSX itself.
//
// Particularly useful when running more than one instance of the emulation in
// parallel.
package instance

import (
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/jetsetilly/gopherpsx/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main       Label = ""
	Comparison Label = "comparison"
	Script     Label = "script"
)

// maximum number of entries in an instance's log.
const maxLogEntries = 1024

// Instance defines those parts of the emulation that might change between
// different instantiations of the PSX type, but is not actually the PSX
// itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences

	// log entries created by the hardware of this instance
	Log *logger.Logger
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil and a new prefs instance will be created.
// Providing a non-nil value allows the preferences of more than one PSX
// instance to be synchronised.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label:  label,
		Random: random.NewRandom(nil),
		Log:    logger.NewLogger(maxLogEntries),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	ins.Prefs = prefs

	return ins, nil
}

// AllowLogging implements the logger.Permission interface. Only instances
// with the Main or Script label create log entries.
func (ins *Instance) AllowLogging() bool {
	return ins.Label == Main || ins.Label == Script
}

// Normalise ensures the PSX instance is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
