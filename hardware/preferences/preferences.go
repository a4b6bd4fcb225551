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

package preferences

import (
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/jetsetilly/gopherpsx/paths"
	"github.com/jetsetilly/gopherpsx/prefs"
)

// the name of the preferences file in the resource directory.
const prefsFile = "preferences"

// Valid values for the CatchUp preference.
const (
	CatchUpInstruction = "instruction"
	CatchUpAccess      = "access"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise registers and memory to an unknown state after reset
	RandomState prefs.Bool

	// access to an unmapped address is an error rather than open bus
	StrictBus prefs.Bool

	// the value returned by a read of an unmapped address when StrictBus is
	// false. truncated to the width of the access
	OpenBus prefs.Int

	// the maximum number of words transferred by request-mode and chopped
	// DMA channels between CPU instructions. zero means no limit
	DMAGranularity prefs.Int

	// when clocked devices are brought up to date. either CatchUpInstruction
	// or CatchUpAccess
	CatchUp prefs.String
}

func (p *Preferences) String() string {
	return "hardware preferences"
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
//
// Values are loaded from the preferences file if it exists. If the
// preferences file cannot be located then the preferences still work but
// cannot be saved.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.OpenBus.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || int64(v.(int)) > 0xffffffff {
			return curated.Errorf("preferences: open bus value out of range (%d)", v)
		}
		return nil
	})
	p.DMAGranularity.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("preferences: dma granularity cannot be negative (%d)", v)
		}
		return nil
	})
	p.CatchUp.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case CatchUpInstruction, CatchUpAccess:
			return nil
		}
		return curated.Errorf("preferences: unknown catch-up value (%s)", v)
	})

	pth, err := paths.ResourcePath(prefsFile)
	if err != nil {
		logger.Logf(logger.Allow, "preferences", "preferences will not be saved: %v", err)
		pth = ""
	}

	// with no path the disk is still used to apply command line values
	if pth == "" {
		pth = prefsFile
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefsValue{
		"hardware.randstate":      &p.RandomState,
		"hardware.strictbus":      &p.StrictBus,
		"hardware.openbus":        &p.OpenBus,
		"hardware.dmagranularity": &p.DMAGranularity,
		"hardware.catchup":        &p.CatchUp,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(false); err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// the interface required by prefs.Disk.Add()
type prefsValue interface {
	String() string
	Set(value prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all hardware preferences to the default values. The
// defaults are suitable for running real software.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.StrictBus.Set(false)
	p.OpenBus.Set(0xffffffff)
	p.DMAGranularity.Set(0)
	p.CatchUp.Set(CatchUpInstruction)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
