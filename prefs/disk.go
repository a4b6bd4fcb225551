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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand. it is maintained by the emulator ***"

// the separator between key and value in the preferences file.
const keySep = " :: "

// NoPrefsFile is returned by Load() when the preferences file does not exist.
// Callers will usually want to ignore this error.
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents preference values as stored on disk. Entries are added with
// Add() and are saved and loaded with Save() and Load().
//
// More than one Disk instance can use the same file. Save() preserves entries
// in the file that do not belong to the Disk instance.
type Disk struct {
	path    string
	entries map[string]pref

	// values from the command line stack. these take precedence over values
	// from the preferences file
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path for preferences file")
	}
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}, nil
}

// Add preference value to the Disk under the specified key. If the key is
// present in the current command line group then the value is set
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.ContainsAny(key, "\n") {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		dsk.overrides[key] = v
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	return nil
}

// Reset all entries to their zero value. Command line values are applied
// again afterwards.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return dsk.applyOverrides()
}

func (dsk *Disk) applyOverrides() error {
	for k, v := range dsk.overrides {
		if err := dsk.entries[k].Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read the preferences file into a map of strings. returns a NoPrefsFile
// error if the file does not exist.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	m := make(map[string]string)

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return m, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		m[k] = v
	}

	return m, scanner.Err()
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	m, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		m = make(map[string]string)
	}

	for k, p := range dsk.entries {
		m[k] = p.String()
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var s strings.Builder
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(keySep)
		s.WriteString(m[k])
		s.WriteString("\n")
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the file does
// not exist then the current values are saved to create it.
func (dsk *Disk) Load(saveOnFail bool) error {
	m, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			return dsk.Save()
		}
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := m[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return dsk.applyOverrides()
}
