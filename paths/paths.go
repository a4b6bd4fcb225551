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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// the name of the resource directory when it is found in the current
// directory.
const localResourceDir = ".gopherpsx"

// the name of the resource directory in the user's configuration directory.
const configResourceDir = "gopherpsx"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base resource directory. Empty resource
// components are ignored.
func ResourcePath(resource ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}
	pth := filepath.Join(p...)

	// create the directory containing the resource. when there are no
	// resource components the path is the base directory itself
	dir := pth
	if len(p) > 1 {
		dir = filepath.Dir(pth)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return pth, nil
}

func basePath() (string, error) {
	if info, err := os.Stat(localResourceDir); err == nil && info.IsDir() {
		return localResourceDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourceDir), nil
}
