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

// Package prefs facilitates the storage of preferential values in the
// emulator. It is used by the hardware/preferences package to store values
// that change how the hardware behaves, such as whether an access to an
// unmapped address is an error.
//
// The Bool, Int and String types are safe to read from any goroutine.
// Callbacks for when a value changes can be registered with SetHookPre() and
// SetHookPost().
//
// Values are associated with a key in a Disk instance. Keys are
// conventionally dotted paths, for example "hardware.strictbus". The file
// written by Disk.Save() looks like this:
//
//	*** do not edit this file by hand. it is maintained by the emulator ***
//	hardware.openbus :: 4294967295
//	hardware.strictbus :: false
//
// Values can be overridden from the command line with
// PushCommandLineStack(). The string is of the form:
//
//	key::value; key::value
//
// A Disk picks up command line values for its keys when they are added and
// they take precedence over values loaded from the file.
package prefs
