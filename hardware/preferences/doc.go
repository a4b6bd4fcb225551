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

// Package preferences contains the preference values that affect how the
// emulated hardware behaves. The values are stored on disk with the prefs
// package under the "hardware" prefix.
//
// The preferences that most affect the emulation are StrictBus and OpenBus.
// Test environments will want StrictBus to be true so that any access to an
// unmapped address is reported as an error. Real software touches unmapped
// regions and requires StrictBus to be false.
package preferences
