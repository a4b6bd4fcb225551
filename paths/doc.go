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

// Package paths contains functions to prepare paths for gopherpsx resources.
//
// The ResourcePath() function returns the path to a resource. If the
// directory ".gopherpsx" exists in the current working directory then it is
// used as the base for all resources. Otherwise the base is the "gopherpsx"
// directory in the user's configuration directory, as reported by
// os.UserConfigDir().
//
// The directory containing the resource is created if necessary. The
// resource itself is not created.
package paths
