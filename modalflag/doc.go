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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of a FlagSet a Modes struct is instantiated and
// the arguments to be parsed are supplied with NewArgs():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	strict := md.AddBool("strict", false, "fail on unmapped access")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// Modes are added with AddSubModes(). The first mode in the list is the
// default mode and is selected if the first argument after the flags is not
// a recognised mode:
//
//	md.AddSubModes("RUN", "SCRIPT")
//	md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//	case "SCRIPT":
//	}
//
// After selecting a mode, NewMode() prepares the Modes instance for a new set
// of flags belonging to that mode. The sequence of modes selected so far is
// returned by Path().
//
// Help is handled automatically. If the "-help" flag is present then a usage
// message is written to the Output writer and Parse() returns ParseHelp. The
// usage message lists the flags and the available sub-modes.
package modalflag
