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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies the error. Packages that return errors a
// caller may want to react to declare the pattern as a constant:
//
//	const UnmappedAccess = "bus: unmapped %s at %08x"
//
//	err := curated.Errorf(UnmappedAccess, "read", address)
//
//	if curated.Is(err, UnmappedAccess) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("psx: %v", err)
//
//	if curated.Has(f, UnmappedAccess) {
//		fmt.Println("true")
//	}
//
// The Error() function normalises the chain by removing duplicate adjacent
// parts. A chain is made of parts separated by the sub-string ": ". This
// means that wrapping an error with the same prefix it already has does not
// result in messages like:
//
//	cpu: cpu: misaligned fetch
//
// Curated errors also implement Unwrap() []error so the errors package from
// the standard library can look inside them.
package curated
