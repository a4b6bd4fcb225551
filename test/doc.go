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

// Package test contains helper functions to remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and stop the test
// immediately. Use a Demand function when the rest of the test makes no sense
// if the condition fails, for example when creating the machine under test.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The nil case exists because a nil error arrives as an untyped nil.
//
// CompareWriter and RingWriter implement io.Writer and are useful for
// capturing output, such as log output, for later comparison.
package test
