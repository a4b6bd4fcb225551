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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestWidth(t *testing.T) {
	test.ExpectEquality(t, bus.Byte.Bytes(), 1)
	test.ExpectEquality(t, bus.Half.Bytes(), 2)
	test.ExpectEquality(t, bus.Word.Bytes(), 4)

	test.ExpectEquality(t, bus.Half.Mask(), 0xffff)

	test.ExpectSuccess(t, bus.Byte.Aligned(0x1f801071))
	test.ExpectSuccess(t, bus.Half.Aligned(0x1f801072))
	test.ExpectFailure(t, bus.Half.Aligned(0x1f801071))
	test.ExpectSuccess(t, bus.Word.Aligned(0x1f801074))
	test.ExpectFailure(t, bus.Word.Aligned(0x1f801076))

	test.ExpectEquality(t, bus.Word.String(), "word")
}
