// This file is part of Chips.
//
// Chips is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chips is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chips.  If not, see <https://www.gnu.org/licenses/>.

package registers_test

import (
	"testing"

	"github.com/jetsetilly/chips/hardware/cpu/registers"
	"github.com/jetsetilly/chips/test"
)

func TestPairViews(t *testing.T) {
	p := registers.NewPair(0x1234)
	test.ExpectEquality(t, p.Hi(), 0x12)
	test.ExpectEquality(t, p.Lo(), 0x34)

	p.SetHi(0xab)
	test.ExpectEquality(t, p.Word(), 0xab34)

	p.SetLo(0xcd)
	test.ExpectEquality(t, p.Word(), 0xabcd)

	p.Load(0xfffe)
	test.ExpectEquality(t, p.Hi(), 0xff)
	test.ExpectEquality(t, p.Lo(), 0xfe)

	p.SetByte(0, 0x01)
	p.SetByte(1, 0x80)
	test.ExpectEquality(t, p.Word(), 0x8001)
	test.ExpectEquality(t, p.Byte(0), 0x01)
	test.ExpectEquality(t, p.Byte(1), 0x80)
	test.ExpectEquality(t, p.String(), "0x8001")
}
