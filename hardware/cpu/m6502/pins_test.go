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

package m6502_test

import (
	"testing"

	"github.com/jetsetilly/chips/hardware/cpu/m6502"
	"github.com/jetsetilly/chips/test"
)

func TestPinFields(t *testing.T) {
	p := m6502.MakePins(m6502.RW|m6502.IRQ, 0xfffc, 0x4c)
	test.ExpectEquality(t, p.Addr(), 0xfffc)
	test.ExpectEquality(t, p.Data(), 0x4c)
	test.ExpectEquality(t, p&m6502.RW, m6502.RW)
	test.ExpectEquality(t, p&m6502.IRQ, m6502.IRQ)

	p.SetAddr(0x1234)
	test.ExpectEquality(t, p.Addr(), 0x1234)
	test.ExpectEquality(t, p.Data(), 0x4c)
	test.ExpectEquality(t, p.IsRead(), true)

	p.SetData(0xff)
	test.ExpectEquality(t, p.Addr(), 0x1234)
	test.ExpectEquality(t, p.Data(), 0xff)
	test.ExpectEquality(t, p&m6502.IRQ, m6502.IRQ)
	test.ExpectEquality(t, p&m6502.NMI, 0)

	// bit positions are fixed
	test.ExpectEquality(t, uint64(p), 0x02ff1234|uint64(m6502.RW))
	test.ExpectEquality(t, uint64(m6502.RW), 1<<24)
	test.ExpectEquality(t, uint64(m6502.IRQ), 1<<25)
	test.ExpectEquality(t, uint64(m6502.NMI), 1<<26)

	// host bits above the pin mask are preserved by the accessors
	h := m6502.Pins(1 << 40)
	h.SetAddr(0xffff)
	h.SetData(0xff)
	test.ExpectEquality(t, h&^m6502.PinMask, 1<<40)
}
