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

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), 0)

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	_, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectEquality(t, overflow, true)

	// addtion boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), 1)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	// subtract through zero borrows
	r8.Load(0x00)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// bitwise
	r8.Load(0xf0)
	r8.AND(0x3c)
	test.ExpectEquality(t, r8.Value(), 0x30)
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), 0x31)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xce)
	test.ExpectEquality(t, r8.IsBitV(), true)
	test.ExpectEquality(t, r8.String(), "test=0xce")

	// shifts and rotates
	r8.Load(0x81)
	test.ExpectEquality(t, r8.ASL(), true)
	test.ExpectEquality(t, r8.Value(), 0x02)
	test.ExpectEquality(t, r8.LSR(), false)
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectEquality(t, r8.ROR(true), true)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectEquality(t, r8.ROL(false), true)
	test.ExpectEquality(t, r8.Value(), 0x00)

}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x00)
	test.ExpectEquality(t, sp.Push(), 0x0100)
	test.ExpectEquality(t, sp.Value(), 0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)
	test.ExpectEquality(t, sp.Pull(), 0x0100)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	test.ExpectEquality(t, pc.Add(1), false)
	test.ExpectEquality(t, pc.Address(), 0xffff)
	test.ExpectEquality(t, pc.Add(1), true)
	test.ExpectEquality(t, pc.Address(), 0x0000)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), 0x20)
	test.ExpectEquality(t, sr.String(), "sv--dizc")

	// break and unused bits are not stored
	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.Value(), 0xef)
	test.ExpectEquality(t, sr.String(), "SV--DIZC")

	sr.FromValue(0x24)
	test.ExpectEquality(t, sr.InterruptDisable, true)
	test.ExpectEquality(t, sr.Value(), 0x24)
}
