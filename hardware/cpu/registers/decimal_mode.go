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

package registers

// AddDecimal adds value to register as though both values are binary coded
// decimal. Returns new carry state, zero, overflow and sign information.
//
// The flags follow the NMOS 6502: the Z flag is taken from the binary sum;
// the N and V flags are computed after the adjustment of the low nibble but
// before adjusting the high nibble.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c uint16
	if carry {
		c = 1
	}

	a := uint16(r.value)
	v := uint16(val)

	zero = uint8(a+v+c) == 0

	units := (a & 0x0f) + (v & 0x0f) + c
	tens := (a >> 4) + (v >> 4)

	// decimal correction for units
	if units > 0x09 {
		units += 0x06
		tens++
	}

	sign = tens&0x08 == 0x08
	overflow = ^(a^v)&(a^(tens<<4))&0x80 == 0x80

	// decimal correction for tens
	if tens > 0x09 {
		tens += 0x06
	}
	rcarry = tens > 0x0f

	// pack units/tens nibbles into register
	r.value = uint8(tens<<4) | uint8(units&0x0f)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both values are
// binary coded decimal. Returns new carry state, zero, overflow and sign
// information.
//
// On the NMOS 6502 all flags of a decimal subtraction are the flags of the
// equivalent binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	bin := NewRegister(r.value, "")
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	// the 6502 uses the carry flag as the inverse of borrow
	var borrow int
	if !carry {
		borrow = 1
	}

	units := int(r.value&0x0f) - int(val&0x0f) - borrow
	tens := int(r.value>>4) - int(val>>4)

	// decimal correction for units
	if units < 0 {
		units -= 0x06
		tens--
	}

	// decimal correction for tens
	if tens < 0 {
		tens -= 0x06
	}

	// pack units/tens nibbles into register
	r.value = uint8(tens<<4) | uint8(units&0x0f)

	return rcarry, zero, overflow, sign
}
