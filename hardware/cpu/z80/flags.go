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

package z80

import "math/bits"

// Flag bits of the F register.
const (
	CF uint8 = 1 << 0 // carry
	NF uint8 = 1 << 1 // add/subtract
	VF uint8 = 1 << 2 // parity/overflow
	PF uint8 = VF
	XF uint8 = 1 << 3 // undocumented bit 3
	HF uint8 = 1 << 4 // half carry
	YF uint8 = 1 << 5 // undocumented bit 5
	ZF uint8 = 1 << 6 // zero
	SF uint8 = 1 << 7 // sign
)

// the flag functions below take the operands and the unmasked result of the
// operation as int so that the carry and borrow out of bit 7 is preserved in
// bit 8 of the result

// sz returns the sign and zero flags for the low 8 bits of res.
func sz(res int) uint8 {
	if res&0xff == 0 {
		return ZF
	}
	return uint8(res) & SF
}

// szyxch returns the sign, zero, undocumented, carry and half-carry flags.
func szyxch(acc, val, res int) uint8 {
	return sz(res) |
		uint8(res)&(YF|XF) |
		uint8(res>>8)&CF |
		uint8(acc^val^res)&HF
}

func addFlags(acc, val, res int) uint8 {
	return szyxch(acc, val, res) | uint8((((val^acc^0x80)&(val^res))>>5))&VF
}

func subFlags(acc, val, res int) uint8 {
	return NF | szyxch(acc, val, res) | uint8((((val^acc)&(res^acc))>>5))&VF
}

// cpFlags is the same as subFlags except that the undocumented bits are taken
// from the value being compared against and not from the result.
func cpFlags(acc, val, res int) uint8 {
	return NF |
		sz(res) |
		uint8(val)&(YF|XF) |
		uint8(res>>8)&CF |
		uint8(acc^val^res)&HF |
		uint8((((val^acc)&(res^acc))>>5))&VF
}

// parity returns PF if the number of set bits in v is even.
func parity(v uint8) uint8 {
	if bits.OnesCount8(v)&1 == 0 {
		return PF
	}
	return 0
}

// szp returns the sign, zero, undocumented and parity flags for v.
func szp(v uint8) uint8 {
	return sz(int(v)) | v&(YF|XF) | parity(v)
}
