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

import "fmt"

// Pair is a 16 bit register that can also be accessed as two 8 bit
// registers. It is used for every register of the Z80 that has byte and word
// forms (BC, DE, HL, AF, IX, IY, IR and WZ).
type Pair struct {
	value uint16
}

// NewPair is the preferred method of initialisation for Pair.
func NewPair(val uint16) Pair {
	return Pair{value: val}
}

func (p Pair) String() string {
	return fmt.Sprintf("%#04x", p.value)
}

// Word returns the 16 bit value of the pair.
func (p Pair) Word() uint16 {
	return p.value
}

// Hi returns the high byte of the pair.
func (p Pair) Hi() uint8 {
	return uint8(p.value >> 8)
}

// Lo returns the low byte of the pair.
func (p Pair) Lo() uint8 {
	return uint8(p.value)
}

// Load a 16 bit value into the pair.
func (p *Pair) Load(val uint16) {
	p.value = val
}

// SetHi changes the high byte of the pair only.
func (p *Pair) SetHi(val uint8) {
	p.value = (p.value & 0x00ff) | uint16(val)<<8
}

// SetLo changes the low byte of the pair only.
func (p *Pair) SetLo(val uint8) {
	p.value = (p.value & 0xff00) | uint16(val)
}

// Byte returns the low byte if i is 0 and the high byte if i is 1.
func (p Pair) Byte(i int) uint8 {
	if i&1 == 0 {
		return p.Lo()
	}
	return p.Hi()
}

// SetByte changes the low byte if i is 0 and the high byte if i is 1.
func (p *Pair) SetByte(i int, val uint8) {
	if i&1 == 0 {
		p.SetLo(val)
	} else {
		p.SetHi(val)
	}
}
