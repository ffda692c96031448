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

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the 6502.
//
// There is no break flag stored in the register. The B bit only exists in
// the value pushed onto the stack and is supplied by the instruction doing
// the push. See Value().
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	s.WriteRune('-')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The break bit is clear, callers that push with the B bit
// set should OR the result with 0x10.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	// unused bit in the status register is always 1
	v |= 0x20

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver. The break and unused bits are ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
