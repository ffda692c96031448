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
	"fmt"
)

// StackPointer is the 8 bit 6502 stack pointer. The stack is always in page
// one so the address of the top of the stack is 0x0100 plus the value of the
// register.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the 8 bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the page one address the stack pointer points to.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address to write to and then decrements the stack pointer.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull increments the stack pointer and returns the address to read from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
