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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
	Undocumented   bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// GetDefinitions returns the opcode table for the 6502. The table is indexed
// by opcode.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, len(definitions))
	for i := range definitions {
		d := definitions[i]
		defs[i] = &d
	}
	return defs
}

var definitions = [256]Definition{
	{OpCode: 0x00, Operator: Brk, Bytes: 2, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt, Undocumented: false},
	{OpCode: 0x01, Operator: Ora, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x02, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x03, Operator: SLO, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x04, Operator: NOP, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x05, Operator: Ora, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x06, Operator: Asl, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x07, Operator: SLO, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x08, Operator: Php, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x09, Operator: Ora, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x0a, Operator: Asl, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x0b, Operator: ANC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x0c, Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x0d, Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x0e, Operator: Asl, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x0f, Operator: SLO, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x10, Operator: Bpl, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0x11, Operator: Ora, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x12, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x13, Operator: SLO, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x14, Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x15, Operator: Ora, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x16, Operator: Asl, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x17, Operator: SLO, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x18, Operator: Clc, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x19, Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x1a, Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x1b, Operator: SLO, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x1c, Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0x1d, Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x1e, Operator: Asl, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x1f, Operator: SLO, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x20, Operator: Jsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine, Undocumented: false},
	{OpCode: 0x21, Operator: And, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x22, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x23, Operator: RLA, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x24, Operator: Bit, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x25, Operator: And, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x26, Operator: Rol, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x27, Operator: RLA, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x28, Operator: Plp, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x29, Operator: And, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x2a, Operator: Rol, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x2b, Operator: ANC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x2c, Operator: Bit, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x2d, Operator: And, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x2e, Operator: Rol, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x2f, Operator: RLA, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x30, Operator: Bmi, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0x31, Operator: And, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x32, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x33, Operator: RLA, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x34, Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x35, Operator: And, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x36, Operator: Rol, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x37, Operator: RLA, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x38, Operator: Sec, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x39, Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x3a, Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x3b, Operator: RLA, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x3c, Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0x3d, Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x3e, Operator: Rol, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x3f, Operator: RLA, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x40, Operator: Rti, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt, Undocumented: false},
	{OpCode: 0x41, Operator: Eor, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x42, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x43, Operator: SRE, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x44, Operator: NOP, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x45, Operator: Eor, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x46, Operator: Lsr, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x47, Operator: SRE, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x48, Operator: Pha, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x49, Operator: Eor, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x4a, Operator: Lsr, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x4b, Operator: ASR, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x4c, Operator: Jmp, Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0x4d, Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x4e, Operator: Lsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x4f, Operator: SRE, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x50, Operator: Bvc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0x51, Operator: Eor, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x52, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x53, Operator: SRE, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x54, Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x55, Operator: Eor, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x56, Operator: Lsr, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x57, Operator: SRE, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x58, Operator: Cli, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x59, Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x5a, Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x5b, Operator: SRE, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x5c, Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0x5d, Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x5e, Operator: Lsr, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x5f, Operator: SRE, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x60, Operator: Rts, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine, Undocumented: false},
	{OpCode: 0x61, Operator: Adc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x62, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x63, Operator: RRA, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x64, Operator: NOP, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x65, Operator: Adc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x66, Operator: Ror, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x67, Operator: RRA, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x68, Operator: Pla, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x69, Operator: Adc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x6a, Operator: Ror, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x6b, Operator: ARR, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x6c, Operator: Jmp, Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0x6d, Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x6e, Operator: Ror, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x6f, Operator: RRA, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x70, Operator: Bvs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0x71, Operator: Adc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x72, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x73, Operator: RRA, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x74, Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x75, Operator: Adc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x76, Operator: Ror, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x77, Operator: RRA, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x78, Operator: Sei, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x79, Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x7a, Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x7b, Operator: RRA, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x7c, Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0x7d, Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0x7e, Operator: Ror, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0x7f, Operator: RRA, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0x80, Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x81, Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x82, Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x83, Operator: SAX, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0x84, Operator: Sty, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x85, Operator: Sta, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x86, Operator: Stx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x87, Operator: SAX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0x88, Operator: Dey, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x89, Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x8a, Operator: Txa, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x8b, Operator: XAA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x8c, Operator: Sty, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x8d, Operator: Sta, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x8e, Operator: Stx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x8f, Operator: SAX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0x90, Operator: Bcc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0x91, Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x92, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0x93, Operator: AHX, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0x94, Operator: Sty, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x95, Operator: Sta, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x96, Operator: Stx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x97, Operator: SAX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0x98, Operator: Tya, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x99, Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x9a, Operator: Txs, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0x9b, Operator: TAS, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0x9c, Operator: SHY, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0x9d, Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write, Undocumented: false},
	{OpCode: 0x9e, Operator: SHX, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0x9f, Operator: AHX, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write, Undocumented: true},
	{OpCode: 0xa0, Operator: Ldy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xa1, Operator: Lda, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xa2, Operator: Ldx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xa3, Operator: LAX, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xa4, Operator: Ldy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xa5, Operator: Lda, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xa6, Operator: Ldx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xa7, Operator: LAX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xa8, Operator: Tay, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xa9, Operator: Lda, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xaa, Operator: Tax, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xab, Operator: LXA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xac, Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xad, Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xae, Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xaf, Operator: LAX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xb0, Operator: Bcs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0xb1, Operator: Lda, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xb2, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xb3, Operator: LAX, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0xb4, Operator: Ldy, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xb5, Operator: Lda, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xb6, Operator: Ldx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xb7, Operator: LAX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xb8, Operator: Clv, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xb9, Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xba, Operator: Tsx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xbb, Operator: LAS, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0xbc, Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xbd, Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xbe, Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xbf, Operator: LAX, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0xc0, Operator: Cpy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xc1, Operator: Cmp, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xc2, Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xc3, Operator: DCP, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xc4, Operator: Cpy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xc5, Operator: Cmp, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xc6, Operator: Dec, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0xc7, Operator: DCP, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xc8, Operator: Iny, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xc9, Operator: Cmp, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xca, Operator: Dex, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xcb, Operator: AXS, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xcc, Operator: Cpy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xcd, Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xce, Operator: Dec, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0xcf, Operator: DCP, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xd0, Operator: Bne, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0xd1, Operator: Cmp, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xd2, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xd3, Operator: DCP, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xd4, Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xd5, Operator: Cmp, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xd6, Operator: Dec, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0xd7, Operator: DCP, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xd8, Operator: Cld, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xd9, Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xda, Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xdb, Operator: DCP, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xdc, Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0xdd, Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xde, Operator: Dec, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0xdf, Operator: DCP, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xe0, Operator: Cpx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xe1, Operator: Sbc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xe2, Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xe3, Operator: ISC, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xe4, Operator: Cpx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xe5, Operator: Sbc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xe6, Operator: Inc, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0xe7, Operator: ISC, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xe8, Operator: Inx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xe9, Operator: Sbc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xea, Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xeb, Operator: SBC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xec, Operator: Cpx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xed, Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xee, Operator: Inc, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0xef, Operator: ISC, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xf0, Operator: Beq, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow, Undocumented: false},
	{OpCode: 0xf1, Operator: Sbc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xf2, Operator: KIL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xf3, Operator: ISC, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xf4, Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xf5, Operator: Sbc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xf6, Operator: Inc, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0xf7, Operator: ISC, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xf8, Operator: Sed, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: false},
	{OpCode: 0xf9, Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xfa, Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read, Undocumented: true},
	{OpCode: 0xfb, Operator: ISC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW, Undocumented: true},
	{OpCode: 0xfc, Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: true},
	{OpCode: 0xfd, Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read, Undocumented: false},
	{OpCode: 0xfe, Operator: Inc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: false},
	{OpCode: 0xff, Operator: ISC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW, Undocumented: true},
}
