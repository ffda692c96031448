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

// Operator identifies the operation performed by an instruction. Documented
// operators are in title case. Undocumented operators are in upper case.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented
	NOP
	ANC
	ARR
	ASR
	AXS
	AHX
	DCP
	ISC
	KIL
	LAS
	LAX
	LXA
	RLA
	RRA
	SAX
	SBC
	SHX
	SHY
	SLO
	SRE
	TAS
	XAA
)

var operatorNames = [...]string{
	"NOP", "ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE",
	"BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX",
	"CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR",
	"LDA", "LDX", "LDY", "LSR", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"nop", "anc", "arr", "asr", "axs", "ahx", "dcp", "isc", "kil", "las",
	"lax", "lxa", "rla", "rra", "sax", "sbc", "shx", "shy", "slo", "sre",
	"tas", "xaa",
}

// String returns the mnemonic of the operator. Undocumented operators are
// returned in lower case.
func (o Operator) String() string {
	if int(o) < 0 || int(o) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[o]
}
