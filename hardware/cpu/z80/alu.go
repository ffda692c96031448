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

// the ALU operations selected by the y field of the ALU block
const (
	aluADD = iota
	aluADC
	aluSUB
	aluSBC
	aluAND
	aluXOR
	aluOR
	aluCP
)

// alu8 performs ALU operation y on the accumulator and val.
func (cpu *CPU) alu8(y uint8, val uint8) {
	switch y {
	case aluADD:
		cpu.add8(val)
	case aluADC:
		cpu.adc8(val)
	case aluSUB:
		cpu.sub8(val)
	case aluSBC:
		cpu.sbc8(val)
	case aluAND:
		cpu.and8(val)
	case aluXOR:
		cpu.xor8(val)
	case aluOR:
		cpu.or8(val)
	case aluCP:
		cpu.cp8(val)
	}
}

func (cpu *CPU) add8(val uint8) {
	acc := int(cpu.a())
	res := acc + int(val)
	cpu.setF(addFlags(acc, int(val), res))
	cpu.setA(uint8(res))
}

func (cpu *CPU) adc8(val uint8) {
	acc := int(cpu.a())
	res := acc + int(val) + int(cpu.f()&CF)
	cpu.setF(addFlags(acc, int(val), res))
	cpu.setA(uint8(res))
}

func (cpu *CPU) sub8(val uint8) {
	acc := int(cpu.a())
	res := acc - int(val)
	cpu.setF(subFlags(acc, int(val), res))
	cpu.setA(uint8(res))
}

func (cpu *CPU) sbc8(val uint8) {
	acc := int(cpu.a())
	res := acc - int(val) - int(cpu.f()&CF)
	cpu.setF(subFlags(acc, int(val), res))
	cpu.setA(uint8(res))
}

func (cpu *CPU) cp8(val uint8) {
	acc := int(cpu.a())
	res := acc - int(val)
	cpu.setF(cpFlags(acc, int(val), res))
}

func (cpu *CPU) neg8() {
	val := cpu.a()
	cpu.setA(0)
	cpu.sub8(val)
}

func (cpu *CPU) and8(val uint8) {
	a := cpu.a() & val
	cpu.setA(a)
	cpu.setF(szp(a) | HF)
}

func (cpu *CPU) xor8(val uint8) {
	a := cpu.a() ^ val
	cpu.setA(a)
	cpu.setF(szp(a))
}

func (cpu *CPU) or8(val uint8) {
	a := cpu.a() | val
	cpu.setA(a)
	cpu.setF(szp(a))
}

func (cpu *CPU) inc8(val uint8) uint8 {
	res := val + 1
	f := cpu.f()&CF | sz(int(res)) | res&(XF|YF) | (res^val)&HF
	if res == 0x80 {
		f |= VF
	}
	cpu.setF(f)
	return res
}

func (cpu *CPU) dec8(val uint8) uint8 {
	res := val - 1
	f := NF | cpu.f()&CF | sz(int(res)) | res&(XF|YF) | (res^val)&HF
	if res == 0x7f {
		f |= VF
	}
	cpu.setF(f)
	return res
}

// the rotate and shift operations selected by the y field of the CB block.
// the result is returned and the flags are set
func (cpu *CPU) rot(y uint8, val uint8) uint8 {
	var res, carry uint8
	switch y {
	case 0: // RLC
		res = val<<1 | val>>7
		carry = val >> 7
	case 1: // RRC
		res = val>>1 | val<<7
		carry = val & CF
	case 2: // RL
		res = val<<1 | cpu.f()&CF
		carry = val >> 7
	case 3: // RR
		res = val>>1 | (cpu.f()&CF)<<7
		carry = val & CF
	case 4: // SLA
		res = val << 1
		carry = val >> 7
	case 5: // SRA
		res = val>>1 | val&0x80
		carry = val & CF
	case 6: // SLL (undocumented)
		res = val<<1 | 0x01
		carry = val >> 7
	case 7: // SRL
		res = val >> 1
		carry = val & CF
	}
	cpu.setF(szp(res) | carry)
	return res
}

// the rotate instructions that only operate on the accumulator leave S, Z
// and P unchanged
func (cpu *CPU) rlca() {
	a := cpu.a()
	res := a<<1 | a>>7
	cpu.setA(res)
	cpu.setF(cpu.f()&(SF|ZF|PF) | res&(YF|XF) | a>>7)
}

func (cpu *CPU) rrca() {
	a := cpu.a()
	res := a>>1 | a<<7
	cpu.setA(res)
	cpu.setF(cpu.f()&(SF|ZF|PF) | res&(YF|XF) | a&CF)
}

func (cpu *CPU) rla() {
	a := cpu.a()
	res := a<<1 | cpu.f()&CF
	cpu.setA(res)
	cpu.setF(cpu.f()&(SF|ZF|PF) | res&(YF|XF) | a>>7)
}

func (cpu *CPU) rra() {
	a := cpu.a()
	res := a>>1 | (cpu.f()&CF)<<7
	cpu.setA(res)
	cpu.setF(cpu.f()&(SF|ZF|PF) | res&(YF|XF) | a&CF)
}

func (cpu *CPU) daa() {
	a := cpu.a()
	f := cpu.f()
	val := a
	if f&NF == NF {
		if a&0x0f > 0x09 || f&HF == HF {
			val -= 0x06
		}
		if a > 0x99 || f&CF == CF {
			val -= 0x60
		}
	} else {
		if a&0x0f > 0x09 || f&HF == HF {
			val += 0x06
		}
		if a > 0x99 || f&CF == CF {
			val += 0x60
		}
	}

	f &= CF | NF
	if a > 0x99 {
		f |= CF
	}
	f |= (a ^ val) & HF
	f |= szp(val)

	cpu.setA(val)
	cpu.setF(f)
}

func (cpu *CPU) cpl() {
	a := ^cpu.a()
	cpu.setA(a)
	cpu.setF(cpu.f()&(SF|ZF|PF|CF) | HF | NF | a&(YF|XF))
}

func (cpu *CPU) scf() {
	cpu.setF(cpu.f()&(SF|ZF|PF) | CF | cpu.a()&(YF|XF))
}

func (cpu *CPU) ccf() {
	f := cpu.f()
	cpu.setF((f&(SF|ZF|PF|CF) | (f&CF)<<4 | cpu.a()&(YF|XF)) ^ CF)
}

// bit tests bit y of val. the undocumented flags are taken from xy, which is
// the tested value for the register forms and the high byte of WZ for the
// memory forms.
func (cpu *CPU) bit(y uint8, val uint8, xy uint8) {
	f := cpu.f()&CF | HF | xy&(YF|XF)
	m := val & (1 << y)
	if m == 0 {
		f |= ZF | PF
	}
	f |= m & SF
	cpu.setF(f)
}

// add16 is the 16 bit addition used by ADD HL,rr (and the indexed forms).
// S, Z and P are unchanged.
func (cpu *CPU) add16(acc uint16, val uint16) uint16 {
	cpu.WZ.Load(acc + 1)
	res := uint32(acc) + uint32(val)
	cpu.setF(cpu.f()&(SF|ZF|VF) |
		uint8((uint32(acc)^res^uint32(val))>>8)&HF |
		uint8(res>>16)&CF |
		uint8(res>>8)&(YF|XF))
	return uint16(res)
}

func (cpu *CPU) adc16(acc uint16, val uint16) uint16 {
	cpu.WZ.Load(acc + 1)
	res := uint32(acc) + uint32(val) + uint32(cpu.f()&CF)
	f := uint8((((uint32(val)^uint32(acc)^0x8000)&(uint32(val)^res)&0x8000)>>13))&VF |
		uint8((uint32(acc)^res^uint32(val))>>8)&HF |
		uint8(res>>16)&CF |
		uint8(res>>8)&(SF|YF|XF)
	if res&0xffff == 0 {
		f |= ZF
	}
	cpu.setF(f)
	return uint16(res)
}

func (cpu *CPU) sbc16(acc uint16, val uint16) uint16 {
	cpu.WZ.Load(acc + 1)
	res := int(acc) - int(val) - int(cpu.f()&CF)
	f := NF |
		uint8((((int(val)^int(acc))&(int(acc)^res)&0x8000)>>13))&VF |
		uint8((int(acc)^res^int(val))>>8)&HF |
		uint8(res>>16)&CF |
		uint8(res>>8)&(SF|YF|XF)
	if res&0xffff == 0 {
		f |= ZF
	}
	cpu.setF(f)
	return uint16(res)
}
