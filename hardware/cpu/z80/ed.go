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

import "github.com/jetsetilly/chips/logger"

// interrupt modes selected by the y field of the IM instructions. the
// undocumented mirrors select the same modes
var imModes = [8]uint8{0, 0, 1, 2, 0, 0, 1, 2}

// ed executes an ED prefixed opcode. opcodes that are not defined execute as
// an eight T-state NOP.
func (cpu *CPU) ed(op uint8) {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch {
	case x == 1:
		cpu.edBlock1(y, z, p, q)
	case x == 2 && z <= 3 && y >= 4:
		cpu.blockInstruction(y, z)
	default:
		logger.Logf(logger.Allow, "z80", "undefined ED opcode (%#02x)", op)
	}
}

func (cpu *CPU) edBlock1(y, z, p, q uint8) {
	switch z {
	case 0:
		// IN r,(C). y == 6 only sets the flags
		port := cpu.Main[BC].Word()
		v := cpu.in(port)
		cpu.WZ.Load(port + 1)
		if y != 6 {
			cpu.SetReg(int(y), v)
		}
		cpu.setF(cpu.f()&CF | szp(v))

	case 1:
		// OUT (C),r. y == 6 outputs zero
		port := cpu.Main[BC].Word()
		var v uint8
		if y != 6 {
			v = cpu.Reg(int(y))
		}
		cpu.out(port, v)
		cpu.WZ.Load(port + 1)

	case 2:
		cpu.internal(7)
		if q == 0 {
			// SBC HL,rp
			cpu.Main[HL].Load(cpu.sbc16(cpu.Main[HL].Word(), cpu.rp(p)))
		} else {
			// ADC HL,rp
			cpu.Main[HL].Load(cpu.adc16(cpu.Main[HL].Word(), cpu.rp(p)))
		}

	case 3:
		addr := cpu.imm16()
		if q == 0 {
			// LD (nn),rp
			cpu.write16(addr, cpu.rp(p))
		} else {
			// LD rp,(nn)
			cpu.setRP(p, cpu.read16(addr))
		}
		cpu.WZ.Load(addr + 1)

	case 4:
		// NEG
		cpu.neg8()

	case 5:
		// RETN and RETI. both copy IFF2 to IFF1
		cpu.IFF1 = cpu.IFF2
		cpu.ret()

	case 6:
		// IM
		cpu.IM = imModes[y]

	case 7:
		switch y {
		case 0:
			// LD I,A
			cpu.internal(1)
			cpu.IR.SetHi(cpu.a())
		case 1:
			// LD R,A
			cpu.internal(1)
			cpu.IR.SetLo(cpu.a())
		case 2:
			// LD A,I
			cpu.internal(1)
			cpu.ldAIR(cpu.IR.Hi())
		case 3:
			// LD A,R
			cpu.internal(1)
			cpu.ldAIR(cpu.IR.Lo())
		case 4:
			// RRD
			addr := cpu.Main[HL].Word()
			v := cpu.read(addr)
			cpu.internal(4)
			a := cpu.a()
			cpu.write(addr, a<<4|v>>4)
			a = a&0xf0 | v&0x0f
			cpu.setA(a)
			cpu.setF(cpu.f()&CF | szp(a))
			cpu.WZ.Load(addr + 1)
		case 5:
			// RLD
			addr := cpu.Main[HL].Word()
			v := cpu.read(addr)
			cpu.internal(4)
			a := cpu.a()
			cpu.write(addr, v<<4|a&0x0f)
			a = a&0xf0 | v>>4
			cpu.setA(a)
			cpu.setF(cpu.f()&CF | szp(a))
			cpu.WZ.Load(addr + 1)
		default:
			// NOP
		}
	}
}

// ldAIR sets A and the flags for LD A,I and LD A,R. the P/V flag is a copy
// of IFF2.
func (cpu *CPU) ldAIR(v uint8) {
	cpu.setA(v)
	f := cpu.f()&CF | sz(int(v)) | v&(YF|XF)
	if cpu.IFF2 {
		f |= PF
	}
	cpu.setF(f)
}

// blockInstruction executes one of the block transfer, compare and I/O
// instructions. y selects the direction (4 increment, 5 decrement) and
// whether the instruction repeats (6 and 7). z selects the operation.
func (cpu *CPU) blockInstruction(y, z uint8) {
	var repeat bool
	switch z {
	case 0:
		repeat = cpu.ldi(y)
	case 1:
		repeat = cpu.cpi(y)
	case 2:
		repeat = cpu.ini(y)
	case 3:
		repeat = cpu.outi(y)
	}

	// the repeating forms execute the instruction again by moving the PC back
	// to the ED prefix
	if y >= 6 && repeat {
		cpu.internal(5)
		cpu.PC -= 2
		cpu.WZ.Load(cpu.PC + 1)
	}
}

// step returns the increment used by the block instruction selected by y.
func step(y uint8) uint16 {
	if y&1 == 0 {
		return 1
	}
	return 0xffff
}

// ldi is LDI, LDD, LDIR and LDDR. returns true if BC is not zero.
func (cpu *CPU) ldi(y uint8) bool {
	hl := cpu.Main[HL].Word()
	de := cpu.Main[DE].Word()
	v := cpu.read(hl)
	cpu.write(de, v)
	cpu.internal(2)

	cpu.Main[HL].Load(hl + step(y))
	cpu.Main[DE].Load(de + step(y))
	bc := cpu.Main[BC].Word() - 1
	cpu.Main[BC].Load(bc)

	n := v + cpu.a()
	f := cpu.f()&(SF|ZF|CF) | n&XF | (n<<4)&YF
	if bc != 0 {
		f |= VF
	}
	cpu.setF(f)

	return bc != 0
}

// cpi is CPI, CPD, CPIR and CPDR. returns true if BC is not zero and the
// value did not match.
func (cpu *CPU) cpi(y uint8) bool {
	hl := cpu.Main[HL].Word()
	v := cpu.read(hl)
	cpu.internal(5)

	cpu.Main[HL].Load(hl + step(y))
	cpu.WZ.Load(cpu.WZ.Word() + step(y))
	bc := cpu.Main[BC].Word() - 1
	cpu.Main[BC].Load(bc)

	a := cpu.a()
	res := a - v
	f := NF | cpu.f()&CF | sz(int(res)) | (a^v^res)&HF
	n := res
	if f&HF == HF {
		n--
	}
	f |= n&XF | (n<<4)&YF
	if bc != 0 {
		f |= VF
	}
	cpu.setF(f)

	return bc != 0 && res != 0
}

// ioFlags are the flags for the block I/O instructions. v is the value
// transferred and t is the value it is added to (C plus or minus one for
// input, L for output).
func (cpu *CPU) ioFlags(v uint8, t uint8) {
	b := cpu.Reg(B)
	f := sz(int(b)) | b&(YF|XF)
	if v&0x80 == 0x80 {
		f |= NF
	}
	sum := uint16(v) + uint16(t)
	if sum > 0xff {
		f |= HF | CF
	}
	f |= parity(uint8(sum)&0x07 ^ b)
	cpu.setF(f)
}

// ini is INI, IND, INIR and INDR. returns true if B is not zero.
func (cpu *CPU) ini(y uint8) bool {
	cpu.internal(1)
	bc := cpu.Main[BC].Word()
	v := cpu.in(bc)
	cpu.WZ.Load(bc + step(y))
	cpu.SetReg(B, cpu.Reg(B)-1)

	hl := cpu.Main[HL].Word()
	cpu.write(hl, v)
	cpu.Main[HL].Load(hl + step(y))

	cpu.ioFlags(v, cpu.Reg(C)+uint8(step(y)))

	return cpu.Reg(B) != 0
}

// outi is OUTI, OUTD, OTIR and OTDR. returns true if B is not zero.
func (cpu *CPU) outi(y uint8) bool {
	cpu.internal(1)
	hl := cpu.Main[HL].Word()
	v := cpu.read(hl)
	cpu.SetReg(B, cpu.Reg(B)-1)

	bc := cpu.Main[BC].Word()
	cpu.out(bc, v)
	cpu.WZ.Load(bc + step(y))
	cpu.Main[HL].Load(hl + step(y))

	cpu.ioFlags(v, cpu.Main[HL].Lo())

	return cpu.Reg(B) != 0
}
