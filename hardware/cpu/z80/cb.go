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

// cb executes a CB prefixed opcode.
func (cpu *CPU) cb(op uint8) {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7

	if z == 6 {
		addr := cpu.Main[HL].Word()
		v := cpu.read(addr)
		cpu.internal(1)
		if x == 1 {
			// BIT y,(HL)
			cpu.bit(y, v, cpu.WZ.Hi())
			return
		}
		cpu.write(addr, cpu.cbOp(x, y, v))
		return
	}

	v := cpu.Reg(int(z))
	if x == 1 {
		// BIT y,r
		cpu.bit(y, v, v)
		return
	}
	cpu.SetReg(int(z), cpu.cbOp(x, y, v))
}

// cbIndexed executes a DDCB or FDCB prefixed instruction. the displacement
// comes before the opcode and neither are fetched with an M1 cycle.
//
// the result of the rotate, shift, RES and SET instructions is also copied to
// register z, unless z is 6.
func (cpu *CPU) cbIndexed() {
	d := int8(cpu.imm8())
	op := cpu.imm8()
	cpu.internal(2)
	cpu.WZ.Load(cpu.hl.Word() + uint16(d))

	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7

	addr := cpu.WZ.Word()
	v := cpu.read(addr)
	cpu.internal(1)

	if x == 1 {
		// BIT y,(IX+d)
		cpu.bit(y, v, cpu.WZ.Hi())
		return
	}

	res := cpu.cbOp(x, y, v)
	cpu.write(addr, res)
	if z != 6 {
		cpu.SetReg(int(z), res)
	}
}

// cbOp is the operation for CB block x (other than BIT).
func (cpu *CPU) cbOp(x, y, v uint8) uint8 {
	switch x {
	case 0:
		return cpu.rot(y, v)
	case 2:
		// RES
		return v &^ (1 << y)
	}
	// SET
	return v | (1 << y)
}
