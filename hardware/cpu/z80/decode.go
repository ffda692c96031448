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

// Step executes one instruction, or accepts one interrupt, and returns the
// number of T-states consumed.
//
// While the CPU is halted every call to Step() executes the HALT instruction
// again (4 T-states) until an interrupt is accepted.
func (cpu *CPU) Step() int {
	cpu.ticks = 0

	switch {
	case cpu.nmiPending:
		cpu.nmi()
	case cpu.Pins.Ctrl&INT == INT && cpu.IFF1 && !cpu.eiDelay:
		cpu.interrupt()
	default:
		cpu.eiDelay = false
		cpu.execute()
	}

	return cpu.ticks
}

// execute fetches and executes one instruction, including any prefixes.
func (cpu *CPU) execute() {
	cpu.hl = &cpu.Main[HL]
	op := cpu.fetch()

	// a sequence of DD and FD prefixes is possible. only the last one has any
	// effect. the others behave like a NOP
	for op == 0xdd || op == 0xfd {
		if op == 0xdd {
			cpu.hl = &cpu.IX
		} else {
			cpu.hl = &cpu.IY
		}
		op = cpu.fetch()
	}

	switch op {
	case 0xcb:
		if cpu.indexed() {
			cpu.cbIndexed()
		} else {
			cpu.cb(cpu.fetch())
		}
	case 0xed:
		// an ED instruction cancels any index prefix
		cpu.hl = &cpu.Main[HL]
		cpu.ed(cpu.fetch())
	default:
		cpu.op(op)
	}

	cpu.hl = &cpu.Main[HL]
}

// addrHL returns the address of the (HL) operand of the current instruction.
// for an indexed instruction this is IX+d or IY+d. the displacement is read
// from the program and the extra T-states used to calculate the address are
// ticked.
func (cpu *CPU) addrHL(extra int) uint16 {
	if !cpu.indexed() {
		return cpu.Main[HL].Word()
	}
	d := int8(cpu.imm8())
	cpu.WZ.Load(cpu.hl.Word() + uint16(d))
	cpu.internal(extra)
	return cpu.WZ.Word()
}

// op decodes and executes an unprefixed opcode (or an opcode following a DD
// or FD prefix). The opcode is split into bit groups:
//
//	|xx|yyy|zzz|
//	|xx|ppq|zzz|
func (cpu *CPU) op(op uint8) {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 1:
		// block 1: 8-bit loads and HALT
		if y == 6 && z == 6 {
			// LD (HL),(HL) is HALT
			cpu.halt()
		} else if y == 6 {
			// LD (HL),r; LD (IX+d),r; LD (IY+d),r
			// the source register is never replaced by an index byte
			addr := cpu.addrHL(5)
			cpu.write(addr, cpu.Reg(int(z)))
		} else if z == 6 {
			// LD r,(HL); LD r,(IX+d); LD r,(IY+d)
			addr := cpu.addrHL(5)
			cpu.SetReg(int(y), cpu.read(addr))
		} else {
			// LD r,r
			cpu.setR8(y, cpu.r8(z))
		}

	case 2:
		// block 2: 8-bit ALU instructions
		if z == 6 {
			addr := cpu.addrHL(5)
			cpu.alu8(y, cpu.read(addr))
		} else {
			cpu.alu8(y, cpu.r8(z))
		}

	case 0:
		// block 0: misc instructions
		cpu.block0(y, z, p, q)

	case 3:
		// block 3: misc and extended instructions
		cpu.block3(y, z, p, q)
	}
}

func (cpu *CPU) block0(y, z, p, q uint8) {
	switch z {
	case 0:
		switch y {
		case 0:
			// NOP
		case 1:
			// EX AF,AF'
			cpu.Main[FA], cpu.Shadow[FA] = cpu.Shadow[FA], cpu.Main[FA]
		case 2:
			// DJNZ d
			cpu.internal(1)
			d := int8(cpu.imm8())
			b := cpu.Reg(B) - 1
			cpu.SetReg(B, b)
			if b != 0 {
				cpu.jr(d)
			}
		case 3:
			// JR d
			cpu.jr(int8(cpu.imm8()))
		default:
			// JR cc,d
			d := int8(cpu.imm8())
			if cpu.cond(y - 4) {
				cpu.jr(d)
			}
		}

	case 1:
		if q == 0 {
			// LD rp,nn
			cpu.setRP(p, cpu.imm16())
		} else {
			// ADD HL,rp; ADD IX,rp; ADD IY,rp
			cpu.internal(7)
			cpu.hl.Load(cpu.add16(cpu.hl.Word(), cpu.rp(p)))
		}

	case 2:
		// indirect loads
		switch y {
		case 0:
			// LD (BC),A
			addr := cpu.Main[BC].Word()
			cpu.write(addr, cpu.a())
			cpu.WZ.Load(uint16(cpu.a())<<8 | (addr+1)&0x00ff)
		case 1:
			// LD A,(BC)
			addr := cpu.Main[BC].Word()
			cpu.setA(cpu.read(addr))
			cpu.WZ.Load(addr + 1)
		case 2:
			// LD (DE),A
			addr := cpu.Main[DE].Word()
			cpu.write(addr, cpu.a())
			cpu.WZ.Load(uint16(cpu.a())<<8 | (addr+1)&0x00ff)
		case 3:
			// LD A,(DE)
			addr := cpu.Main[DE].Word()
			cpu.setA(cpu.read(addr))
			cpu.WZ.Load(addr + 1)
		case 4:
			// LD (nn),HL
			addr := cpu.imm16()
			cpu.write16(addr, cpu.hl.Word())
			cpu.WZ.Load(addr + 1)
		case 5:
			// LD HL,(nn)
			addr := cpu.imm16()
			cpu.hl.Load(cpu.read16(addr))
			cpu.WZ.Load(addr + 1)
		case 6:
			// LD (nn),A
			addr := cpu.imm16()
			cpu.write(addr, cpu.a())
			cpu.WZ.Load(uint16(cpu.a())<<8 | (addr+1)&0x00ff)
		case 7:
			// LD A,(nn)
			addr := cpu.imm16()
			cpu.setA(cpu.read(addr))
			cpu.WZ.Load(addr + 1)
		}

	case 3:
		// INC rp; DEC rp
		cpu.internal(2)
		if q == 0 {
			cpu.setRP(p, cpu.rp(p)+1)
		} else {
			cpu.setRP(p, cpu.rp(p)-1)
		}

	case 4, 5:
		// INC r; DEC r
		var f func(uint8) uint8
		if z == 4 {
			f = cpu.inc8
		} else {
			f = cpu.dec8
		}
		if y == 6 {
			addr := cpu.addrHL(5)
			v := cpu.read(addr)
			cpu.internal(1)
			cpu.write(addr, f(v))
		} else {
			cpu.setR8(y, f(cpu.r8(y)))
		}

	case 6:
		if y == 6 {
			// LD (HL),n; LD (IX+d),n; LD (IY+d),n
			// the displacement comes before the immediate value
			var addr uint16
			if cpu.indexed() {
				addr = cpu.addrHL(0)
				n := cpu.imm8()
				cpu.internal(2)
				cpu.write(addr, n)
			} else {
				addr = cpu.Main[HL].Word()
				cpu.write(addr, cpu.imm8())
			}
		} else {
			// LD r,n
			cpu.setR8(y, cpu.imm8())
		}

	case 7:
		// misc ops on A and F
		switch y {
		case 0:
			cpu.rlca()
		case 1:
			cpu.rrca()
		case 2:
			cpu.rla()
		case 3:
			cpu.rra()
		case 4:
			cpu.daa()
		case 5:
			cpu.cpl()
		case 6:
			cpu.scf()
		case 7:
			cpu.ccf()
		}
	}
}

func (cpu *CPU) block3(y, z, p, q uint8) {
	switch z {
	case 0:
		// RET cc
		cpu.internal(1)
		if cpu.cond(y) {
			cpu.ret()
		}

	case 1:
		if q == 0 {
			// POP rp2
			cpu.setRP2(p, cpu.pop())
		} else {
			switch p {
			case 0:
				// RET
				cpu.ret()
			case 1:
				// EXX
				for _, i := range []int{BC, DE, HL} {
					cpu.Main[i], cpu.Shadow[i] = cpu.Shadow[i], cpu.Main[i]
				}
			case 2:
				// JP (HL); JP (IX); JP (IY)
				cpu.PC = cpu.hl.Word()
			case 3:
				// LD SP,HL; LD SP,IX; LD SP,IY
				cpu.internal(2)
				cpu.SP = cpu.hl.Word()
			}
		}

	case 2:
		// JP cc,nn
		addr := cpu.imm16()
		cpu.WZ.Load(addr)
		if cpu.cond(y) {
			cpu.PC = addr
		}

	case 3:
		switch y {
		case 0:
			// JP nn
			addr := cpu.imm16()
			cpu.WZ.Load(addr)
			cpu.PC = addr
		case 1:
			// the CB prefix is handled by execute()
		case 2:
			// OUT (n),A
			n := cpu.imm8()
			a := cpu.a()
			cpu.out(uint16(a)<<8|uint16(n), a)
			cpu.WZ.Load(uint16(a)<<8 | uint16(n+1))
		case 3:
			// IN A,(n)
			port := uint16(cpu.a())<<8 | uint16(cpu.imm8())
			cpu.setA(cpu.in(port))
			cpu.WZ.Load(port + 1)
		case 4:
			// EX (SP),HL; EX (SP),IX; EX (SP),IY
			lo := cpu.read(cpu.SP)
			hi := cpu.read(cpu.SP + 1)
			cpu.internal(1)
			v := cpu.hl.Word()
			cpu.write(cpu.SP+1, uint8(v>>8))
			cpu.write(cpu.SP, uint8(v))
			cpu.internal(2)
			cpu.hl.Load(uint16(hi)<<8 | uint16(lo))
			cpu.WZ.Load(cpu.hl.Word())
		case 5:
			// EX DE,HL. never affected by an index prefix
			cpu.Main[DE], cpu.Main[HL] = cpu.Main[HL], cpu.Main[DE]
		case 6:
			// DI
			cpu.IFF1 = false
			cpu.IFF2 = false
		case 7:
			// EI
			cpu.IFF1 = true
			cpu.IFF2 = true
			cpu.eiDelay = true
		}

	case 4:
		// CALL cc,nn
		addr := cpu.imm16()
		cpu.WZ.Load(addr)
		if cpu.cond(y) {
			cpu.call(addr)
		}

	case 5:
		if q == 0 {
			// PUSH rp2
			cpu.internal(1)
			cpu.push(cpu.rp2(p))
		} else if p == 0 {
			// CALL nn. the DD, ED and FD prefixes are handled by execute()
			addr := cpu.imm16()
			cpu.WZ.Load(addr)
			cpu.call(addr)
		}

	case 6:
		// ALU A,n
		cpu.alu8(y, cpu.imm8())

	case 7:
		// RST
		cpu.internal(1)
		cpu.rst(uint16(y) * 8)
	}
}

// jr adds the displacement to the PC. five T-states.
func (cpu *CPU) jr(d int8) {
	cpu.internal(5)
	cpu.PC += uint16(d)
	cpu.WZ.Load(cpu.PC)
}

// call pushes the PC and jumps to addr. the extra T-state is the stack
// pointer being decremented before the push.
func (cpu *CPU) call(addr uint16) {
	cpu.internal(1)
	cpu.push(cpu.PC)
	cpu.PC = addr
}

func (cpu *CPU) ret() {
	cpu.PC = cpu.pop()
	cpu.WZ.Load(cpu.PC)
}

// rst pushes the PC and jumps to addr. the caller is responsible for the
// extra T-state.
func (cpu *CPU) rst(addr uint16) {
	cpu.push(cpu.PC)
	cpu.PC = addr
	cpu.WZ.Load(addr)
}

// halt puts the CPU into the halted state. the PC is moved back to the HALT
// opcode so that the next Step() executes HALT again.
func (cpu *CPU) halt() {
	cpu.On(HALT)
	cpu.PC--
}
