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

// cycle calls the tick function once and notes NMI edges.
func (cpu *CPU) cycle() {
	cpu.tick(cpu.ctx, &cpu.Pins)
	cpu.ticks++

	nmi := cpu.Pins.Ctrl&NMI == NMI
	if nmi && !cpu.nmiLevel {
		cpu.nmiPending = true
	}
	cpu.nmiLevel = nmi
}

// internal ticks the clock without any change to the pins. used for the
// T-states the Z80 spends on internal operations.
func (cpu *CPU) internal(n int) {
	for i := 0; i < n; i++ {
		cpu.cycle()
	}
}

// fetch is the opcode fetch machine cycle (M1). the PC is incremented and the
// low 7 bits of R are incremented.
//
//	          T1   T2   T3   T4
//	A15-A0  |   PC    | REFRESH |
//	MREQ    |   *|****|  **|**  |
//	RD      |   *|****|    |    |
//	M1      |****|****|    |    |
//	D7-D0   |    |   X|    |    |
//	RFSH    |    |    |****|****|
func (cpu *CPU) fetch() uint8 {
	// T1
	cpu.On(M1)
	cpu.Pins.Addr = cpu.PC
	cpu.PC++
	cpu.cycle()

	// T2
	cpu.On(MREQ | RD)
	cpu.cycle()
	op := cpu.Pins.Data
	cpu.refresh()

	// T3
	cpu.Off(M1 | MREQ | RD)
	cpu.On(RFSH)
	cpu.Pins.Addr = cpu.IR.Word()
	cpu.cycle()

	// T4
	cpu.On(MREQ)
	cpu.cycle()
	cpu.Off(RFSH | MREQ)

	return op
}

// refresh increments the low 7 bits of the R register. bit 7 is unchanged.
func (cpu *CPU) refresh() {
	r := cpu.IR.Lo()
	cpu.IR.SetLo(r&0x80 | (r+1)&0x7f)
}

// read is a memory read machine cycle.
//
//	          T1   T2   T3
//	A15-A0  |   MEM ADDR   |
//	MREQ    |   *|****|*** |
//	RD      |   *|****|*** |
//	D7-D0   |    |    | X  |
func (cpu *CPU) read(addr uint16) uint8 {
	// T1
	cpu.Pins.Addr = addr
	cpu.cycle()

	// T2
	cpu.On(MREQ | RD)
	cpu.cycle()
	v := cpu.Pins.Data

	// T3
	cpu.Off(MREQ | RD)
	cpu.cycle()

	return v
}

// write is a memory write machine cycle.
//
//	          T1   T2   T3
//	A15-A0  |   MEM ADDR   |
//	MREQ    |   *|****|*** |
//	WR      |    |  **|*** |
//	D7-D0   |   X|XXXX|XXXX|
func (cpu *CPU) write(addr uint16, v uint8) {
	// T1
	cpu.Pins.Addr = addr
	cpu.Pins.Data = v
	cpu.cycle()

	// T2
	cpu.On(MREQ | WR)
	cpu.cycle()

	// T3
	cpu.Off(MREQ | WR)
	cpu.cycle()
}

// in is an I/O read machine cycle. the I/O cycles include one automatic wait
// state and IORQ is active for that T-state only.
//
//	          T1   T2   TW   T3
//	A15-A0  |     PORT ADDR     |
//	IORQ    |    |    |****|    |
//	RD      |    |    |****|    |
//	D7-D0   |    |    |   X|    |
func (cpu *CPU) in(port uint16) uint8 {
	// T1
	cpu.Pins.Addr = port
	cpu.cycle()

	// T2
	cpu.cycle()

	// TW
	cpu.On(IORQ | RD)
	cpu.cycle()
	v := cpu.Pins.Data

	// T3
	cpu.Off(IORQ | RD)
	cpu.cycle()

	return v
}

// out is an I/O write machine cycle.
//
//	          T1   T2   TW   T3
//	A15-A0  |     PORT ADDR     |
//	IORQ    |    |    |****|    |
//	WR      |    |    |****|    |
//	D7-D0   |XXXXXXXXXXXXXXXXXXX|
func (cpu *CPU) out(port uint16, v uint8) {
	// T1
	cpu.Pins.Addr = port
	cpu.Pins.Data = v
	cpu.cycle()

	// T2
	cpu.cycle()

	// TW
	cpu.On(IORQ | WR)
	cpu.cycle()

	// T3
	cpu.Off(IORQ | WR)
	cpu.cycle()
}

// acknowledge is the interrupt acknowledge machine cycle. it is an M1 cycle
// with two automatic wait states and IORQ in place of MREQ. the peripheral
// puts a byte on the data bus when it sees M1 and IORQ together.
//
//	          T1   T2   TW   TW   T3   T4
//	A15-A0  |        PC         | REFRESH |
//	M1      |****|****|****|****|    |    |
//	IORQ    |    |    |    |****|    |    |
//	D7-D0   |    |    |    |   X|    |    |
//	RFSH    |    |    |    |    |****|****|
func (cpu *CPU) acknowledge() uint8 {
	// T1
	cpu.On(M1)
	cpu.Pins.Addr = cpu.PC
	cpu.cycle()

	// T2 and the first wait state
	cpu.internal(2)

	// second wait state
	cpu.On(IORQ)
	cpu.cycle()
	v := cpu.Pins.Data
	cpu.refresh()

	// T3
	cpu.Off(M1 | IORQ)
	cpu.On(RFSH)
	cpu.Pins.Addr = cpu.IR.Word()
	cpu.cycle()

	// T4
	cpu.On(MREQ)
	cpu.cycle()
	cpu.Off(RFSH | MREQ)

	return v
}

// read16 reads a little-endian word with two memory read cycles.
func (cpu *CPU) read16(addr uint16) uint16 {
	lo := cpu.read(addr)
	hi := cpu.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// write16 writes a little-endian word with two memory write cycles.
func (cpu *CPU) write16(addr uint16, v uint16) {
	cpu.write(addr, uint8(v))
	cpu.write(addr+1, uint8(v>>8))
}

// imm8 reads the byte at PC and advances PC.
func (cpu *CPU) imm8() uint8 {
	v := cpu.read(cpu.PC)
	cpu.PC++
	return v
}

// imm16 reads the word at PC and advances PC.
func (cpu *CPU) imm16() uint16 {
	lo := cpu.imm8()
	hi := cpu.imm8()
	return uint16(hi)<<8 | uint16(lo)
}

// push writes a word to the stack, high byte first.
func (cpu *CPU) push(v uint16) {
	cpu.SP--
	cpu.write(cpu.SP, uint8(v>>8))
	cpu.SP--
	cpu.write(cpu.SP, uint8(v))
}

// pop reads a word from the stack.
func (cpu *CPU) pop() uint16 {
	lo := cpu.read(cpu.SP)
	cpu.SP++
	hi := cpu.read(cpu.SP)
	cpu.SP++
	return uint16(hi)<<8 | uint16(lo)
}
