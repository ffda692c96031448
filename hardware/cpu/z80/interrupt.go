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

// leaveHalt takes the CPU out of the halted state. the PC is moved past the
// HALT opcode so that the return address is the following instruction.
func (cpu *CPU) leaveHalt() {
	if cpu.Halted() {
		cpu.Off(HALT)
		cpu.PC++
	}
}

// nmi accepts a non-maskable interrupt. the opcode fetched during the
// acknowledge cycle is discarded. IFF2 keeps the state of IFF1 so that RETN
// can restore it.
//
// 11 T-states.
func (cpu *CPU) nmi() {
	cpu.nmiPending = false
	cpu.leaveHalt()
	cpu.IFF1 = false

	cpu.fetch()
	cpu.PC--
	cpu.internal(1)

	cpu.rst(NMIVector)
}

// interrupt accepts a maskable interrupt according to the interrupt mode.
//
// IM0 executes the opcode put on the data bus by the peripheral. normally
// this is an RST instruction (13 T-states). IM1 is always RST 38h (13
// T-states). IM2 reads the address of the interrupt routine from the table at
// I<<8 | data (19 T-states).
func (cpu *CPU) interrupt() {
	cpu.leaveHalt()
	cpu.IFF1 = false
	cpu.IFF2 = false

	data := cpu.acknowledge()

	switch cpu.IM {
	case 0:
		if data&0xc7 == 0xc7 {
			cpu.internal(1)
			cpu.rst(uint16(data & 0x38))
			return
		}

		logger.Logf(logger.Allow, "z80", "IM0 acknowledge with non-RST opcode (%#02x)", data)

		switch data {
		case 0xcb, 0xdd, 0xed, 0xfd:
			// prefixed instructions can not be supplied by a peripheral
		default:
			cpu.hl = &cpu.Main[HL]
			cpu.op(data)
		}

	case 1:
		cpu.internal(1)
		cpu.rst(IM1Vector)

	case 2:
		cpu.internal(1)
		cpu.push(cpu.PC)
		cpu.PC = cpu.read16(uint16(cpu.IR.Hi())<<8 | uint16(data))
		cpu.WZ.Load(cpu.PC)
	}
}
