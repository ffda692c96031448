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

// Package m6502 emulates the NMOS 6502 microprocessor one clock tick at a
// time. Like all 8-bit processors of the era, the 6502 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table (see the instructions package). The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// The CPU has no memory of its own. The only argument to NewCPU() is a
// TickFunc, which is called once for every clock cycle with the state of the
// CPU's pins. The host decodes the address, performs the read or write and
// returns the pins. Let's assume ram is a 64k byte array:
//
//	mc := m6502.NewCPU(func(pins m6502.Pins) m6502.Pins {
//		if pins.IsRead() {
//			pins.SetData(ram[pins.Addr()])
//		} else {
//			ram[pins.Addr()] = pins.Data()
//		}
//		return pins
//	})
//	mc.Reset()
//
//	for {
//		mc.Step()
//	}
//
// Every cycle of the real chip is a bus cycle, including the phantom reads of
// indexed addressing and the extra write of read-modify-write instructions. The
// number of calls to the TickFunc is therefore the same as the documented
// cycle count of the instruction, including page crossing and branching
// penalties.
//
// The host raises interrupts by setting the IRQ or NMI pins in the value it
// returns from the TickFunc. IRQ is level triggered and masked by the
// interrupt disable flag. NMI is edge triggered. Interrupts are checked at the
// start of each call to Step().
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// the TickFunc. The BreakMask field causes Run() to return early when the
// host marks a tick with one of the bits in the mask.
package m6502
