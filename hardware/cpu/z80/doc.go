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

// Package z80 emulates the Zilog Z80. The emulation is cycle-stepped: the
// CPU calls the host's TickFunc once for every T-state and the host responds
// to the state of the pins.
//
// A memory read is signalled by MREQ and RD being active together, a memory
// write by MREQ and WR. I/O requests use IORQ in place of MREQ. An interrupt
// acknowledge is the only time M1 and IORQ are active together, at which
// point the host should put the interrupt data on the data pins. For example,
// with ram a 64k byte array:
//
//	tick := func(ctx any, pins *z80.Pins) {
//		switch {
//		case pins.Ctrl&(z80.MREQ|z80.RD) == z80.MREQ|z80.RD:
//			pins.Data = ram[pins.Addr]
//		case pins.Ctrl&(z80.MREQ|z80.WR) == z80.MREQ|z80.WR:
//			ram[pins.Addr] = pins.Data
//		}
//	}
//
//	cpu := z80.NewCPU(tick, nil)
//	for {
//		cpu.Step()
//	}
//
// Each request is active for exactly one T-state of a machine cycle, so the
// host never sees the same request twice.
//
// Opcodes are decoded by splitting them into bit groups and dispatching on
// the top two bits first (the instruction block) and then on the remaining
// groups. The CB, ED, DD and FD prefixes are all supported, including the
// undocumented instructions that use the high and low bytes of IX and IY.
//
// The host raises interrupts by setting the INT and NMI pins during a tick.
// INT is level triggered and NMI is edge triggered. Interrupts are checked at
// the start of each call to Step().
package z80
