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

package memory

import (
	"github.com/jetsetilly/chips/hardware/cpu/m6502"
	"github.com/jetsetilly/chips/hardware/cpu/z80"
)

// Tick6502 is an implementation of m6502.TickFunc.
func (mem *Flat) Tick6502(pins m6502.Pins) m6502.Pins {
	if pins.IsRead() {
		pins.SetData(mem.RAM[pins.Addr()])
	} else {
		mem.RAM[pins.Addr()] = pins.Data()
	}

	pins &^= m6502.IRQ | m6502.NMI
	if mem.IRQ {
		pins |= m6502.IRQ
	}
	if mem.NMI {
		pins |= m6502.NMI
	}

	return pins
}

// TickZ80 is an implementation of z80.TickFunc. The context argument is not
// used.
//
// Only the low eight bits of the address select an I/O port.
func (mem *Flat) TickZ80(_ any, pins *z80.Pins) {
	switch {
	case pins.Ctrl&(z80.M1|z80.IORQ) == z80.M1|z80.IORQ:
		pins.Data = mem.Vector
	case pins.Ctrl&(z80.MREQ|z80.RD) == z80.MREQ|z80.RD:
		pins.Data = mem.RAM[pins.Addr]
	case pins.Ctrl&(z80.MREQ|z80.WR) == z80.MREQ|z80.WR:
		mem.RAM[pins.Addr] = pins.Data
	case pins.Ctrl&(z80.IORQ|z80.RD) == z80.IORQ|z80.RD:
		pins.Data = mem.Ports[uint8(pins.Addr)]
	case pins.Ctrl&(z80.IORQ|z80.WR) == z80.IORQ|z80.WR:
		mem.Ports[uint8(pins.Addr)] = pins.Data
		mem.recordOut(PortWrite{Port: pins.Addr, Data: pins.Data})
	}

	pins.Ctrl &^= z80.INT | z80.NMI
	if mem.IRQ {
		pins.Ctrl |= z80.INT
	}
	if mem.NMI {
		pins.Ctrl |= z80.NMI
	}
}
