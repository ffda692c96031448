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

package m6502

// Pins is the state of the 6502's address, data and control lines packed into
// a single 64 bit value.
//
//	bits  0-15	address bus A0-A15
//	bits 16-23	data bus D0-D7
//	bit  24		RW (set for read, clear for write)
//	bit  25		IRQ
//	bit  26		NMI
//	bit  27		SYNC (opcode fetch)
//
// Bits above PinMask are never touched by the CPU and are free for the host
// to use, for example to mark a tick for the BreakMask.
type Pins uint64

// List of control pins.
const (
	RW   Pins = 1 << 24
	IRQ  Pins = 1 << 25
	NMI  Pins = 1 << 26
	SYNC Pins = 1 << 27
)

// Masks for the different parts of the pin state.
const (
	AddrMask Pins = 0x0000ffff
	DataMask Pins = 0x00ff0000
	PinMask  Pins = 0xffffffff
)

// MakePins returns a pin state with the control pins, address bus and data
// bus set.
func MakePins(ctrl Pins, addr uint16, data uint8) Pins {
	return ctrl | Pins(data)<<16 | Pins(addr)
}

// Addr returns the value on the address bus.
func (p Pins) Addr() uint16 {
	return uint16(p & AddrMask)
}

// Data returns the value on the data bus.
func (p Pins) Data() uint8 {
	return uint8((p & DataMask) >> 16)
}

// SetAddr changes the address bus without disturbing any other pins.
func (p *Pins) SetAddr(addr uint16) {
	*p = (*p &^ AddrMask) | Pins(addr)
}

// SetData changes the data bus without disturbing any other pins.
func (p *Pins) SetData(data uint8) {
	*p = (*p &^ DataMask) | Pins(data)<<16
}

// IsRead returns true if the RW pin indicates a read.
func (p Pins) IsRead() bool {
	return p&RW == RW
}

// TickFunc is called by the CPU once for every clock cycle. The pins argument
// describes the bus cycle the CPU is performing. For a read the host should
// place the value at the address on the data bus of the returned pins. For a
// write the host should store the data bus value at the address.
//
// The host can also raise or lower the IRQ and NMI lines in the returned
// pins. Those lines keep their level until the host changes them.
type TickFunc func(pins Pins) Pins
