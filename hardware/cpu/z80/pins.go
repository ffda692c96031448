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

import (
	"fmt"
	"strings"
)

// Ctrl is the set of control pins of the Z80. A pin is active when its bit is
// set, regardless of whether the pin on the real chip is active high or
// active low.
type Ctrl uint16

// List of control pins. The bit positions are part of the wire format
// produced by Pins.Pack().
const (
	// system control pins
	M1   Ctrl = 1 << 0 // machine cycle 1
	MREQ Ctrl = 1 << 1 // memory request
	IORQ Ctrl = 1 << 2 // input/output request
	RD   Ctrl = 1 << 3 // read
	WR   Ctrl = 1 << 4 // write
	RFSH Ctrl = 1 << 5 // refresh

	// CPU control pins
	HALT  Ctrl = 1 << 6  // halt state
	WAIT  Ctrl = 1 << 7  // wait state
	INT   Ctrl = 1 << 8  // interrupt request
	NMI   Ctrl = 1 << 9  // non-maskable interrupt
	RESET Ctrl = 1 << 10 // reset

	// CPU bus control pins
	BUSREQ Ctrl = 1 << 11 // bus request
	BUSACK Ctrl = 1 << 12 // bus acknowledge
)

var ctrlNames = []string{"M1", "MREQ", "IORQ", "RD", "WR", "RFSH", "HALT", "WAIT", "INT", "NMI", "RESET", "BUSREQ", "BUSACK"}

// String lists the active pins separated by a vertical bar.
func (c Ctrl) String() string {
	s := strings.Builder{}
	for i, n := range ctrlNames {
		if c&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteRune('|')
			}
			s.WriteString(n)
		}
	}
	return s.String()
}

// Pins is the state of the address, data and control pins. The host reads and
// modifies the Pins of the CPU during every tick.
type Pins struct {
	Ctrl Ctrl
	Addr uint16
	Data uint8
}

// Bit positions of the fields in the packed form of Pins.
const (
	PackedDataShift = 16
	PackedCtrlShift = 24
)

// Pack returns the pins as a single integer. The address occupies the low 16
// bits, the data the next 8 bits and the control pins start at bit 24.
func (p Pins) Pack() uint64 {
	return uint64(p.Addr) | uint64(p.Data)<<PackedDataShift | uint64(p.Ctrl)<<PackedCtrlShift
}

// UnpackPins is the reverse of Pins.Pack().
func UnpackPins(v uint64) Pins {
	return Pins{
		Addr: uint16(v),
		Data: uint8(v >> PackedDataShift),
		Ctrl: Ctrl(v >> PackedCtrlShift),
	}
}

func (p Pins) String() string {
	return fmt.Sprintf("%#04x %#02x %s", p.Addr, p.Data, p.Ctrl)
}

// TickFunc is called by the CPU once per T-state. The context value is the
// value given to NewCPU(). The function can change any of the pins but should
// normally only change the data pins (in response to a read request) and the
// INT, NMI and WAIT pins.
type TickFunc func(ctx any, pins *Pins)
