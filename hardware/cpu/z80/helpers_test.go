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

package z80_test

import (
	"testing"

	"github.com/jetsetilly/chips/hardware/cpu/z80"
)

type portWrite struct {
	port uint16
	data uint8
}

type mockBus struct {
	ram   [0x10000]uint8
	ports [0x100]uint8

	// every write to an I/O port
	outs []portWrite

	// the pins at the end of every tick
	ticks []z80.Pins

	// the byte put on the data bus during an interrupt acknowledge
	vector uint8

	// state of the interrupt pins driven by the host
	intr bool
	nmi  bool
}

func (bus *mockBus) tick(ctx any, pins *z80.Pins) {
	if ctx != bus {
		panic("unexpected context")
	}

	switch {
	case pins.Ctrl&(z80.M1|z80.IORQ) == z80.M1|z80.IORQ:
		pins.Data = bus.vector
	case pins.Ctrl&(z80.MREQ|z80.RD) == z80.MREQ|z80.RD:
		pins.Data = bus.ram[pins.Addr]
	case pins.Ctrl&(z80.MREQ|z80.WR) == z80.MREQ|z80.WR:
		bus.ram[pins.Addr] = pins.Data
	case pins.Ctrl&(z80.IORQ|z80.RD) == z80.IORQ|z80.RD:
		pins.Data = bus.ports[uint8(pins.Addr)]
	case pins.Ctrl&(z80.IORQ|z80.WR) == z80.IORQ|z80.WR:
		bus.outs = append(bus.outs, portWrite{port: pins.Addr, data: pins.Data})
	}

	pins.Ctrl &^= z80.INT | z80.NMI
	if bus.intr {
		pins.Ctrl |= z80.INT
	}
	if bus.nmi {
		pins.Ctrl |= z80.NMI
	}

	bus.ticks = append(bus.ticks, *pins)
}

// prepare creates a CPU connected to a new mockBus with the program loaded at
// address zero.
func prepare(program ...uint8) (*z80.CPU, *mockBus) {
	bus := &mockBus{vector: 0xff}
	copy(bus.ram[:], program)
	return z80.NewCPU(bus.tick, bus), bus
}

// step executes one instruction and checks that the number of ticks reported
// is the same as the number of calls to the tick function.
func step(t *testing.T, cpu *z80.CPU, bus *mockBus) int {
	t.Helper()
	before := len(bus.ticks)
	n := cpu.Step()
	if n != len(bus.ticks)-before {
		t.Fatalf("step returned %d ticks but tick function was called %d times", n, len(bus.ticks)-before)
	}
	return n
}

// steps executes n instructions.
func steps(t *testing.T, cpu *z80.CPU, bus *mockBus, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		step(t, cpu, bus)
	}
}
