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

package m6502_test

import (
	"testing"

	"github.com/jetsetilly/chips/hardware/cpu/m6502"
)

// busCycle is a simplified record of one tick. the data field is the value
// on the data bus after the host has responded
type busCycle struct {
	addr uint16
	data uint8
	read bool
	sync bool
}

type mockMem struct {
	internal [0x10000]uint8
	cycles   []busCycle

	// state of the interrupt lines driven by the host
	irq bool
	nmi bool

	// if mark is non-zero then it is ORed into the pins of any tick that
	// accesses markAddr
	mark     m6502.Pins
	markAddr uint16
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) tick(pins m6502.Pins) m6502.Pins {
	if pins.IsRead() {
		pins.SetData(mem.internal[pins.Addr()])
	} else {
		mem.internal[pins.Addr()] = pins.Data()
	}

	mem.cycles = append(mem.cycles, busCycle{
		addr: pins.Addr(),
		data: pins.Data(),
		read: pins.IsRead(),
		sync: pins&m6502.SYNC == m6502.SYNC,
	})

	pins &^= m6502.IRQ | m6502.NMI
	if mem.irq {
		pins |= m6502.IRQ
	}
	if mem.nmi {
		pins |= m6502.NMI
	}

	if mem.mark != 0 && pins.Addr() == mem.markAddr {
		pins |= mem.mark
	}

	return pins
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) setVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

// prepare creates a CPU connected to a new mockMem. the reset vector points
// to origin and the CPU has been reset. the bus cycles of the reset are
// discarded
func prepare(origin uint16) (*m6502.CPU, *mockMem) {
	mem := newMockMem()
	mem.setVector(m6502.ResetVector, origin)
	mc := m6502.NewCPU(mem.tick)
	mc.Reset()
	mem.cycles = mem.cycles[:0]
	return mc, mem
}

// step executes one instruction and checks the validity of the result
func step(t *testing.T, mc *m6502.CPU) int {
	t.Helper()
	n := mc.Step()
	if err := mc.LastResult.IsValid(); err != nil {
		t.Fatal(err)
	}
	if n != mc.LastResult.Cycles {
		t.Fatalf("step returned %d ticks but result records %d", n, mc.LastResult.Cycles)
	}
	return n
}
