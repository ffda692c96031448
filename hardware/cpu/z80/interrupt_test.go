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
	"strings"
	"testing"

	"github.com/jetsetilly/chips/hardware/cpu/z80"
	"github.com/jetsetilly/chips/logger"
	"github.com/jetsetilly/chips/test"
)

func TestIM1FromHalt(t *testing.T) {
	// IM 1; EI; HALT; NOP
	cpu, bus := prepare(0xed, 0x56, 0xfb, 0x76, 0x00)

	steps(t, cpu, bus, 3)
	test.ExpectSuccess(t, cpu.Halted())
	test.ExpectEquality(t, cpu.PC, 3)

	// the INT pin is seen by the CPU during the next HALT
	bus.intr = true
	test.ExpectEquality(t, step(t, cpu, bus), 4)
	test.ExpectSuccess(t, cpu.Halted())

	bus.ticks = bus.ticks[:0]
	test.ExpectEquality(t, step(t, cpu, bus), 13)
	test.ExpectFailure(t, cpu.Halted())
	test.ExpectEquality(t, cpu.PC, z80.IM1Vector)
	test.ExpectEquality(t, cpu.IFF1, false)
	test.ExpectEquality(t, cpu.IFF2, false)

	// the return address is the instruction after the HALT
	test.ExpectEquality(t, cpu.SP, 0xfffd)
	test.ExpectEquality(t, bus.ram[0xfffe], 0x00)
	test.ExpectEquality(t, bus.ram[0xfffd], 0x04)

	// M1 and IORQ are active together exactly once
	var acks int
	for _, p := range bus.ticks {
		if p.Ctrl&(z80.M1|z80.IORQ) == z80.M1|z80.IORQ {
			acks++
		}
	}
	test.ExpectEquality(t, acks, 1)
}

func TestEIDelay(t *testing.T) {
	// IM 1; EI; NOP; NOP
	cpu, bus := prepare(0xed, 0x56, 0xfb, 0x00, 0x00)
	bus.intr = true

	steps(t, cpu, bus, 2)
	test.ExpectEquality(t, cpu.PC, 3)

	// the instruction after EI is always executed
	test.ExpectEquality(t, step(t, cpu, bus), 4)
	test.ExpectEquality(t, cpu.PC, 4)

	test.ExpectEquality(t, step(t, cpu, bus), 13)
	test.ExpectEquality(t, cpu.PC, z80.IM1Vector)
	test.ExpectEquality(t, bus.ram[0xfffd], 0x04)
}

func TestInterruptsDisabled(t *testing.T) {
	// IM 1; DI; NOP; NOP; NOP
	cpu, bus := prepare(0xed, 0x56, 0xf3, 0x00, 0x00, 0x00)
	bus.intr = true

	steps(t, cpu, bus, 5)
	test.ExpectEquality(t, cpu.PC, 6)
}

func TestIM2(t *testing.T) {
	cpu, bus := prepare(
		0x3e, 0x80, // LD A,0x80
		0xed, 0x47, // LD I,A
		0xed, 0x5e, // IM 2
		0xfb, // EI
		0x00, // NOP
		0x00, // NOP
	)
	bus.vector = 0x10
	bus.ram[0x8010] = 0x00
	bus.ram[0x8011] = 0x30
	bus.intr = true

	steps(t, cpu, bus, 5)
	test.ExpectEquality(t, cpu.PC, 8)
	test.ExpectEquality(t, step(t, cpu, bus), 19)
	test.ExpectEquality(t, cpu.PC, 0x3000)
	test.ExpectEquality(t, cpu.WZ.Word(), 0x3000)
}

func TestIM0(t *testing.T) {
	// IM 0; EI; NOP; NOP
	cpu, bus := prepare(0xed, 0x46, 0xfb, 0x00, 0x00)

	// RST 08h
	bus.vector = 0xcf
	bus.intr = true

	steps(t, cpu, bus, 3)
	test.ExpectEquality(t, step(t, cpu, bus), 13)
	test.ExpectEquality(t, cpu.PC, 0x0008)
}

func TestIM0NonRST(t *testing.T) {
	logger.Clear()

	// IM 0; EI; NOP; NOP
	cpu, bus := prepare(0xed, 0x46, 0xfb, 0x00, 0x00)

	// INC A
	bus.vector = 0x3c
	bus.intr = true

	steps(t, cpu, bus, 3)
	a := cpu.Reg(z80.A)
	test.ExpectEquality(t, step(t, cpu, bus), 6)
	test.ExpectEquality(t, cpu.Reg(z80.A), a+1)
	test.ExpectEquality(t, cpu.PC, 4)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "z80: IM0 acknowledge with non-RST opcode (0x3c)\n")
}

func TestNMI(t *testing.T) {
	// EI; NOP; NOP; NOP
	cpu, bus := prepare(0xfb, 0x00, 0x00, 0x00)

	// RETN
	bus.ram[z80.NMIVector] = 0xed
	bus.ram[z80.NMIVector+1] = 0x45

	step(t, cpu, bus)
	bus.nmi = true
	step(t, cpu, bus)

	test.ExpectEquality(t, step(t, cpu, bus), 11)
	test.ExpectEquality(t, cpu.PC, z80.NMIVector)
	test.ExpectEquality(t, cpu.IFF1, false)
	test.ExpectEquality(t, cpu.IFF2, true)

	// RETN restores IFF1
	test.ExpectEquality(t, step(t, cpu, bus), 14)
	test.ExpectEquality(t, cpu.PC, 2)
	test.ExpectEquality(t, cpu.IFF1, true)

	// NMI is edge triggered. holding the pin does not cause another NMI
	step(t, cpu, bus)
	test.ExpectEquality(t, cpu.PC, 3)
}

func TestNMIFromHalt(t *testing.T) {
	// HALT
	cpu, bus := prepare(0x76)
	bus.nmi = true

	step(t, cpu, bus)
	test.ExpectSuccess(t, cpu.Halted())

	test.ExpectEquality(t, step(t, cpu, bus), 11)
	test.ExpectFailure(t, cpu.Halted())
	test.ExpectEquality(t, cpu.PC, z80.NMIVector)
	test.ExpectEquality(t, bus.ram[0xfffd], 0x01)
}
