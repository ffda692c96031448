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
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/chips/curated"
	"github.com/jetsetilly/chips/hardware/cpu/m6502"
	"github.com/jetsetilly/chips/logger"
	"github.com/jetsetilly/chips/test"
)

func TestNewCPU(t *testing.T) {
	mem := newMockMem()
	mc := m6502.NewCPU(mem.tick)
	test.ExpectEquality(t, mc.Status.Value(), m6502.IF|m6502.XF)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Pins, m6502.RW)
	test.ExpectEquality(t, mc.PC.Address(), 0)
	test.ExpectEquality(t, mc.A.Value(), 0)

	// no bus activity until Reset()
	test.ExpectEquality(t, len(mem.cycles), 0)
}

func TestNewCPUNilTick(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		test.DemandSuccess(t, ok)
		test.ExpectSuccess(t, curated.Is(err, m6502.NilTick))
	}()
	m6502.NewCPU(nil)
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mem.setVector(m6502.ResetVector, 0xc012)
	mc := m6502.NewCPU(mem.tick)

	// mangle state before reset
	mc.SP.Load(0x10)
	mc.Status.FromValue(0xff)
	mc.PC.Load(0x1234)

	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), 0xc012)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Value(), 0x24)
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzc")

	// two reads of the reset vector
	test.DemandEquality(t, len(mem.cycles), 2)
	test.ExpectEquality(t, mem.cycles[0], busCycle{addr: 0xfffc, data: 0x12, read: true})
	test.ExpectEquality(t, mem.cycles[1], busCycle{addr: 0xfffd, data: 0xc0, read: true})
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := prepare(0x0200)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin := mem.putInstructions(0x0200, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv--dizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv--DIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzc")

	// PHP; PLP
	mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	// PHP always pushes with the break flag set
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzc")
}

func TestRegisterArithmetic(t *testing.T) {
	mc, mem := prepare(0x0200)

	// LDA immediate; ADC immediate
	origin := mem.putInstructions(0x0200, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), 3)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// LDA #$3e; CLC; ADC #$01
	origin = mem.putInstructions(origin, 0xa9, 0x3e, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x3f)
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzc")

	// LDA #$00; SEC; SBC #$01
	origin = mem.putInstructions(origin, 0xa9, 0x00, 0x38, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Sv--dIzc")

	// LDA #$7f; CLC; ADC #$01 (signed overflow)
	origin = mem.putInstructions(origin, 0xa9, 0x7f, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.String(), "SV--dIzc")

	// SED; CLC; LDA #$15; ADC #$27 (decimal mode)
	mem.putInstructions(origin, 0xf8, 0x18, 0xa9, 0x15, 0x69, 0x27)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.Status.Carry, false)
}

func TestCompareAndBit(t *testing.T) {
	mc, mem := prepare(0x0200)

	// LDA #$40; CMP #$40; CMP #$41; LDX #$05; CPX #$04
	mem.putInstructions(0x0200, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41, 0xa2, 0x05, 0xe0, 0x04, 0x24, 0x10)
	mem.internal[0x10] = 0xc0

	step(t, mc)
	step(t, mc) // CMP #$40
	test.ExpectEquality(t, mc.Status.String(), "sv--dIZC")
	step(t, mc) // CMP #$41
	test.ExpectEquality(t, mc.Status.String(), "Sv--dIzc")
	step(t, mc)
	step(t, mc) // CPX #$04
	test.ExpectEquality(t, mc.Status.String(), "sv--dIzC")

	// BIT $10. N and V from memory, Z from A AND memory
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "SV--dIzC")
}

// every opcode is executed once with operands that do not cross a page
// boundary. the number of ticks must match the instruction table
func TestCycleCounts(t *testing.T) {
	for op := 0; op <= 0xff; op++ {
		mc, mem := prepare(0x0200)
		mem.putInstructions(0x0200, uint8(op), 0x10, 0x02)

		// zero page pointer for the indirect modes
		mem.internal[0x10] = 0x00
		mem.internal[0x11] = 0x03

		n := mc.Step()
		test.ExpectEquality(t, n, len(mem.cycles), fmt.Sprintf("opcode %02x", op))
		test.ExpectSuccess(t, mc.LastResult.IsValid(), fmt.Sprintf("opcode %02x", op))

		// the opcode fetch is the only cycle with SYNC
		test.ExpectEquality(t, mem.cycles[0].sync, true)
		for _, c := range mem.cycles[1:] {
			test.ExpectEquality(t, c.sync, false, fmt.Sprintf("opcode %02x", op))
		}
	}
}

func TestPageFault(t *testing.T) {
	mc, mem := prepare(0x0200)

	// LDX #$01; LDA $02ff,X; STA $0300,X; LDA $0300,X
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xbd, 0xff, 0x02, 0x9d, 0x00, 0x03, 0xbd, 0x00, 0x03)
	mem.internal[0x0300] = 0x99

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.A.Value(), 0x99)

	// stores always take the extra cycle
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	mem.assert(t, 0x0301, 0x99)

	test.ExpectEquality(t, step(t, mc), 4)
}

func TestBranching(t *testing.T) {
	mc, mem := prepare(0x02f0)

	// BEQ (not taken); BNE +$10 (taken, page crossed)
	mem.putInstructions(0x02f0, 0xf0, 0x10, 0xd0, 0x10)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, false)
	test.ExpectEquality(t, mc.PC.Address(), 0x02f2)

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.PC.Address(), 0x0304)

	// BNE backwards to the same page
	mem.putInstructions(0x0304, 0xd0, 0xfc)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0302)
}

func TestBusSequence(t *testing.T) {
	mc, mem := prepare(0x0200)

	// LDA $1234
	mem.putInstructions(0x0200, 0xad, 0x34, 0x12)
	mem.internal[0x1234] = 0x56
	step(t, mc)
	test.DemandEquality(t, len(mem.cycles), 4)
	test.ExpectEquality(t, mem.cycles[0], busCycle{addr: 0x0200, data: 0xad, read: true, sync: true})
	test.ExpectEquality(t, mem.cycles[1], busCycle{addr: 0x0201, data: 0x34, read: true})
	test.ExpectEquality(t, mem.cycles[2], busCycle{addr: 0x0202, data: 0x12, read: true})
	test.ExpectEquality(t, mem.cycles[3], busCycle{addr: 0x1234, data: 0x56, read: true})

	// INC $10. read-modify-write writes the unmodified value first
	mem.cycles = mem.cycles[:0]
	mem.putInstructions(0x0203, 0xe6, 0x10)
	mem.internal[0x10] = 0x7f
	step(t, mc)
	test.DemandEquality(t, len(mem.cycles), 5)
	test.ExpectEquality(t, mem.cycles[2], busCycle{addr: 0x0010, data: 0x7f, read: true})
	test.ExpectEquality(t, mem.cycles[3], busCycle{addr: 0x0010, data: 0x7f, read: false})
	test.ExpectEquality(t, mem.cycles[4], busCycle{addr: 0x0010, data: 0x80, read: false})
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func TestSubroutines(t *testing.T) {
	mc, mem := prepare(0x0200)

	// JSR $0300; ... $0300: RTS
	mem.putInstructions(0x0200, 0x20, 0x00, 0x03, 0xea)
	mem.putInstructions(0x0300, 0x60)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)

	// return address on the stack is the last byte of the JSR instruction
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestBrkAndRti(t *testing.T) {
	mc, mem := prepare(0x0200)
	mem.setVector(m6502.IRQVector, 0x0400)

	// CLI; BRK; (padding) ... $0400: RTI
	mem.putInstructions(0x0200, 0x58, 0x00, 0xff, 0xea)
	mem.putInstructions(0x0400, 0x40)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// status pushed with B flag set and I flag clear
	mem.assert(t, 0x01fb, 0x30)
	mem.assert(t, 0x01fc, 0x03)
	mem.assert(t, 0x01fd, 0x02)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.Status.InterruptDisable, false)
}

func TestIRQ(t *testing.T) {
	mc, mem := prepare(0x0200)
	mem.setVector(m6502.IRQVector, 0x0400)

	// NOP; CLI; NOP
	mem.putInstructions(0x0200, 0xea, 0x58, 0xea)

	// interrupts are disabled after reset
	mem.irq = true
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "IRQ")
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// status pushed with B flag clear
	mem.assert(t, 0x01fb, 0x20)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fd, 0x02)
}

func TestNMI(t *testing.T) {
	mc, mem := prepare(0x0200)
	mem.setVector(m6502.NMIVector, 0x0500)

	// NOP; NOP; NOP
	mem.putInstructions(0x0200, 0xea, 0xea, 0xea)
	mem.putInstructions(0x0500, 0xea, 0xea)

	// NMI is not masked by the interrupt disable flag
	mem.nmi = true
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "NMI")
	test.ExpectEquality(t, mc.PC.Address(), 0x0500)

	// NMI is edge triggered. holding the line does not cause another
	// interrupt
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "")
	test.ExpectEquality(t, mc.PC.Address(), 0x0501)
}

func TestKIL(t *testing.T) {
	logger.Clear()

	mc, mem := prepare(0x0200)
	mem.putInstructions(0x0200, 0x02)
	step(t, mc)
	test.ExpectEquality(t, mc.Killed, true)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "m6502: KIL instruction (0x0200)\n")

	// a killed CPU burns one tick per step
	test.ExpectEquality(t, mc.Step(), 1)
	test.ExpectEquality(t, mc.Run(10), 10)

	mc.Reset()
	test.ExpectEquality(t, mc.Killed, false)
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
}

func TestJmpIndirectBug(t *testing.T) {
	mc, mem := prepare(0x0200)

	// JMP ($02ff)
	mem.putInstructions(0x0200, 0x6c, 0xff, 0x02)
	mem.internal[0x02ff] = 0x34
	mem.internal[0x0300] = 0x99
	mem.internal[0x0200] = 0x6c

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.CPUBug, m6502.JmpIndirectAddressingBug)

	// the high byte comes from $0200, not $0300
	test.ExpectEquality(t, mc.PC.Address(), 0x6c34)
}

func TestUndocumented(t *testing.T) {
	mc, mem := prepare(0x0200)

	// LAX $10; SAX $11; DCP $12
	mem.putInstructions(0x0200, 0xa7, 0x10, 0x87, 0x11, 0xc7, 0x12)
	mem.internal[0x10] = 0x8f
	mem.internal[0x12] = 0x90

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x8f)
	test.ExpectEquality(t, mc.X.Value(), 0x8f)
	test.ExpectEquality(t, mc.Status.Sign, true)

	step(t, mc)
	mem.assert(t, 0x11, 0x8f)

	step(t, mc)
	mem.assert(t, 0x12, 0x8f)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Carry, true)
}

func TestRun(t *testing.T) {
	mc, mem := prepare(0x0200)

	// JMP $0200
	mem.putInstructions(0x0200, 0x4c, 0x00, 0x02)

	// a budget smaller than an instruction still completes the instruction
	test.ExpectEquality(t, mc.Run(1), 3)
	test.ExpectEquality(t, mc.Run(0), 3)
	test.ExpectEquality(t, mc.Run(10), 12)
	test.ExpectEquality(t, mc.BreakHit(), false)
}

func TestBreakMask(t *testing.T) {
	mc, mem := prepare(0x0200)

	// LDA $10; LDA $11; LDA $12; JMP $0200
	mem.putInstructions(0x0200, 0xa5, 0x10, 0xa5, 0x11, 0xa5, 0x12, 0x4c, 0x00, 0x02)

	const breakpoint = m6502.Pins(1 << 40)
	mem.mark = breakpoint
	mem.markAddr = 0x0011
	mc.BreakMask = breakpoint

	// Run() returns at the end of the instruction that accessed $11
	test.ExpectEquality(t, mc.Run(1000), 6)
	test.ExpectEquality(t, mc.BreakHit(), true)
	test.ExpectEquality(t, mc.PC.Address(), 0x0204)
}

func TestResultString(t *testing.T) {
	mc, mem := prepare(0x0200)

	// LDA #$10; STA $0300,X; LDA ($10),Y
	mem.putInstructions(0x0200, 0xa9, 0x10, 0x9d, 0x00, 0x03, 0xb1, 0x10)

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.String(), "0x0200 LDA #$10 [2]")
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.String(), "0x0202 STA $0300,X [5]")
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.String(), "0x0205 LDA ($10),Y [5]")
}
