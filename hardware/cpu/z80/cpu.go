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

	"github.com/jetsetilly/chips/curated"
	"github.com/jetsetilly/chips/hardware/cpu/registers"
)

// Indexes into the Main and Shadow register arrays.
const (
	BC = iota
	DE
	HL
	FA
)

// 8 bit register numbers as they are encoded in opcodes. F is not encodable
// in an opcode (6 means the memory location pointed to by HL) but F is in
// slot 6 of the register file so Reg(F) returns the flags.
const (
	B = iota
	C
	D
	E
	H
	L
	F
	A
)

// Interrupt vectors that are not supplied by a peripheral.
const (
	NMIVector uint16 = 0x0066
	IM1Vector uint16 = 0x0038
)

// NilTick is the pattern of the panic raised by NewCPU() when the tick
// function is missing.
const NilTick = "z80: tick function is nil"

// CPU implements the Zilog Z80.
type CPU struct {
	// BC, DE, HL and FA. the FA pair holds the accumulator in the low byte
	// and the flags in the high byte
	Main   [4]registers.Pair
	Shadow [4]registers.Pair

	// internal register sometimes called MEMPTR
	WZ registers.Pair

	IX registers.Pair
	IY registers.Pair

	// interrupt vector register in the high byte and memory refresh
	// register in the low byte
	IR registers.Pair

	SP uint16
	PC uint16

	// interrupt mode (0, 1 or 2) and the interrupt enable latches
	IM   uint8
	IFF1 bool
	IFF2 bool

	// the state of the pins after the most recent tick
	Pins Pins

	tick TickFunc
	ctx  any

	// ticks consumed by the current Step()
	ticks int

	// HL, IX or IY depending on the prefix of the current instruction
	hl *registers.Pair

	// interrupts are not accepted in the instruction following EI
	eiDelay bool

	// NMI is edge triggered. nmiLevel is the state of the NMI pin after the
	// previous tick and nmiPending is set when a rising edge is seen
	nmiLevel   bool
	nmiPending bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// context value is passed to every call of the tick function.
//
// Panics if the tick function is nil.
func NewCPU(tick TickFunc, ctx any) *CPU {
	if tick == nil {
		panic(curated.Errorf(NilTick))
	}

	cpu := &CPU{
		tick: tick,
		ctx:  ctx,
	}
	cpu.hl = &cpu.Main[HL]
	cpu.Reset()

	return cpu
}

// Reset puts the CPU into its power-on state. There is no bus activity.
func (cpu *CPU) Reset() {
	cpu.PC = 0
	cpu.IR.Load(0)
	cpu.IM = 0
	cpu.IFF1 = false
	cpu.IFF2 = false
	cpu.SP = 0xffff
	cpu.SetAF(0xffff)
	cpu.Pins = Pins{}
	cpu.hl = &cpu.Main[HL]
	cpu.eiDelay = false
	cpu.nmiLevel = false
	cpu.nmiPending = false
}

func (cpu *CPU) String() string {
	return fmt.Sprintf("PC=%#04x SP=%#04x AF=%#04x BC=%s DE=%s HL=%s IX=%s IY=%s IR=%s WZ=%s IM=%d IFF1=%t IFF2=%t",
		cpu.PC, cpu.SP, cpu.AF(), cpu.Main[BC], cpu.Main[DE], cpu.Main[HL],
		cpu.IX, cpu.IY, cpu.IR, cpu.WZ, cpu.IM, cpu.IFF1, cpu.IFF2)
}

// On sets the specified control pins.
func (cpu *CPU) On(c Ctrl) {
	cpu.Pins.Ctrl |= c
}

// Off clears the specified control pins.
func (cpu *CPU) Off(c Ctrl) {
	cpu.Pins.Ctrl &^= c
}

// Any returns true if any of the specified control pins are set.
func (cpu *CPU) Any(c Ctrl) bool {
	return cpu.Pins.Ctrl&c != 0
}

// All returns true if all of the specified control pins are set.
func (cpu *CPU) All(c Ctrl) bool {
	return cpu.Pins.Ctrl&c == c
}

// Halted returns true if the CPU has executed a HALT instruction and is
// waiting for an interrupt.
func (cpu *CPU) Halted() bool {
	return cpu.Any(HALT)
}

// Reg returns the 8 bit register r. The register number is the same as the
// encoding used in the opcodes (B, C, D, E, H, L and A) or F.
//
// Register r is stored in slot r^1 of the register file. Slots 0 and 1 are
// the low and high bytes of BC, slots 2 and 3 of DE, and so on.
func (cpu *CPU) Reg(r int) uint8 {
	s := r ^ 1
	return cpu.Main[(s>>1)&3].Byte(s)
}

// SetReg changes the 8 bit register r.
func (cpu *CPU) SetReg(r int, v uint8) {
	s := r ^ 1
	cpu.Main[(s>>1)&3].SetByte(s, v)
}

// AF returns the accumulator and flags as a 16 bit value, accumulator in the
// high byte.
func (cpu *CPU) AF() uint16 {
	return uint16(cpu.Main[FA].Lo())<<8 | uint16(cpu.Main[FA].Hi())
}

// SetAF is the reverse of AF().
func (cpu *CPU) SetAF(v uint16) {
	cpu.Main[FA].SetLo(uint8(v >> 8))
	cpu.Main[FA].SetHi(uint8(v))
}

func (cpu *CPU) a() uint8 {
	return cpu.Main[FA].Lo()
}

func (cpu *CPU) setA(v uint8) {
	cpu.Main[FA].SetLo(v)
}

func (cpu *CPU) f() uint8 {
	return cpu.Main[FA].Hi()
}

func (cpu *CPU) setF(v uint8) {
	cpu.Main[FA].SetHi(v)
}

// indexed returns true if the current instruction has a DD or FD prefix.
func (cpu *CPU) indexed() bool {
	return cpu.hl != &cpu.Main[HL]
}

// r8 returns register r for the current instruction. H and L are replaced by
// the high and low bytes of IX or IY if the instruction is indexed.
func (cpu *CPU) r8(r uint8) uint8 {
	switch r {
	case H:
		return cpu.hl.Hi()
	case L:
		return cpu.hl.Lo()
	}
	return cpu.Reg(int(r))
}

func (cpu *CPU) setR8(r uint8, v uint8) {
	switch r {
	case H:
		cpu.hl.SetHi(v)
	case L:
		cpu.hl.SetLo(v)
	default:
		cpu.SetReg(int(r), v)
	}
}

// rp returns the register pair selected by p in the 16 bit load and
// arithmetic instructions (BC, DE, HL and SP).
func (cpu *CPU) rp(p uint8) uint16 {
	switch p {
	case 0:
		return cpu.Main[BC].Word()
	case 1:
		return cpu.Main[DE].Word()
	case 2:
		return cpu.hl.Word()
	}
	return cpu.SP
}

func (cpu *CPU) setRP(p uint8, v uint16) {
	switch p {
	case 0:
		cpu.Main[BC].Load(v)
	case 1:
		cpu.Main[DE].Load(v)
	case 2:
		cpu.hl.Load(v)
	default:
		cpu.SP = v
	}
}

// rp2 is the same as rp except that the fourth pair is AF. used by PUSH and
// POP.
func (cpu *CPU) rp2(p uint8) uint16 {
	if p == 3 {
		return cpu.AF()
	}
	return cpu.rp(p)
}

func (cpu *CPU) setRP2(p uint8, v uint16) {
	if p == 3 {
		cpu.SetAF(v)
		return
	}
	cpu.setRP(p, v)
}

// cond evaluates the condition code cc used by the conditional jump, call and
// return instructions.
func (cpu *CPU) cond(cc uint8) bool {
	f := cpu.f()
	switch cc {
	case 0:
		return f&ZF == 0
	case 1:
		return f&ZF != 0
	case 2:
		return f&CF == 0
	case 3:
		return f&CF != 0
	case 4:
		return f&PF == 0
	case 5:
		return f&PF != 0
	case 6:
		return f&SF == 0
	}
	return f&SF != 0
}
