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

import (
	"fmt"

	"github.com/jetsetilly/chips/curated"
	"github.com/jetsetilly/chips/hardware/cpu/m6502/instructions"
	"github.com/jetsetilly/chips/hardware/cpu/registers"
)

// Status register flags as they appear in the value pushed to the stack.
const (
	CF uint8 = 1 << 0 // carry
	ZF uint8 = 1 << 1 // zero
	IF uint8 = 1 << 2 // IRQ disable
	DF uint8 = 1 << 3 // decimal mode
	BF uint8 = 1 << 4 // BRK command
	XF uint8 = 1 << 5 // unused
	VF uint8 = 1 << 6 // overflow
	NF uint8 = 1 << 7 // negative
)

// Addresses of the interrupt vectors.
const (
	NMIVector   uint16 = 0xfffa
	ResetVector uint16 = 0xfffc
	IRQVector   uint16 = 0xfffe
)

// NilTick is the pattern of the panic raised by NewCPU() when the tick
// function is missing.
const NilTick = "m6502: tick function is nil"

// CPU implements the NMOS 6502. Register logic is implemented by the types in
// the registers package.
//
// The CPU has no memory of its own. Every memory access is a call to the tick
// function supplied to NewCPU().
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// the state of the pins as returned by the most recent tick
	Pins Pins

	// if any tick returns pins that have one of these bits set then Run()
	// will return at the end of the current instruction
	BreakMask Pins

	// last result. accurate during a tick for the instruction in progress
	LastResult Result

	// the cpu has encounted a KIL instruction. requires a Reset()
	Killed bool

	// some operations only need an accumulator
	acc8  registers.Register
	acc16 registers.ProgramCounter

	tick         TickFunc
	instructions []*instructions.Definition

	// NMI is edge triggered. nmiLevel is the state of the NMI line at the
	// previous tick and nmiPending is set when a rising edge is seen
	nmiLevel   bool
	nmiPending bool

	// set when a tick has returned pins matching the BreakMask
	breakHit bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Registers are zero except for the status register and stack pointer, which
// have their power-on values. The PC is not loaded, call Reset() to load it
// from the reset vector.
//
// Panics if the tick function is nil.
func NewCPU(tick TickFunc) *CPU {
	if tick == nil {
		panic(curated.Errorf(NilTick))
	}

	mc := &CPU{
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0xfd),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		acc16:        registers.NewProgramCounter(0),
		tick:         tick,
		instructions: instructions.GetDefinitions(),
		Pins:         RW,
	}
	mc.Status.FromValue(IF | XF)

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset puts the status register and the stack pointer into their power-on
// state, releases all pins and then loads the PC from the reset vector. The
// reset vector is read with two ticks of the clock.
//
// The A, X and Y registers are not changed.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.LastResult.Address = ResetVector
	mc.Killed = false
	mc.nmiLevel = false
	mc.nmiPending = false
	mc.breakHit = false

	mc.Status.FromValue(IF | XF)
	mc.SP.Load(0xfd)
	mc.Pins = RW

	lo := mc.read8Bit(ResetVector)
	hi := mc.read8Bit(ResetVector + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	mc.LastResult.Interrupt = "RESET"
	mc.LastResult.Final = true
}

// BreakHit returns true if a tick during the most recent Run() returned pins
// matching the BreakMask.
func (mc *CPU) BreakHit() bool {
	return mc.breakHit
}

// cycle drives the pins for one clock tick and records the pins returned by
// the host. the address, data, RW and SYNC pins are replaced. all other pins
// keep the level they had at the end of the previous tick.
//
// side-effects:
//   - increases LastResult.Cycles
//   - notes NMI edges and BreakMask matches
func (mc *CPU) cycle(ctrl Pins, address uint16, data uint8) uint8 {
	mc.Pins = (mc.Pins &^ (AddrMask | DataMask | RW | SYNC)) | MakePins(ctrl, address, data)
	mc.Pins = mc.tick(mc.Pins)
	mc.LastResult.Cycles++

	nmi := mc.Pins&NMI == NMI
	if nmi && !mc.nmiLevel {
		mc.nmiPending = true
	}
	mc.nmiLevel = nmi

	if mc.Pins&mc.BreakMask != 0 {
		mc.breakHit = true
	}

	return mc.Pins.Data()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - ticks once
func (mc *CPU) read8Bit(address uint16) uint8 {
	return mc.cycle(RW, address, 0)
}

// write8Bit writes 8 bits to the specified address
//
// side-effects:
//   - ticks once
func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.cycle(0, address, value)
}

// read16Bit returns 16bit value from the specified address
//
// side-effects:
//   - ticks after each 8bit read
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.read8Bit(address)
	hi := mc.read8Bit(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16BitZeroPage returns 16bit value from the specified zero page address.
// the high byte wraps around to the start of the zero page.
//
// side-effects:
//   - ticks after each 8bit read
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.read8Bit(uint16(address))
	hi := mc.read8Bit(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// push a value onto the stack
//
// side-effects:
//   - ticks once
func (mc *CPU) push(value uint8) {
	mc.write8Bit(mc.SP.Push(), value)
}

// pull a value from the stack
//
// side-effects:
//   - ticks once
func (mc *CPU) pull() uint8 {
	return mc.read8Bit(mc.SP.Pull())
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - ticks once. the SYNC pin is set if effect is newOpcode
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) {
	var v uint8
	if effect == newOpcode {
		v = mc.cycle(RW|SYNC, mc.PC.Address(), 0)
	} else {
		v = mc.read8Bit(mc.PC.Address())
	}

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case brk:
		// the byte following BRK is read and skipped but it is still part of
		// the instruction (BRK is defined as a two byte instruction)

	case newOpcode:
		// look up definition
		mc.LastResult.Defn = mc.instructions[v]

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - ticks after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field
func (mc *CPU) read16BitPC() {
	mc.read8BitPC(loNibble)
	mc.read8BitPC(hiNibble)
}

func (mc *CPU) branch(flag bool, address uint16) {
	// in the case of branchng (relative addressing) we've read an 8bit value
	// rather than a 16bit value to use as the "address". we need to make sure
	// the sign bit of the 8bit value has been propogated into the
	// most-significant bits of the 16bit value.
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	// note branching result
	mc.LastResult.BranchSuccess = flag

	if !flag {
		return
	}

	// note current PC for reference
	oldPC := mc.PC.Address()

	// phantom read
	// +1 cycle
	mc.read8Bit(mc.PC.Address())

	// add LSB to PC
	//  o Add full (sign extended) 16bit address to PC
	//  o note whether a page fault has occurred
	//  o restore the MSB of the PC using the MSB of the old PC value
	mc.PC.Add(address)
	mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
	mc.PC.Load(oldPC&0xff00 | mc.PC.Address()&0x00ff)

	// check to see whether branching has crossed a page
	if mc.LastResult.PageFault {
		// phantom read
		// +1 cycle
		mc.read8Bit(mc.PC.Address())

		// correct program counter
		if address&0xff00 == 0xff00 {
			mc.PC.Add(0xff00)
		} else {
			mc.PC.Add(0x0100)
		}
	}
}
