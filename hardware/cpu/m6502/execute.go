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
	"github.com/jetsetilly/chips/hardware/cpu/m6502/instructions"
	"github.com/jetsetilly/chips/hardware/cpu/registers"
	"github.com/jetsetilly/chips/logger"
)

// Step moves the CPU forward one instruction and returns the number of ticks
// that were consumed. If an interrupt is pending it is serviced in place of
// an instruction.
//
// A CPU that has executed a KIL instruction does nothing but tick the clock
// once per call until it is Reset().
func (mc *CPU) Step() int {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.Killed {
		// the data bus of a jammed 6502 is floating and the address bus is
		// stuck. a phantom read is as good a representation as any
		mc.read8Bit(0xffff)
		mc.LastResult.Final = true
		return mc.LastResult.Cycles
	}

	if mc.nmiPending {
		mc.nmiPending = false
		mc.interrupt(NMIVector, "NMI")
	} else if mc.Pins&IRQ == IRQ && !mc.Status.InterruptDisable {
		mc.interrupt(IRQVector, "IRQ")
	} else {
		mc.executeInstruction()
	}

	mc.LastResult.Final = true

	return mc.LastResult.Cycles
}

// interrupt performs the seven cycle interrupt sequence. the sequence is the
// same as BRK except that the opcode fetch is discarded, the PC is not
// advanced and the status register is pushed with the B flag clear.
func (mc *CPU) interrupt(vector uint16, label string) {
	mc.LastResult.Interrupt = label

	// phantom reads of the instruction that would otherwise have been executed
	// +2 cycles
	mc.read8Bit(mc.PC.Address())
	mc.read8Bit(mc.PC.Address())

	// +3 cycles
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
	mc.push(mc.Status.Value())
	mc.Status.InterruptDisable = true

	// +2 cycles
	mc.PC.Load(mc.read16Bit(vector))
}

// executeInstruction steps CPU forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycle. Every cycle is a call to the tick
// function.
func (mc *CPU) executeInstruction() {
	// read next instruction
	// +1 cycle
	mc.read8BitPC(newOpcode)
	defn := mc.LastResult.Defn

	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address uint16

	// base is the address before indexing. used by the unstable store
	// instructions
	var base uint16

	// value is nil if addressing mode is implied and is read from the program for
	// immediate/relative mode, and from non-program memory for all other modes
	// note that for instructions which are read-modify-write, the value will
	// change during execution and be used to write back to memory
	var value uint8

	// get address to use when reading/writing from/to memory (note that in the
	// case of immediate addressing, we are actually getting the value to use
	// in the instruction, not the address).
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes. however, the next
		// instruction is read but the PC is not incremented

		if defn.Operator == instructions.Brk {
			// BRK is unusual in that it increases the PC by two bytes despite
			// being an implied addressing instruction
			// +1 cycle
			mc.read8BitPC(brk)
		} else {
			// phantom read
			// +1 cycle
			mc.read8Bit(mc.PC.Address())
		}

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		// therefore, we don't set the address and we read the value through the PC

		// +1 cycle
		mc.read8BitPC(loNibble)
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// relative addressing is only used for branch instructions, the address
		// is an offset value from the current PC position

		// most of the addressing cycles for this addressing mode are consumed
		// in the branch() function

		// +1 cycle
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			mc.read16BitPC()
			address = mc.LastResult.InstructionData
		}

		// else... for JSR, addresses are read slightly differently so we defer
		// this part of the operation to the operator switch below

	case instructions.ZeroPage:
		// +1 cycle
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command

		// +2 cycles
		mc.read16BitPC()
		indirectAddress := mc.LastResult.InstructionData

		// handle indirect addressing JMP bug
		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = JmpIndirectAddressingBug
		}

		// the high byte is always read from the same page as the low byte.
		// this is the cause of the JMP bug
		// +2 cycles
		lo := mc.read8Bit(indirectAddress)
		hi := mc.read8Bit(indirectAddress&0xff00 | uint16(uint8(indirectAddress)+1))
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		mc.read8BitPC(loNibble)
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		mc.read8Bit(uint16(indirectAddress))

		// using 8bit addition because of the 6502's indirect addressing bug -
		// we don't want indexed address to extend past the first page
		mc.acc8.Load(mc.X.Value())
		mc.acc8.Add(indirectAddress, false)

		// make a note of indirect addressig bug
		if uint16(indirectAddress)+mc.X.Address() > 0xff || mc.acc8.Value() == 0xff {
			mc.LastResult.CPUBug = IndexedIndirectAddressingBug
		}

		// +2 cycles
		address = mc.read16BitZeroPage(mc.acc8.Value())

		// never a page fault wth pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		mc.read8BitPC(loNibble)
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// +2 cycles
		base = mc.read16BitZeroPage(indirectAddress)

		mc.acc16.Load(mc.Y.Address())
		mc.acc16.Add(base & 0x00ff)
		address = mc.acc16.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && (address&0xff00 == 0x0100)
		if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
			// phantom read (always happens for Write and RMW)
			// +1 cycle
			mc.read8Bit((base & 0xff00) | (address & 0x00ff))
		}

		// fix MSB of address
		mc.acc16.Add(base & 0xff00)
		address = mc.acc16.Address()

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		// +2 cycles
		mc.read16BitPC()
		base = mc.LastResult.InstructionData

		// add index to LSB of address
		if defn.AddressingMode == instructions.AbsoluteIndexedX {
			mc.acc16.Load(mc.X.Address())
		} else {
			mc.acc16.Load(mc.Y.Address())
		}
		mc.acc16.Add(base & 0x00ff)
		address = mc.acc16.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && (address&0xff00 == 0x0100)
		if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
			// phantom read (always happens for Write and RMW)
			// +1 cycle
			mc.read8Bit((base & 0xff00) | (address & 0x00ff))
		}

		// fix MSB of address
		mc.acc16.Add(base & 0xff00)
		address = mc.acc16.Address()

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		// ZeroPageIndexedY is used exclusively for LDX, STX, LAX and SAX

		// +1 cycles
		mc.read8BitPC(loNibble)

		// phantom read from base address before index adjustment
		// +1 cycles
		mc.read8Bit(mc.LastResult.InstructionData)

		indirectAddress := uint8(mc.LastResult.InstructionData)
		mc.acc8.Load(indirectAddress)
		if defn.AddressingMode == instructions.ZeroPageIndexedX {
			mc.acc8.Add(mc.X.Value(), false)
		} else {
			mc.acc8.Add(mc.Y.Value(), false)
		}
		address = mc.acc8.Address()

		// make a note of zero page index bug
		if uint16(indirectAddress) > address {
			mc.LastResult.CPUBug = ZeroPageIndexBug
		}
	}

	// read value from memory using address found in AddressingMode switch above only when:
	// a) addressing mode is not 'implied' or 'immediate'
	//	- for immediate modes, we already have the value in lieu of an address
	//  - for implied modes, we don't need a value
	// b) instruction is 'Read' OR 'RMW'
	//  - for write modes, we only use the address to write a value we already have
	//  - for flow modes, the use of the address is very specific
	if !(defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate) {
		switch defn.Effect {
		case instructions.Read:
			// +1 cycle
			value = mc.read8Bit(address)

		case instructions.RMW:
			// +1 cycle
			value = mc.read8Bit(address)

			// phantom write of the unmodified value
			// +1 cycle
			mc.write8Bit(address, value)
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		mc.push(mc.A.Value())

	case instructions.Pla:
		// phantom read of the stack before the pointer is incremented
		// +1 cycle
		mc.read8Bit(mc.SP.Address())

		// +1 cycle
		mc.A.Load(mc.pull())
		mc.setZN(mc.A)

	case instructions.Php:
		// the B flag is always set in the value pushed by PHP
		// +1 cycle
		mc.push(mc.Status.Value() | BF)

	case instructions.Plp:
		// +1 cycle
		mc.read8Bit(mc.SP.Address())

		// +1 cycle
		mc.Status.FromValue(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Sta:
		// +1 cycle
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		// +1 cycle
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		// +1 cycle
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZN(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y)

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZN(mc.X)

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZN(mc.Y)

	case instructions.Asl:
		r := mc.operand(defn, value)
		mc.Status.Carry = r.ASL()
		mc.setZN(*r)
		value = r.Value()

	case instructions.Lsr:
		r := mc.operand(defn, value)
		mc.Status.Carry = r.LSR()
		mc.setZN(*r)
		value = r.Value()

	case instructions.Ror:
		r := mc.operand(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setZN(*r)
		value = r.Value()

	case instructions.Rol:
		r := mc.operand(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setZN(*r)
		value = r.Value()

	case instructions.Adc:
		mc.adc(value)

	case instructions.SBC:
		// SBC is an undocumented sbc. it's the same as the regular sbc
		// instruction
		fallthrough

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Cmp:
		// maybe surprisingly, CMP can be implemented with binary subtract even
		// if decimal mode is active (the meaning is the same)
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// +1 cycle
		mc.read8BitPC(loNibble)

		// the current value of the PC is now correct, even though we've only read
		// one byte of the address so far. remember, RTS increments the PC when
		// read from the stack, meaning that the PC will be correct at that point

		// internal cycle. the stack is read but the value is not used
		// +1 cycle
		mc.read8Bit(mc.SP.Address())

		// push MSB and LSB of PC onto stack
		// +2 cycles
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))

		// perform jump
		// +1 cycle
		mc.read8BitPC(hiNibble)

		// address has been built in the read8BitPC() functions.
		//
		// we would normally do this in the addressing mode switch above. however,
		// JSR uses absolute addressing and we deliberately do nothing in that
		// switch for 'sub-routine' commands
		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		// +1 cycle
		mc.read8Bit(mc.SP.Address())

		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

		// phantom read before correcting the PC
		// +1 cycle
		mc.read8Bit(mc.PC.Address())
		mc.PC.Add(1)

	case instructions.Brk:
		// push PC onto register (same effect as JSR)
		// +2 cycles
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))

		// push status register (same effect as PHP)
		// +1 cycle
		mc.push(mc.Status.Value() | BF)
		mc.Status.InterruptDisable = true

		// perform jump
		// +2 cycles
		mc.PC.Load(mc.read16Bit(IRQVector))

	case instructions.Rti:
		// +1 cycle
		mc.read8Bit(mc.SP.Address())

		// pull status register (same effect as PLP)
		// +1 cycle
		mc.Status.FromValue(mc.pull())

		// pull program counter. unlike RTS there is no need to add one to
		// return address
		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	// undocumented instructions

	case instructions.NOP:
		// does nothing (the operand, if any, has been read)

	case instructions.LAX:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(mc.A)

	case instructions.LXA:
		// unstable. using the commonly observed magic constant of 0xee
		mc.A.Load((mc.A.Value() | 0xee) & value)
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.A)

	case instructions.DCP:
		// decrease value...
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		value = mc.acc8.Value()

		// ... and compare with the A register
		mc.compare(mc.A, value)

	case instructions.ASR:
		mc.A.AND(value)

		// ... then LSR the result
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A)

	case instructions.XAA:
		// unstable. using the commonly observed magic constant of 0xee
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & value)
		mc.setZN(mc.A)

	case instructions.AXS:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(mc.X.Value())

		// axs subtract behaves like CMP as far as carry and overflow flags are
		// concerned
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.X.Load(mc.acc8.Value())
		mc.setZN(mc.X)

	case instructions.SAX:
		// +1 cycle
		mc.write8Bit(address, mc.A.Value()&mc.X.Value())

	case instructions.ARR:
		if mc.Status.DecimalMode {
			mc.arrDecimal(value)
			break
		}

		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		mc.setZN(mc.A)

		// carry is bit 6 of the result and overflow is bit 6 xor bit 5
		mc.Status.Carry = mc.A.Value()&0x40 == 0x40
		mc.Status.Overflow = (mc.A.Value()>>6)&0x01 != (mc.A.Value()>>5)&0x01

	case instructions.SLO:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		value = mc.acc8.Value()
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.RLA:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.SRE:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		value = mc.acc8.Value()
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.RRA:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.adc(value)

	case instructions.ISC:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		value = mc.acc8.Value()
		mc.sbc(value)

	case instructions.ANC:
		// immediate AND. puts bit 7 into the carry flag (in microcode terms
		// this is as though ASL had been enacted)
		mc.A.AND(value)
		mc.setZN(mc.A)
		mc.Status.Carry = mc.A.IsNegative()

	case instructions.AHX:
		// +1 cycle
		mc.unstableStore(address, base, mc.A.Value()&mc.X.Value())

	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())

		// +1 cycle
		mc.unstableStore(address, base, mc.SP.Value())

	case instructions.SHY:
		// +1 cycle
		mc.unstableStore(address, base, mc.Y.Value())

	case instructions.SHX:
		// +1 cycle
		mc.unstableStore(address, base, mc.X.Value())

	case instructions.LAS:
		v := value & mc.SP.Value()
		mc.SP.Load(v)
		mc.A.Load(v)
		mc.X.Load(v)
		mc.setZN(mc.A)

	case instructions.KIL:
		mc.Killed = true
		logger.Logf(logger.Allow, "m6502", "KIL instruction (%#04x)", mc.LastResult.Address)
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		// +1 cycle
		mc.write8Bit(address, value)
	}
}

// setZN sets the zero and sign flags according to the value of the register.
func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// operand returns the register that the shift and rotate instructions
// operate on. the accumulator for the implied forms and the internal
// accumulator, loaded with value, for the RMW forms.
func (mc *CPU) operand(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.Effect == instructions.RMW {
		mc.acc8.Load(value)
		return &mc.acc8
	}
	return &mc.A
}

func (mc *CPU) adc(value uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.setZN(mc.A)
	}
}

func (mc *CPU) sbc(value uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.setZN(mc.A)
	}
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.setZN(mc.acc8)
}

// arrDecimal is ARR with the decimal flag set. N and Z come from the rotated
// value and V from the bit 6 change. the nibbles are then corrected in the
// manner of the NMOS decimal adder, with the carry set by the high nibble
// correction.
func (mc *CPU) arrDecimal(value uint8) {
	t := mc.A.Value() & value

	a := t >> 1
	if mc.Status.Carry {
		a |= 0x80
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = a == 0
	mc.Status.Overflow = (t^a)&0x40 == 0x40

	if (t&0x0f)+(t&0x01) > 0x05 {
		a = a&0xf0 | (a+0x06)&0x0f
	}

	mc.Status.Carry = uint16(t&0xf0)+uint16(t&0x10) > 0x50
	if mc.Status.Carry {
		a += 0x60
	}

	mc.A.Load(a)
}

// unstableStore writes the value ANDed with the high byte of the base address
// plus one. if indexing crossed a page then the high byte of the address is
// replaced by the stored value.
func (mc *CPU) unstableStore(address uint16, base uint16, value uint8) {
	value &= uint8(base>>8) + 1
	if address&0xff00 != base&0xff00 {
		address = uint16(value)<<8 | address&0x00ff
	}
	mc.write8Bit(address, value)
}
