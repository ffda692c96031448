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
	"strings"

	"github.com/jetsetilly/chips/curated"
	"github.com/jetsetilly/chips/hardware/cpu/m6502/instructions"
)

// Bug is a description of a known 6502 quirk triggered by an instruction.
type Bug string

// List of known bugs.
const (
	NoBug                        Bug = ""
	JmpIndirectAddressingBug     Bug = "indirect addressing bug"
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"
	ZeroPageIndexBug             Bug = "zero page index bug"
)

// Result records what happened during the most recent call to Step(). It is
// also accurate during the tick callback, for the instruction currently in
// progress.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. will be nil if the step was an
	// interrupt or a jammed cycle
	Defn *instructions.Definition

	// number of bytes read from the program during decode
	ByteCount int

	// the operand of the instruction
	InstructionData uint16

	// number of cycles (ticks) consumed so far
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether a buggy (CPU) code path was triggered
	CPUBug Bug

	// name of the interrupt serviced in place of an instruction
	Interrupt string

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all fields of the result.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a one line disassembly of the result.
func (r Result) String() string {
	if r.Interrupt != "" {
		return fmt.Sprintf("%#04x %s [%d]", r.Address, r.Interrupt, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ??? [%d]", r.Address, r.Cycles)
	}

	var data string
	switch r.Defn.Bytes {
	case 2:
		data = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	case instructions.Indirect:
		data = fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		data = fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		data = fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		data = fmt.Sprintf("%s,Y", data)
	}

	// BRK reads a padding byte which is not part of the operand
	if r.Defn.Operator == instructions.Brk {
		data = ""
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x %s", r.Address, r.Defn.Operator))
	if data != "" {
		s.WriteString(" ")
		s.WriteString(data)
	}
	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("m6502: execution not finalised")
	}

	// interrupts and jammed cycles have no definition to check against
	if r.Defn == nil {
		return nil
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && !r.Defn.IsBranch() && r.PageFault {
		return curated.Errorf("m6502: unexpected page fault")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("m6502: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles
	if r.BranchSuccess {
		expected++
	}
	if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("m6502: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
