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

// Package registers implements the register types used by the CPU cores.
//
// The 6502 registers (Register, ProgramCounter, StackPointer and
// StatusRegister) carry the arithmetic and bitwise operations the 6502
// operators need. The registers do not update the status register themselves;
// the CPU implementation does that according to the instruction being
// executed. For example, the following function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
//
// Pair is the Z80 register pair. It is a single 16 bit cell that can be
// accessed as a word or as two independent bytes. Writing one half is always
// visible in the word value and vice versa because there is only one cell.
package registers
