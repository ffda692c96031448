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

// Package instructions defines the 6502 instruction set. Each of the 256
// opcodes has a Definition describing the operator, the addressing mode, the
// number of bytes and the nominal number of cycles.
//
// The Cycles field is documentary. The CPU does not count cycles from the
// table, it counts the bus cycles it actually performs. The table is used by
// the CPU's Result.IsValid() function and by tests to make sure the two agree.
package instructions
