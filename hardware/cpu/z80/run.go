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

// Run executes instructions until at least the requested number of T-states
// have been consumed. Returns the number of T-states actually consumed.
//
// At least one instruction is always executed and instructions are never
// interrupted part way through.
func (cpu *CPU) Run(ticks int) int {
	var n int
	for {
		n += cpu.Step()
		if n >= ticks {
			break
		}
	}
	return n
}
