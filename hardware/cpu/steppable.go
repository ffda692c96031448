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

package cpu

// Steppable is the capability common to all CPU cores.
type Steppable interface {
	// Reset puts the CPU into its power-on state. Depending on the CPU this
	// may involve bus activity (the 6502 reads the reset vector for example)
	Reset()

	// Step executes exactly one instruction, or services one interrupt, and
	// returns the number of ticks consumed
	Step() int

	// Run executes whole instructions until at least the requested number of
	// ticks have been consumed. The actual number of ticks is returned
	Run(ticks int) int
}
