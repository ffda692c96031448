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

// Package hardware is the base package for the emulated chips. The cpu
// sub-packages contain the 6502 and Z80 cores and the register types they
// share. The memory sub-package contains a flat address space that can drive
// either core.
//
// Nothing in the cpu packages knows about memory. Each core is driven by a
// tick function supplied by the host, which sees the state of the pins at
// every clock cycle and services them.
package hardware
