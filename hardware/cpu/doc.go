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

// Package cpu is the home of the CPU cores. Each core lives in its own
// sub-package and has nothing in common with the other cores except the
// Steppable interface.
//
//	m6502: the NMOS 6502. pins are a single uint64 and the tick function is a
//	pure transform of the pins.
//
//	z80: the Zilog Z80. pins are a small struct and the tick function mutates
//	them in place.
//
// The cores own no memory. Every bus cycle of a core is a call to the tick
// function supplied by the host, and the host is free to do whatever it
// likes during that call: respond to a memory request, step another chip,
// count wait states, etc.
//
// The registers package contains the register types shared by the cores.
package cpu
