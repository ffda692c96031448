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

// Package memory implements a flat 64KiB address space with a 256 byte I/O
// port space, suitable as the host side of either CPU core. Tick6502() and
// TickZ80() service the pins of the respective CPU every tick.
//
// The IRQ and NMI fields of Flat are driven onto the interrupt pins at the
// end of every tick. For the Z80 the Vector field is placed on the data bus
// during an interrupt acknowledge cycle.
package memory
