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

// Package script runs Lua scripts against a machine. Scripts can inspect and
// change memory and registers and drive the CPU.
//
// The following functions are available to a script:
//
//	peek(addr)            value in memory at addr
//	poke(addr, value)     change memory without ticking the CPU
//	reg(name)             value of the named register
//	setreg(name, value)   change the named register
//	regs()                table of all registers
//	pc()                  address of the next instruction
//	step()                execute one instruction and return the ticks used
//	run(ticks)            run for at least ticks and return the ticks used
//	reset()               reset the CPU
//	breakpoint(addr)      stop run() after the instruction at addr
//	stopped()             true if the CPU can make no more progress
//	log(msg)              add an entry to the central log
//
// The Lua base, table, string and math libraries are loaded. The print()
// function writes to the io.Writer given to Run().
package script
