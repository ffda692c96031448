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

// Package machine joins a CPU to flat memory. It is the host used by the
// command line tool and by the script package.
//
// The CPU family is chosen by the preferences given to New(). Both families
// are driven through the same methods. Register names are the conventional
// names for the family in lower case: "pc", "a", "x", "y", "sp" and "p" for
// the 6502 and "af", "bc", "de", "hl", "af'", "bc'", "de'", "hl'", "ix", "iy",
// "sp", "pc", "wz", "i", "r", "im" and the 8 bit registers "a" to "l" for the
// Z80.
package machine
