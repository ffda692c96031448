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

// Package functional runs the 6502 functional tests created/maintained by
// Klaus Dormann.
//
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The tests were assembled with the as65 assembler which is available for
// download at the above URL. The assembler was executed in the following
// manner:
//
//	as65 -pmnu 6502_functional_test.a65
//
// with the vectors test disabled:
//
//	line 88: ROM_vectors = 0
//
// The assembled binary is not included in the repository. Place it in the
// testdata directory as 6502_functional_test.bin. The test is skipped if the
// file is missing.
package functional
