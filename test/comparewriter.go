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

package test

import "strings"

// CompareWriter captures everything written to it so that it can be compared
// with expected output.
type CompareWriter struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.b.Write(p)
}

// Clear the captured output.
func (cw *CompareWriter) Clear() {
	cw.b.Reset()
}

// Compare returns true if the captured output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.b.String() == s
}

// Contains returns true if s occurs anywhere in the captured output.
func (cw *CompareWriter) Contains(s string) bool {
	return strings.Contains(cw.b.String(), s)
}

func (cw *CompareWriter) String() string {
	return cw.b.String()
}
