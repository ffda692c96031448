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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/chips/easyterm/ansi"
)

// Colorizer applies basic coloring rules to echoed log entries. The tag is
// printed in a bright pen and any repeat count is dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. Input that does not look like a
// log entry is written unchanged.
func (c Colorizer) Write(p []byte) (int, error) {
	s := strings.TrimSuffix(string(p), "\n")

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	var repeat string
	if i := strings.LastIndex(detail, " (repeat x"); i >= 0 && strings.HasSuffix(detail, ")") {
		repeat = detail[i:]
		detail = detail[:i]
	}

	b := strings.Builder{}
	b.WriteString(ansi.Pens["cyan"])
	b.WriteString(tag)
	b.WriteString(ansi.NormalPen)
	b.WriteString(": ")
	b.WriteString(detail)
	if repeat != "" {
		b.WriteString(ansi.DimPens["white"])
		b.WriteString(repeat)
		b.WriteString(ansi.NormalPen)
	}
	b.WriteString("\n")

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}
