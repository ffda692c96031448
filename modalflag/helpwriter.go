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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage output of the flag package so that it can be
// amended with mode information before being printed.
type helpWriter struct {
	b strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.b.Write(p)
}

func (hw *helpWriter) Clear() {
	hw.b.Reset()
}

// Help writes the collected usage to output. The first line of the usage
// produced by the flag package is amended with the mode path.
func (hw *helpWriter) Help(output io.Writer, path string, subModes []string, additionalHelp string) {
	usage := hw.b.String()
	header, flags, _ := strings.Cut(usage, "\n")

	if strings.TrimSpace(flags) == "" && len(subModes) == 0 {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, header)
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", header, path)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if strings.TrimSpace(flags) != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
