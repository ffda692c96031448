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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour numbers.
var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    8,
}

// Pens is the table of colors to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colors to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{}

// NormalPen is the CSI sequence for regular text.
var NormalPen = "\033[0m"

// ClearLine is the CSI sequence to clear the current line and return the
// cursor to the start of the line.
const ClearLine = "\033[2K\r"

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "", true, false)
		DimPens[c], _ = ColorBuild(c, "", "", false, false)
	}
	for _, a := range []string{"bold", "underline", "inverse", "strike"} {
		PenStyles[a], _ = ColorBuild("", "", a, false, false)
	}
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute. With no pen, paper or attribute
// the sequence resets all styles.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var codes []string

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		codes = append(codes, fmt.Sprintf("%d%d", t, c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		codes = append(codes, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		codes = append(codes, fmt.Sprintf("%d", a))
	}

	if len(codes) == 0 {
		codes = append(codes, "0")
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
