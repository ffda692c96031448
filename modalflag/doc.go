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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and then Parse()
// is called with no arguments. This allows the arguments to be parsed in
// stages, one stage for each mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		ticks := md.AddInt("ticks", 1000, "number of ticks to run for")
//		...
//	}
//
// The first sub-mode is the default mode and is selected if the first
// argument after the flags is not one of the sub-modes. Sub-mode comparisons
// are case insensitive and Mode() always returns the mode in upper case.
//
// Non-flag arguments that are not a sub-mode are available with
// RemainingArgs() and GetArg() after Parse().
//
// A -help flag is handled automatically and prints the flags and the
// sub-modes of the current mode. The Output field must be set for the help
// to be visible.
package modalflag
