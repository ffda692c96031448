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

// Package curated provides errors made from a formatting pattern. The pattern
// identifies the error so that callers can ask what went wrong without
// comparing the formatted message.
//
// Sentinal patterns are declared as constants by the package that returns
// them:
//
//	const NoImage = "imageloader: no image data in %s"
//
//	err := curated.Errorf(NoImage, filename)
//
// Is() checks the pattern of the outermost error. Has() checks every error in
// the chain, where the chain is formed by using a curated error as a value
// in another curated error:
//
//	err := curated.Errorf("machine: %v", curated.Errorf(NoImage, "prog.bin"))
//
//	curated.Is(err, NoImage)  // false
//	curated.Has(err, NoImage) // true
//
// IsAny() returns true for any error created by Errorf(). Errors from outside
// the program are never curated, so IsAny() separates the expected from the
// unexpected.
//
// The Error() function removes adjacent duplicate parts from the message,
// where parts are separated by ": ". Wrapping an error in the same prefix at
// several levels of a call stack therefore produces a readable message:
//
//	machine: machine: not a valid image
//
// is printed as:
//
//	machine: not a valid image
//
// Curated errors implement Unwrap() so that errors.Is() and errors.As() from
// the standard library can see through to any errors used as values.
package curated
