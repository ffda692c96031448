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

// Package paths contains functions to prepare paths to chips resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	p, err := paths.ResourcePath(afero.NewOsFs(), "", "preferences")
//
// In development builds the base path is ".chips" in the current directory.
// Release builds (built with the release tag) use the user's config directory
// as reported by os.UserConfigDir(). For example, on a modern Linux system:
//
//	/home/user/.config/chips/preferences
//
// The directory is created if it does not exist.
package paths
