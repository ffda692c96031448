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

package paths

import (
	"path"

	"github.com/spf13/afero"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths.
//
// The subPath argument should not include a filename. The subPath directory
// will be created if it does not exist.
func ResourcePath(fs afero.Fs, subPath string, file string) (string, error) {
	base, err := getBasePath(subPath)
	if err != nil {
		return "", err
	}

	if err := fs.MkdirAll(base, 0700); err != nil {
		return "", err
	}

	return path.Join(base, file), nil
}
