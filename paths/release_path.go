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

//go:build release

package paths

import (
	"os"
	"path"
)

const configDir = "chips"

// the release version of getBasePath uses the configDir in the user's
// configuration directory, which is dependent on the host OS (see
// os.UserConfigDir() documentation for details)
func getBasePath(subPath string) (string, error) {
	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return path.Join(cnf, configDir, subPath), nil
}
