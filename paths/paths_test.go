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

package paths_test

import (
	"testing"

	"github.com/jetsetilly/chips/paths"
	"github.com/jetsetilly/chips/test"
	"github.com/spf13/afero"
)

func TestPaths(t *testing.T) {
	fs := afero.NewMemMapFs()

	pth, err := paths.ResourcePath(fs, "foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".chips/foo/bar/baz")

	ok, err := afero.DirExists(fs, ".chips/foo/bar")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	pth, err = paths.ResourcePath(fs, "foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".chips/foo/bar")

	pth, err = paths.ResourcePath(fs, "", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".chips/baz")

	pth, err = paths.ResourcePath(fs, "", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".chips")
}
