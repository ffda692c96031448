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

package machine_test

import (
	"testing"

	"github.com/jetsetilly/chips/machine"
	"github.com/jetsetilly/chips/prefs"
	"github.com/jetsetilly/chips/test"
	"github.com/spf13/afero"
)

func TestPreferences(t *testing.T) {
	fs := afero.NewMemMapFs()

	p, err := machine.NewPreferences(fs, "preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.CPU.String(), "6502")
	test.ExpectEquality(t, p.Origin.Get().(int), 0x0400)

	test.ExpectSuccess(t, p.CPU.Set("z80"))
	test.ExpectSuccess(t, p.Save())

	// a new Preferences instance reads the saved value
	p, err = machine.NewPreferences(fs, "preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.CPU.String(), "z80")

	// the command line takes priority
	prefs.PushCommandLineStack("machine.origin::0x8000")
	p, err = machine.NewPreferences(fs, "preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Origin.Get().(int), 0x8000)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	p.SetDefaults()
	test.ExpectEquality(t, p.CPU.String(), "6502")
}
