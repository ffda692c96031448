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

package machine

import (
	"github.com/jetsetilly/chips/prefs"
	"github.com/spf13/afero"
)

// Preferences for a Machine. Values can be loaded from and saved to a file
// and overridden from the command line.
type Preferences struct {
	dsk *prefs.Disk

	// the CPU family. either "6502" or "z80"
	CPU prefs.String

	// the address at which images are loaded. also the entry point for the
	// Z80 and the reset vector for the 6502 unless the image sets its own
	// reset vector
	Origin prefs.Int

	// number of ticks for one call to Run() from the command line
	Ticks prefs.Int

	// record bus transactions. a capacity of zero means no limit
	Trace         prefs.Bool
	TraceCapacity prefs.Int

	// produce a digest of all bus activity
	Digest prefs.Bool

	// echo log entries to the terminal as they are created
	Echo prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the file at path. A missing
// file is not an error.
func NewPreferences(fs afero.Fs, path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.dsk = prefs.NewDisk(fs, path)

	var err error

	err = p.dsk.Add("machine.cpu", &p.CPU)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.origin", &p.Origin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.ticks", &p.Ticks)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.tracecapacity", &p.TraceCapacity)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.digest", &p.Digest)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.echo", &p.Echo)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.CPU.Set("6502")
	_ = p.Origin.Set(0x0400)
	_ = p.Ticks.Set(1000000)
	_ = p.Trace.Set(false)
	_ = p.TraceCapacity.Set(4096)
	_ = p.Digest.Set(false)
	_ = p.Echo.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
