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

package prefs

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/chips/curated"
	"github.com/spf13/afero"
)

// WarningBoilerPlate is written to the top of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the emulator is running ***"

// Sentinal error patterns.
const (
	DiskError   = "prefs: %v"
	DuplicateID = "prefs: duplicate key (%s)"
)

// Disk binds preference values to keys in a file.
type Disk struct {
	fs      afero.Fs
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not read until Load() is called.
func NewDisk(fs afero.Fs, path string) *Disk {
	return &Disk{
		fs:      fs,
		path:    path,
		entries: make(map[string]pref),
	}
}

// Add a preference value to the disk. The key must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateID, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save all preference values to the file. Any existing file is replaced.
func (dsk *Disk) Save() error {
	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}

	if err := afero.WriteFile(dsk.fs, dsk.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from the file. A missing file is not an error.
// Entries in the file that have not been added to the Disk are ignored.
//
// After the file has been read, any value for a key on the top of the
// command line stack replaces the value from the file.
func (dsk *Disk) Load() error {
	ok, err := afero.Exists(dsk.fs, dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	if ok {
		f, err := dsk.fs.Open(dsk.path)
		if err != nil {
			return curated.Errorf(DiskError, err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			kv := strings.SplitN(scanner.Text(), "::", 2)
			if len(kv) != 2 {
				continue
			}
			if p, ok := dsk.entries[strings.TrimSpace(kv[0])]; ok {
				if err := p.Set(strings.TrimSpace(kv[1])); err != nil {
					return curated.Errorf(DiskError, err)
				}
			}
		}
		if err := scanner.Err(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}
