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

package performance

import (
	"fmt"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/chips/curated"
	"github.com/spf13/afero"
)

// Sentinal error patterns.
const (
	UnknownProfile = "performance: unknown profile type (%s)"
	ProfileError   = "performance: %v"
)

// Profile specifies which profiling files should be produced by
// RunProfiler(). Profile types can be combined.
type Profile int

// List of valid Profile values.
const (
	ProfileCPU Profile = 1 << iota
	ProfileMem
	ProfileTrace

	ProfileNone Profile = 0
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	s := []string{}
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// ParseProfile parses a comma separated list of profile types. Valid types
// are "cpu", "mem", "trace", "all" and "none". The empty string is the same
// as "none".
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, t := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileCPU | ProfileMem | ProfileTrace
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, t)
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function and produces the requested profile
// files. Each file is named with the filenameHeader followed by the profile
// type. For example:
//
//	performance_cpu.profile
//
// The memory profile is written after the run function has returned.
func RunProfiler(fs afero.Fs, profile Profile, filenameHeader string, run func() error) (rerr error) {
	create := func(t string) (afero.File, error) {
		f, err := fs.Create(fmt.Sprintf("%s_%s.profile", filenameHeader, t))
		if err != nil {
			return nil, curated.Errorf(ProfileError, err)
		}
		return f, nil
	}

	closeFile := func(f afero.File) {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(ProfileError, err)
		}
	}

	if profile&ProfileCPU == ProfileCPU {
		f, err := create("cpu")
		if err != nil {
			return err
		}
		defer closeFile(f)

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := create("trace")
		if err != nil {
			return err
		}
		defer closeFile(f)

		if err := trace.Start(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := create("mem")
		if err != nil {
			return err
		}
		defer closeFile(f)

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	return nil
}
