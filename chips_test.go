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

package main

import (
	"testing"

	"github.com/jetsetilly/chips/machine"
	"github.com/jetsetilly/chips/modalflag"
	"github.com/jetsetilly/chips/prefs"
	"github.com/jetsetilly/chips/test"
	"github.com/spf13/afero"
)

// prepares a Modes instance in the same way as main() and returns the
// resulting mode.
func modes(t *testing.T, w *test.CompareWriter, args ...string) *modalflag.Modes {
	t.Helper()

	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return md
}

func TestCommandLinePrefs(t *testing.T) {
	w := &test.CompareWriter{}
	md := modes(t, w, "RUN", "-load", "0x0100", "-prefs", "machine.echo::true", "-cpu", "z80", "prog.bin")
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	f := addMachineFlags(md)
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	s := f.commandLinePrefs(md)
	test.ExpectEquality(t, s, "machine.echo::true; machine.cpu::z80; machine.origin::0x0100")

	prefs.PushCommandLineStack(s)
	defer prefs.PopCommandLineStack()

	mp, err := machine.NewPreferences(afero.NewMemMapFs(), "preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mp.CPU.String(), "z80")
	test.ExpectEquality(t, mp.Origin.Get().(int), 0x0100)
	test.ExpectEquality(t, mp.Echo.Get().(bool), true)
}

func TestRunMode(t *testing.T) {
	fs := afero.NewMemMapFs()

	// LDA #$42; STA $0200; JMP $0405
	err := afero.WriteFile(fs, "prog.bin", []byte{0xa9, 0x42, 0x8d, 0x00, 0x02, 0x4c, 0x05, 0x04}, 0644)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	md := modes(t, w, "RUN", "-ticks", "9", "-trace", "-digest", "-saveprefs", "prog.bin")
	err = run(md, fs)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, w.Contains("9 ticks\n"))
	test.ExpectSuccess(t, w.Contains("pc=0405 a=42"))
	test.ExpectSuccess(t, w.Contains("digest: "))

	// the two reset vector reads are also recorded
	test.ExpectSuccess(t, w.Contains("bus trace (11 transactions) written to trace_prog_"))
	matches, err := afero.Glob(fs, "trace_prog_*.json")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(matches), 1)

	// the ticks preference came from the command line and has been saved
	data, err := afero.ReadFile(fs, ".chips/preferences")
	test.DemandSuccess(t, err)
	cw := &test.CompareWriter{}
	cw.Write(data)
	test.ExpectSuccess(t, cw.Contains("machine.ticks :: 9\n"))
	test.ExpectSuccess(t, cw.Contains("machine.trace :: true\n"))
}

func TestRunModeScript(t *testing.T) {
	fs := afero.NewMemMapFs()

	// LD A,0x42; HALT
	err := afero.WriteFile(fs, "prog.bin", []byte{0x3e, 0x42, 0x76}, 0644)
	test.DemandSuccess(t, err)
	err = afero.WriteFile(fs, "test.lua", []byte("step()\nprint(reg(\"a\"))\nprint(pc())\n"), 0644)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	md := modes(t, w, "RUN", "-cpu", "z80", "-load", "0x8000", "-script", "test.lua", "prog.bin")
	err = run(md, fs)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, w.Contains("66\n32770\n"))
}

func TestRunModeArguments(t *testing.T) {
	w := &test.CompareWriter{}
	md := modes(t, w, "RUN")
	test.ExpectFailure(t, run(md, afero.NewMemMapFs()))

	md = modes(t, w, "RUN", "a.bin", "b.bin")
	test.ExpectFailure(t, run(md, afero.NewMemMapFs()))

	md = modes(t, w, "RUN", "missing.bin")
	test.ExpectFailure(t, run(md, afero.NewMemMapFs()))
}

func TestVersionMode(t *testing.T) {
	w := &test.CompareWriter{}
	md := modes(t, w, "VERSION")
	test.ExpectEquality(t, md.Mode(), "VERSION")
	test.ExpectSuccess(t, showVersion(md))
	test.ExpectSuccess(t, w.Contains("Chips "))
}
