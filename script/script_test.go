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

package script_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/chips/curated"
	"github.com/jetsetilly/chips/imageloader"
	"github.com/jetsetilly/chips/logger"
	"github.com/jetsetilly/chips/machine"
	"github.com/jetsetilly/chips/script"
	"github.com/jetsetilly/chips/test"
	"github.com/spf13/afero"
)

func newMachine(t *testing.T) *machine.Machine {
	t.Helper()

	p, err := machine.NewPreferences(afero.NewMemMapFs(), "preferences")
	test.DemandSuccess(t, err)

	m, err := machine.New(p)
	test.DemandSuccess(t, err)

	// LDA #$42; STA $0200; JMP $0405
	err = m.Load(imageloader.Image{
		Origin: 0x0400,
		Data:   []uint8{0xa9, 0x42, 0x8d, 0x00, 0x02, 0x4c, 0x05, 0x04},
	})
	test.DemandSuccess(t, err)

	return m
}

func TestScript(t *testing.T) {
	m := newMachine(t)
	w := &strings.Builder{}

	err := script.Run(m, `
		local t = step()
		print(t, reg("a"))
		setreg("x", 7)
		print(reg("x"))
		print(peek(0x0400))
		poke(0x0300, 0x99)
		print(pc())
	`, w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "2\t66\n7\n169\n1026\n")
	test.ExpectEquality(t, m.Peek(0x0300), 0x99)
}

func TestScriptRun(t *testing.T) {
	m := newMachine(t)
	w := &strings.Builder{}

	err := script.Run(m, `
		breakpoint(0x0402)
		print(run(1000))
		print(peek(0x0200))
		local r = regs()
		print(r.pc, r.a)
		reset()
		print(pc(), stopped())
	`, w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "6\n66\n1029\t66\n1024\tfalse\n")
}

func TestScriptErrors(t *testing.T) {
	m := newMachine(t)
	w := &strings.Builder{}

	err := script.Run(m, `print(reg("zz"))`, w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "unknown register (zz)"))

	err = script.Run(m, `setreg("zz", 1)`, w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = script.Run(m, `peek(0x10000)`, w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	// out of range values are rejected rather than truncated
	err = script.Run(m, `poke(0x0300, 0x1ff)`, w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "value out of range (0x1ff)"))
	err = script.Run(m, `poke(0x0300, -1)`, w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
	test.ExpectEquality(t, m.Peek(0x0300), 0x00)

	err = script.Run(m, `this is not lua`, w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	// the io and os libraries are not available
	err = script.Run(m, `io.write("x")`, w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
	err = script.Run(m, `os.exit(1)`, w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	test.ExpectEquality(t, w.String(), "")
}

func TestScriptLog(t *testing.T) {
	logger.Clear()
	m := newMachine(t)

	err := script.Run(m, `log("hello")`, &strings.Builder{})
	test.ExpectSuccess(t, err)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "script: hello\n")
}

func TestRunFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	test.DemandSuccess(t, afero.WriteFile(fs, "test.lua", []byte(`print(math.max(1, 2))`), 0644))

	m := newMachine(t)
	w := &strings.Builder{}

	test.ExpectSuccess(t, script.RunFile(fs, m, "test.lua", w))
	test.ExpectEquality(t, w.String(), "2\n")

	err := script.RunFile(fs, m, "missing.lua", w)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}
