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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/chips/curated"
	"github.com/jetsetilly/chips/logger"
	"github.com/jetsetilly/chips/machine"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError     = "script: %v"
	UnknownRegister = "script: unknown register (%s)"
)

type host struct {
	m   *machine.Machine
	out io.Writer
}

// Run executes the Lua source against the machine. Output from print() is
// written to out.
func Run(m *machine.Machine, src string, out io.Writer) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			return curated.Errorf(ScriptError, err)
		}
	}

	h := &host{m: m, out: out}
	for name, fn := range map[string]lua.LGFunction{
		"print":      h.print,
		"peek":       h.peek,
		"poke":       h.poke,
		"reg":        h.reg,
		"setreg":     h.setreg,
		"regs":       h.regs,
		"pc":         h.pc,
		"step":       h.step,
		"run":        h.run,
		"reset":      h.reset,
		"breakpoint": h.breakpoint,
		"stopped":    h.stopped,
		"log":        h.log,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	if err := L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

// RunFile reads a Lua script from the filesystem and runs it.
func RunFile(fs afero.Fs, m *machine.Machine, filename string, out io.Writer) error {
	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return Run(m, string(src), out)
}

func (h *host) print(L *lua.LState) int {
	s := strings.Builder{}
	for i := 1; i <= L.GetTop(); i++ {
		if i > 1 {
			s.WriteString("\t")
		}
		s.WriteString(L.ToStringMeta(L.Get(i)).String())
	}
	s.WriteString("\n")
	io.WriteString(h.out, s.String())
	return 0
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%#x)", a))
	}
	return uint16(a)
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range (%#x)", v))
	}
	return uint8(v)
}

func (h *host) peek(L *lua.LState) int {
	L.Push(lua.LNumber(h.m.Peek(checkAddress(L, 1))))
	return 1
}

func (h *host) poke(L *lua.LState) int {
	h.m.Poke(checkAddress(L, 1), checkByte(L, 2))
	return 0
}

func (h *host) reg(L *lua.LState) int {
	name := L.CheckString(1)
	v, err := h.m.Register(name)
	if err != nil {
		L.RaiseError("%v", curated.Errorf(UnknownRegister, name))
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (h *host) setreg(L *lua.LState) int {
	name := L.CheckString(1)
	if err := h.m.SetRegister(name, L.CheckInt(2)); err != nil {
		L.RaiseError("%v", curated.Errorf(UnknownRegister, name))
	}
	return 0
}

func (h *host) regs(L *lua.LState) int {
	t := L.NewTable()
	for k, v := range h.m.Registers() {
		t.RawSetString(k, lua.LNumber(v))
	}
	L.Push(t)
	return 1
}

func (h *host) pc(L *lua.LState) int {
	L.Push(lua.LNumber(h.m.PC()))
	return 1
}

func (h *host) step(L *lua.LState) int {
	L.Push(lua.LNumber(h.m.Step()))
	return 1
}

func (h *host) run(L *lua.LState) int {
	L.Push(lua.LNumber(h.m.Run(L.CheckInt(1))))
	return 1
}

func (h *host) reset(L *lua.LState) int {
	h.m.Reset()
	return 0
}

func (h *host) breakpoint(L *lua.LState) int {
	h.m.SetBreakpoint(checkAddress(L, 1))
	return 0
}

func (h *host) stopped(L *lua.LState) int {
	L.Push(lua.LBool(h.m.Stopped()))
	return 1
}

func (h *host) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
