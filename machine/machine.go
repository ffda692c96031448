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
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/chips/bustrace"
	"github.com/jetsetilly/chips/curated"
	"github.com/jetsetilly/chips/digest"
	"github.com/jetsetilly/chips/hardware/cpu"
	"github.com/jetsetilly/chips/hardware/cpu/m6502"
	"github.com/jetsetilly/chips/hardware/cpu/z80"
	"github.com/jetsetilly/chips/hardware/memory"
	"github.com/jetsetilly/chips/imageloader"
	"github.com/jetsetilly/chips/logger"
)

// Sentinal error patterns.
const (
	UnknownCPU      = "machine: unknown cpu (%s)"
	UnknownRegister = "machine: unknown register (%s)"
)

// List of CPU families.
const (
	Family6502 = "6502"
	FamilyZ80  = "z80"
)

// pins bit used to mark the opcode fetch of a 6502 instruction at a
// breakpoint. outside of m6502.PinMask
const breakMark = m6502.Pins(1 << 32)

// Machine is a CPU connected to flat memory.
type Machine struct {
	Prefs *Preferences
	Mem   *memory.Flat

	// nil if tracing is disabled by the preferences
	Trace *bustrace.Recorder

	// nil if the digest is disabled by the preferences
	Digest *digest.Bus

	family string
	cpu    cpu.Steppable

	// only one of these is used, depending on the family
	mc  *m6502.CPU
	z80 *z80.CPU

	// the address at which the most recent image was loaded
	entry uint16

	regs []register

	breakpoints map[uint16]bool
	breakHit    bool
}

// New is the preferred method of initialisation for the Machine type.
func New(prefs *Preferences) (*Machine, error) {
	m := &Machine{
		Prefs:       prefs,
		Mem:         memory.NewFlat(),
		family:      strings.ToLower(strings.TrimSpace(prefs.CPU.String())),
		entry:       uint16(prefs.Origin.Get().(int)),
		breakpoints: make(map[uint16]bool),
	}

	if prefs.Trace.Get().(bool) {
		m.Trace = bustrace.NewRecorder(prefs.TraceCapacity.Get().(int))
	}
	if prefs.Digest.Get().(bool) {
		m.Digest = digest.NewBus()
	}

	switch m.family {
	case Family6502:
		var tick m6502.TickFunc = m.tick6502
		if m.Trace != nil {
			tick = m.Trace.Wrap6502(tick)
		}
		if m.Digest != nil {
			tick = m.Digest.Wrap6502(tick)
		}
		m.mc = m6502.NewCPU(tick)
		m.mc.BreakMask = breakMark
		m.cpu = m.mc
		m.regs = m.registers6502()

	case FamilyZ80:
		var tick z80.TickFunc = m.Mem.TickZ80
		if m.Trace != nil {
			tick = m.Trace.WrapZ80(tick)
		}
		if m.Digest != nil {
			tick = m.Digest.WrapZ80(tick)
		}
		m.z80 = z80.NewCPU(tick, m)
		m.cpu = m.z80
		m.regs = m.registersZ80()

	default:
		return nil, curated.Errorf(UnknownCPU, prefs.CPU.String())
	}

	logger.Logf(logger.Allow, "machine", "created %s machine", m.family)

	return m, nil
}

func (m *Machine) tick6502(pins m6502.Pins) m6502.Pins {
	pins = m.Mem.Tick6502(pins &^ breakMark)
	if pins&m6502.SYNC == m6502.SYNC && m.breakpoints[pins.Addr()] {
		pins |= breakMark
	}
	return pins
}

// Family returns the CPU family of the machine.
func (m *Machine) Family() string {
	return m.family
}

func (m *Machine) String() string {
	if m.mc != nil {
		return m.mc.String()
	}
	return m.z80.String()
}

// Load copies the image into memory and resets the machine. For the 6502 the
// reset vector is pointed at the image origin, unless the image covers the
// reset vector itself.
func (m *Machine) Load(img imageloader.Image) error {
	err := m.Mem.Load(img.Origin, img.Data)
	if err != nil {
		return curated.Errorf("machine: %v", err)
	}

	m.entry = img.Origin
	if m.mc != nil && int(img.Origin)+len(img.Data) <= int(m6502.ResetVector) {
		m.Mem.SetVector(m6502.ResetVector, img.Origin)
	}

	logger.Logf(logger.Allow, "machine", "loaded %s", img)

	m.Reset()
	return nil
}

// Reset the CPU. The 6502 reads its reset vector. The Z80 starts at the
// origin of the most recently loaded image.
func (m *Machine) Reset() {
	m.cpu.Reset()
	if m.z80 != nil {
		m.z80.PC = m.entry
	}
	m.breakHit = false
}

// Step executes one instruction and returns the number of ticks consumed.
func (m *Machine) Step() int {
	m.breakHit = false
	if m.mc != nil {
		n := m.mc.Step()
		m.breakHit = m.mc.LastResult.Defn != nil && m.breakpoints[m.mc.LastResult.Address]
		return n
	}

	pc := m.z80.PC
	n := m.z80.Step()
	m.breakHit = m.breakpoints[pc]
	return n
}

// Run executes instructions until at least the requested number of ticks
// have been consumed or until the instruction at a breakpoint has been
// executed. Returns the number of ticks consumed.
func (m *Machine) Run(ticks int) int {
	if m.mc != nil {
		n := m.mc.Run(ticks)
		m.breakHit = m.mc.BreakHit()
		return n
	}

	var n int
	for {
		n += m.Step()
		if n >= ticks || m.breakHit {
			return n
		}
	}
}

// Stopped returns true if the CPU can make no further progress without a
// reset or an interrupt.
func (m *Machine) Stopped() bool {
	if m.mc != nil {
		return m.mc.Killed
	}
	return m.z80.Halted()
}

// SetBreakpoint causes Run() to return after the instruction at address has
// been executed.
func (m *Machine) SetBreakpoint(address uint16) {
	m.breakpoints[address] = true
}

// ClearBreakpoints removes all breakpoints.
func (m *Machine) ClearBreakpoints() {
	clear(m.breakpoints)
}

// BreakHit returns true if the most recent Step() or Run() stopped at a
// breakpoint.
func (m *Machine) BreakHit() bool {
	return m.breakHit
}

// Peek returns the value at address without ticking the CPU.
func (m *Machine) Peek(address uint16) uint8 {
	return m.Mem.Peek(address)
}

// Poke sets the value at address without ticking the CPU.
func (m *Machine) Poke(address uint16, value uint8) {
	m.Mem.Poke(address, value)
}

// PC returns the address of the next instruction.
func (m *Machine) PC() uint16 {
	if m.mc != nil {
		return m.mc.PC.Address()
	}
	return m.z80.PC
}

// DumpState writes a graphviz description of the CPU structure.
func (m *Machine) DumpState(w io.Writer) {
	if m.mc != nil {
		memviz.Map(w, m.mc)
		return
	}
	memviz.Map(w, m.z80)
}

// RegisterNames returns the names of the CPU registers in display order.
func (m *Machine) RegisterNames() []string {
	n := make([]string, len(m.regs))
	for i, r := range m.regs {
		n[i] = r.name
	}
	return n
}

// Registers returns the current value of every CPU register.
func (m *Machine) Registers() map[string]int {
	v := make(map[string]int, len(m.regs))
	for _, r := range m.regs {
		v[r.name] = r.get()
	}
	return v
}

// Register returns the value of the named register.
func (m *Machine) Register(name string) (int, error) {
	r, ok := m.lookup(name)
	if !ok {
		return 0, curated.Errorf(UnknownRegister, name)
	}
	return r.get(), nil
}

// SetRegister changes the value of the named register. The value is truncated
// to the width of the register.
func (m *Machine) SetRegister(name string, value int) error {
	r, ok := m.lookup(name)
	if !ok {
		return curated.Errorf(UnknownRegister, name)
	}
	r.set(value)
	return nil
}

func (m *Machine) lookup(name string) (register, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, r := range m.regs {
		if r.name == name {
			return r, true
		}
	}
	return register{}, false
}

// WriteRegisters writes the registers on a single line.
func (m *Machine) WriteRegisters(w io.Writer) {
	s := strings.Builder{}
	for i, r := range m.regs {
		if i > 0 {
			s.WriteString(" ")
		}
		if r.width == 8 {
			s.WriteString(fmt.Sprintf("%s=%02x", r.name, r.get()))
		} else {
			s.WriteString(fmt.Sprintf("%s=%04x", r.name, r.get()))
		}
	}
	s.WriteString("\n")
	io.WriteString(w, s.String())
}
