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
	"github.com/jetsetilly/chips/hardware/cpu/registers"
	"github.com/jetsetilly/chips/hardware/cpu/z80"
)

type register struct {
	name  string
	width int
	get   func() int
	set   func(int)
}

func (m *Machine) registers6502() []register {
	mc := m.mc
	r8 := func(name string, r *registers.Register) register {
		return register{
			name:  name,
			width: 8,
			get:   func() int { return int(r.Value()) },
			set:   func(v int) { r.Load(uint8(v)) },
		}
	}

	return []register{
		{
			name:  "pc",
			width: 16,
			get:   func() int { return int(mc.PC.Address()) },
			set:   func(v int) { mc.PC.Load(uint16(v)) },
		},
		r8("a", &mc.A),
		r8("x", &mc.X),
		r8("y", &mc.Y),
		{
			name:  "sp",
			width: 8,
			get:   func() int { return int(mc.SP.Value()) },
			set:   func(v int) { mc.SP.Load(uint8(v)) },
		},
		{
			name:  "p",
			width: 8,
			get:   func() int { return int(mc.Status.Value()) },
			set:   func(v int) { mc.Status.FromValue(uint8(v)) },
		},
	}
}

func (m *Machine) registersZ80() []register {
	cpu := m.z80

	pair := func(name string, p *registers.Pair) register {
		return register{
			name:  name,
			width: 16,
			get:   func() int { return int(p.Word()) },
			set:   func(v int) { p.Load(uint16(v)) },
		}
	}

	// the FA pairs hold the flags in the high byte
	af := func(name string, p *registers.Pair) register {
		return register{
			name:  name,
			width: 16,
			get:   func() int { return int(p.Lo())<<8 | int(p.Hi()) },
			set: func(v int) {
				p.SetLo(uint8(v >> 8))
				p.SetHi(uint8(v))
			},
		}
	}

	r8 := func(name string, r int) register {
		return register{
			name:  name,
			width: 8,
			get:   func() int { return int(cpu.Reg(r)) },
			set:   func(v int) { cpu.SetReg(r, uint8(v)) },
		}
	}

	return []register{
		{
			name:  "pc",
			width: 16,
			get:   func() int { return int(cpu.PC) },
			set:   func(v int) { cpu.PC = uint16(v) },
		},
		{
			name:  "sp",
			width: 16,
			get:   func() int { return int(cpu.SP) },
			set:   func(v int) { cpu.SP = uint16(v) },
		},
		af("af", &cpu.Main[z80.FA]),
		pair("bc", &cpu.Main[z80.BC]),
		pair("de", &cpu.Main[z80.DE]),
		pair("hl", &cpu.Main[z80.HL]),
		pair("ix", &cpu.IX),
		pair("iy", &cpu.IY),
		af("af'", &cpu.Shadow[z80.FA]),
		pair("bc'", &cpu.Shadow[z80.BC]),
		pair("de'", &cpu.Shadow[z80.DE]),
		pair("hl'", &cpu.Shadow[z80.HL]),
		pair("wz", &cpu.WZ),
		{
			name:  "i",
			width: 8,
			get:   func() int { return int(cpu.IR.Hi()) },
			set:   func(v int) { cpu.IR.SetHi(uint8(v)) },
		},
		{
			name:  "r",
			width: 8,
			get:   func() int { return int(cpu.IR.Lo()) },
			set:   func(v int) { cpu.IR.SetLo(uint8(v)) },
		},
		{
			name:  "im",
			width: 8,
			get:   func() int { return int(cpu.IM) },
			set:   func(v int) { cpu.IM = uint8(v) % 3 },
		},
		r8("a", z80.A),
		r8("f", z80.F),
		r8("b", z80.B),
		r8("c", z80.C),
		r8("d", z80.D),
		r8("e", z80.E),
		r8("h", z80.H),
		r8("l", z80.L),
	}
}
