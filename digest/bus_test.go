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

package digest_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/chips/digest"
	"github.com/jetsetilly/chips/hardware/cpu/m6502"
	"github.com/jetsetilly/chips/hardware/cpu/z80"
	"github.com/jetsetilly/chips/hardware/memory"
	"github.com/jetsetilly/chips/test"
)

// runs the 6502 program for at least the number of ticks and returns the
// digest
func run6502(ticks int, program ...uint8) *digest.Bus {
	mem := memory.NewFlat()
	mem.SetVector(m6502.ResetVector, 0x0400)
	_ = mem.Load(0x0400, program)

	dig := digest.NewBus()
	mc := m6502.NewCPU(dig.Wrap6502(mem.Tick6502))
	mc.Reset()
	mc.Run(ticks)
	return dig
}

func TestEmpty(t *testing.T) {
	dig := digest.NewBus()
	test.ExpectEquality(t, dig.Hash(), strings.Repeat("0", 40))
	test.ExpectEquality(t, dig.Ticks(), 0)

	var _ digest.Digest = dig
}

func Test6502(t *testing.T) {
	// INC $10; JMP $0400
	a := run6502(100, 0xe6, 0x10, 0x4c, 0x00, 0x04)
	b := run6502(100, 0xe6, 0x10, 0x4c, 0x00, 0x04)
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Ticks(), b.Ticks())

	// INC $11; JMP $0400
	c := run6502(100, 0xe6, 0x11, 0x4c, 0x00, 0x04)
	test.ExpectInequality(t, a.Hash(), c.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), strings.Repeat("0", 40))
	test.ExpectEquality(t, a.Ticks(), 0)
}

func TestChain(t *testing.T) {
	// enough ticks to fill the buffer several times
	a := run6502(5000, 0xe6, 0x10, 0x4c, 0x00, 0x04)
	b := run6502(5000, 0xe6, 0x10, 0x4c, 0x00, 0x04)
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectSuccess(t, a.Ticks() >= 5000)

	// the same program run for a different length of time
	c := run6502(6000, 0xe6, 0x10, 0x4c, 0x00, 0x04)
	test.ExpectInequality(t, a.Hash(), c.Hash())
}

func TestZ80(t *testing.T) {
	run := func(program ...uint8) *digest.Bus {
		mem := memory.NewFlat()
		_ = mem.Load(0x0000, program)
		dig := digest.NewBus()
		cpu := z80.NewCPU(dig.WrapZ80(mem.TickZ80), nil)
		cpu.Run(200)
		return dig
	}

	// LD A,0x42; OUT (0x10),A; JR -6
	a := run(0x3e, 0x42, 0xd3, 0x10, 0x18, 0xfa)
	b := run(0x3e, 0x42, 0xd3, 0x10, 0x18, 0xfa)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// LD A,0x43; OUT (0x10),A; JR -6
	c := run(0x3e, 0x43, 0xd3, 0x10, 0x18, 0xfa)
	test.ExpectInequality(t, a.Hash(), c.Hash())
}
