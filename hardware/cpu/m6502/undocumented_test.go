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

package m6502_test

import (
	"testing"

	"github.com/jetsetilly/chips/test"
)

// undocumentedTest is a single instruction executed from $0200 with the
// registers and flags as specified. memory is filled from the mem map before
// the instruction and checked against the want map after it.
type undocumentedTest struct {
	name    string
	program []uint8

	a, x, y, sp    uint8
	carry, decimal bool
	mem            map[uint16]uint8

	wantA, wantX, wantSP       uint8
	wantC, wantZ, wantV, wantN bool
	want                       map[uint16]uint8
}

var undocumentedTests = []undocumentedTest{
	{
		name: "SLO", program: []uint8{0x07, 0x10},
		a: 0x40, mem: map[uint16]uint8{0x10: 0x81},
		wantA: 0x42, wantC: true,
		want: map[uint16]uint8{0x10: 0x02},
	},
	{
		name: "RLA", program: []uint8{0x27, 0x10},
		a: 0xff, carry: true, mem: map[uint16]uint8{0x10: 0x80},
		wantA: 0x01, wantC: true,
		want: map[uint16]uint8{0x10: 0x01},
	},
	{
		name: "SRE", program: []uint8{0x47, 0x10},
		a: 0x80, mem: map[uint16]uint8{0x10: 0x03},
		wantA: 0x81, wantC: true, wantN: true,
		want: map[uint16]uint8{0x10: 0x01},
	},
	{
		name: "RRA", program: []uint8{0x67, 0x10},
		a: 0x10, carry: true, mem: map[uint16]uint8{0x10: 0x02},
		wantA: 0x91, wantN: true,
		want: map[uint16]uint8{0x10: 0x81},
	},
	{
		// 25 + 08 + carry out of the rotate
		name: "RRA decimal", program: []uint8{0x67, 0x10},
		a: 0x25, decimal: true, mem: map[uint16]uint8{0x10: 0x11},
		wantA: 0x34,
		want:  map[uint16]uint8{0x10: 0x08},
	},
	{
		name: "ISC", program: []uint8{0xe7, 0x10},
		a: 0x20, carry: true, mem: map[uint16]uint8{0x10: 0x0f},
		wantA: 0x10, wantC: true,
		want: map[uint16]uint8{0x10: 0x10},
	},
	{
		// 42 - 09
		name: "ISC decimal", program: []uint8{0xe7, 0x10},
		a: 0x42, carry: true, decimal: true, mem: map[uint16]uint8{0x10: 0x08},
		wantA: 0x33, wantC: true,
		want: map[uint16]uint8{0x10: 0x09},
	},
	{
		name: "ANC", program: []uint8{0x0b, 0x80},
		a:     0xc0,
		wantA: 0x80, wantC: true, wantN: true,
	},
	{
		name: "ALR", program: []uint8{0x4b, 0x03},
		a:     0x07,
		wantA: 0x01, wantC: true,
	},
	{
		name: "ARR", program: []uint8{0x6b, 0xff},
		a:     0xc0,
		wantA: 0x60, wantC: true,
	},
	{
		name: "ARR overflow", program: []uint8{0x6b, 0xff},
		a: 0x40, carry: true,
		wantA: 0xa0, wantV: true, wantN: true,
	},
	{
		name: "ARR decimal", program: []uint8{0x6b, 0xff},
		a: 0xff, decimal: true,
		wantA: 0xd5, wantC: true,
	},
	{
		// no nibble correction. N follows the incoming carry
		name: "ARR decimal uncorrected", program: []uint8{0x6b, 0xff},
		a: 0x22, carry: true, decimal: true,
		wantA: 0x91, wantN: true,
	},
	{
		name: "SBX", program: []uint8{0xcb, 0x01},
		a: 0x0f, x: 0xf3,
		wantA: 0x0f, wantX: 0x02, wantC: true,
	},
	{
		name: "SBX borrow", program: []uint8{0xcb, 0x05},
		a: 0x0f, x: 0xf3,
		wantA: 0x0f, wantX: 0xfe, wantN: true,
	},
	{
		name: "LAS", program: []uint8{0xbb, 0x00, 0x03},
		y: 0x01, sp: 0x3c, mem: map[uint16]uint8{0x0301: 0xf0},
		wantA: 0x30, wantX: 0x30, wantSP: 0x30,
	},
	{
		name: "SHA", program: []uint8{0x9f, 0x00, 0x03},
		a: 0xff, x: 0x0f, y: 0x02,
		wantA: 0xff, wantX: 0x0f,
		want: map[uint16]uint8{0x0302: 0x04},
	},
	{
		name: "SHX", program: []uint8{0x9e, 0x00, 0x12},
		x: 0xff, y: 0x10,
		wantX: 0xff,
		want:  map[uint16]uint8{0x1210: 0x13},
	},
	{
		// indexing crosses from $12xx to $13xx. the stored value replaces
		// the high byte of the address
		name: "SHX page cross", program: []uint8{0x9e, 0xf0, 0x12},
		x: 0x0b, y: 0x20, mem: map[uint16]uint8{0x0310: 0xaa},
		wantX: 0x0b,
		want:  map[uint16]uint8{0x0310: 0x03, 0x1310: 0x00},
	},
	{
		name: "SHY", program: []uint8{0x9c, 0x00, 0x12},
		x: 0x05, y: 0xff,
		wantX: 0x05,
		want:  map[uint16]uint8{0x1205: 0x13},
	},
	{
		name: "TAS", program: []uint8{0x9b, 0x00, 0x12},
		a: 0xf7, x: 0x3f, y: 0x01,
		wantA: 0xf7, wantX: 0x3f, wantSP: 0x37,
		want: map[uint16]uint8{0x1201: 0x13},
	},
}

func TestUndocumentedOperators(t *testing.T) {
	for _, tt := range undocumentedTests {
		t.Run(tt.name, func(t *testing.T) {
			mc, mem := prepare(0x0200)
			mem.putInstructions(0x0200, tt.program...)
			for a, v := range tt.mem {
				mem.internal[a] = v
			}

			mc.A.Load(tt.a)
			mc.X.Load(tt.x)
			mc.Y.Load(tt.y)
			mc.SP.Load(tt.sp)
			mc.Status.Carry = tt.carry
			mc.Status.DecimalMode = tt.decimal
			mc.Status.Zero = false
			mc.Status.Overflow = false
			mc.Status.Sign = false

			step(t, mc)

			test.ExpectEquality(t, mc.A.Value(), tt.wantA)
			test.ExpectEquality(t, mc.X.Value(), tt.wantX)
			test.ExpectEquality(t, mc.SP.Value(), tt.wantSP)
			test.ExpectEquality(t, mc.Status.Carry, tt.wantC)
			test.ExpectEquality(t, mc.Status.Zero, tt.wantZ)
			test.ExpectEquality(t, mc.Status.Overflow, tt.wantV)
			test.ExpectEquality(t, mc.Status.Sign, tt.wantN)
			test.ExpectEquality(t, mc.PC.Address(), 0x0200+uint16(len(tt.program)))
			for a, v := range tt.want {
				mem.assert(t, a, v)
			}
		})
	}
}
