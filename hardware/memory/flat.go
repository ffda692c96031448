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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/chips/curated"
)

// TooLarge is the pattern of the error returned by Load() when the data does
// not fit into the address space.
const TooLarge = "memory: %d bytes at %#04x does not fit in the address space"

// DefaultOutCapacity is the number of I/O writes remembered by a Flat created
// with NewFlat().
const DefaultOutCapacity = 1024

// PortWrite records a single write to an I/O port.
type PortWrite struct {
	Port uint16
	Data uint8
}

func (w PortWrite) String() string {
	return fmt.Sprintf("OUT (%#02x), %#02x", w.Port, w.Data)
}

// Flat is 64k of RAM and 256 I/O ports, with no memory map and no
// mirroring. It provides a tick function for both of the CPU types.
type Flat struct {
	RAM   [0x10000]uint8
	Ports [0x100]uint8

	// writes to the I/O ports in the order they happened. once OutCapacity
	// writes have been recorded the oldest write is forgotten to make room.
	// an OutCapacity of zero means there is no limit
	Out         []PortWrite
	OutCapacity int

	// the value placed on the data bus during a Z80 interrupt acknowledge.
	// the default value of 0xff is RST 38h in IM0
	Vector uint8

	// the level of the interrupt lines. the lines are driven at the end of
	// every tick
	IRQ bool
	NMI bool
}

// NewFlat is the preferred method of initialisation for the Flat type.
func NewFlat() *Flat {
	return &Flat{
		Vector:      0xff,
		OutCapacity: DefaultOutCapacity,
	}
}

// Clear zeroes memory and the ports and forgets any I/O writes. The
// interrupt lines are released.
func (mem *Flat) Clear() {
	vector := mem.Vector
	capacity := mem.OutCapacity
	*mem = Flat{}
	mem.Vector = vector
	mem.OutCapacity = capacity
}

func (mem *Flat) recordOut(w PortWrite) {
	if mem.OutCapacity > 0 && len(mem.Out) >= mem.OutCapacity {
		copy(mem.Out, mem.Out[1:])
		mem.Out[len(mem.Out)-1] = w
		return
	}
	mem.Out = append(mem.Out, w)
}

// Load copies data into RAM starting at origin.
func (mem *Flat) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.RAM) {
		return curated.Errorf(TooLarge, len(data), origin)
	}
	copy(mem.RAM[origin:], data)
	return nil
}

// Peek returns the value at address without ticking any CPU.
func (mem *Flat) Peek(address uint16) uint8 {
	return mem.RAM[address]
}

// Poke sets the value at address without ticking any CPU.
func (mem *Flat) Poke(address uint16, value uint8) {
	mem.RAM[address] = value
}

// SetVector stores a 16 bit value, low byte first, at address. Used to set up
// the 6502 reset and interrupt vectors.
func (mem *Flat) SetVector(address uint16, value uint16) {
	mem.RAM[address] = uint8(value)
	mem.RAM[address+1] = uint8(value >> 8)
}

// Dump writes a hex dump of length bytes of RAM starting at origin. Each line
// shows sixteen bytes.
func (mem *Flat) Dump(w io.Writer, origin uint16, length int) {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	a := int(origin &^ 0x000f)
	end := int(origin) + length
	for ; a < end && a < len(mem.RAM); a += 16 {
		s.WriteString(fmt.Sprintf("%03X- | ", a>>4))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.RAM[a+x]))
		}
		s.WriteString("\n")
	}

	io.WriteString(w, s.String())
}
