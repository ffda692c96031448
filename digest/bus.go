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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/chips/hardware/cpu/m6502"
	"github.com/jetsetilly/chips/hardware/cpu/z80"
)

// number of bytes recorded for each tick: address (two bytes), data and the
// control pins (two bytes)
const tickSize = 5

// the length of the buffer is enough for the digest plus a whole number of
// ticks
const bufferLength = sha1.Size + tickSize*1024

// the buffer begins with the previous digest value. this chains the digest
// values so that the final hash depends on every tick ever recorded
const bufferStart = sha1.Size

// Bus is a chained sha1 digest of every tick seen by the wrapped tick
// function. Memory use is constant regardless of the number of ticks.
type Bus struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	ticks    int
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	dig := &Bus{
		buffer: make([]uint8, bufferLength),
	}
	dig.ResetDigest()
	return dig
}

func (dig *Bus) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Ticks not yet folded into the chain
// are included in the returned hash.
func (dig *Bus) Hash() string {
	if dig.bufferCt == bufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// ResetDigest implements the Digest interface.
func (dig *Bus) ResetDigest() {
	clear(dig.digest[:])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = bufferStart
	dig.ticks = 0
}

// Ticks returns the number of ticks recorded since the last reset.
func (dig *Bus) Ticks() int {
	return dig.ticks
}

func (dig *Bus) record(addr uint16, data uint8, ctrl uint16) {
	dig.buffer[dig.bufferCt] = uint8(addr)
	dig.buffer[dig.bufferCt+1] = uint8(addr >> 8)
	dig.buffer[dig.bufferCt+2] = data
	dig.buffer[dig.bufferCt+3] = uint8(ctrl)
	dig.buffer[dig.bufferCt+4] = uint8(ctrl >> 8)
	dig.bufferCt += tickSize
	dig.ticks++

	if dig.bufferCt >= bufferLength {
		dig.digest = sha1.Sum(dig.buffer)
		copy(dig.buffer, dig.digest[:])
		dig.bufferCt = bufferStart
	}
}

// Wrap6502 returns a tick function that records the pins returned by tick.
func (dig *Bus) Wrap6502(tick m6502.TickFunc) m6502.TickFunc {
	return func(pins m6502.Pins) m6502.Pins {
		pins = tick(pins)
		dig.record(pins.Addr(), pins.Data(), uint16((pins&m6502.PinMask)>>24))
		return pins
	}
}

// WrapZ80 returns a tick function that records the pins after tick has
// serviced them.
func (dig *Bus) WrapZ80(tick z80.TickFunc) z80.TickFunc {
	return func(ctx any, pins *z80.Pins) {
		tick(ctx, pins)
		dig.record(pins.Addr, pins.Data, uint16(pins.Ctrl))
	}
}
