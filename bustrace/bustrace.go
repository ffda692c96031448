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

package bustrace

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/chips/hardware/cpu/m6502"
	"github.com/jetsetilly/chips/hardware/cpu/z80"
)

// Transaction is the state of the bus at the end of a single tick.
type Transaction struct {
	Tick int    `json:"tick"`
	Addr uint16 `json:"addr"`
	Data uint8  `json:"data"`
	Ctrl string `json:"ctrl"`
}

func (t Transaction) String() string {
	return fmt.Sprintf("%6d  %04x  %02x  %s", t.Tick, t.Addr, t.Data, t.Ctrl)
}

// Recorder keeps a list of Transactions.
type Recorder struct {
	transactions []Transaction
	capacity     int

	// tick count since the Recorder was created or cleared. not affected by
	// the capacity of the ring
	ticks int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. A capacity of zero means there is no limit to the number of
// transactions recorded.
func NewRecorder(capacity int) *Recorder {
	if capacity < 0 {
		capacity = 0
	}
	return &Recorder{
		capacity: capacity,
	}
}

// Clear forgets all transactions and resets the tick count.
func (rec *Recorder) Clear() {
	rec.transactions = rec.transactions[:0]
	rec.ticks = 0
}

// Transactions returns the recorded transactions, oldest first. The returned
// slice is a copy.
func (rec *Recorder) Transactions() []Transaction {
	return append([]Transaction{}, rec.transactions...)
}

// Len returns the number of transactions currently held.
func (rec *Recorder) Len() int {
	return len(rec.transactions)
}

// Ticks returns the number of ticks seen since creation or the last Clear().
func (rec *Recorder) Ticks() int {
	return rec.ticks
}

func (rec *Recorder) record(addr uint16, data uint8, ctrl string) {
	rec.ticks++
	t := Transaction{
		Tick: rec.ticks,
		Addr: addr,
		Data: data,
		Ctrl: ctrl,
	}

	if rec.capacity > 0 && len(rec.transactions) >= rec.capacity {
		copy(rec.transactions, rec.transactions[1:])
		rec.transactions[len(rec.transactions)-1] = t
		return
	}
	rec.transactions = append(rec.transactions, t)
}

// Wrap6502 returns a tick function that calls the supplied tick function and
// then records the pins that it returns.
func (rec *Recorder) Wrap6502(tick m6502.TickFunc) m6502.TickFunc {
	return func(pins m6502.Pins) m6502.Pins {
		pins = tick(pins)
		rec.record(pins.Addr(), pins.Data(), ctrl6502(pins))
		return pins
	}
}

func ctrl6502(pins m6502.Pins) string {
	s := strings.Builder{}
	if pins.IsRead() {
		s.WriteString("R")
	} else {
		s.WriteString("W")
	}
	if pins&m6502.SYNC == m6502.SYNC {
		s.WriteString("|SYNC")
	}
	if pins&m6502.IRQ == m6502.IRQ {
		s.WriteString("|IRQ")
	}
	if pins&m6502.NMI == m6502.NMI {
		s.WriteString("|NMI")
	}
	return s.String()
}

// WrapZ80 returns a tick function that calls the supplied tick function and
// then records the pins as they were left by it.
func (rec *Recorder) WrapZ80(tick z80.TickFunc) z80.TickFunc {
	return func(ctx any, pins *z80.Pins) {
		tick(ctx, pins)
		rec.record(pins.Addr, pins.Data, pins.Ctrl.String())
	}
}

func (rec *Recorder) String() string {
	s := strings.Builder{}
	_, _ = rec.WriteTo(&s)
	return s.String()
}

// WriteTo writes one line for every transaction. Implements the io.WriterTo
// interface.
func (rec *Recorder) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, t := range rec.transactions {
		m, err := io.WriteString(w, t.String()+"\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// WriteJSON writes the transactions as a JSON array.
func (rec *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec.transactions)
}
