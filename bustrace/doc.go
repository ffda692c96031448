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

// Package bustrace records the state of the bus at the end of every tick of
// a CPU. The Recorder wraps the tick function given to the CPU so the host
// side of the bus does not need to know that it is being traced.
//
//	mem := memory.NewFlat()
//	rec := bustrace.NewRecorder(0)
//	mc := m6502.NewCPU(rec.Wrap6502(mem.Tick6502))
//
// A capacity greater than zero turns the Recorder into a ring that keeps
// only the most recent transactions.
package bustrace
