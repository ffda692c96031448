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

package performance

import "github.com/jetsetilly/chips/machine"

// NominalClock returns the clock rate in Hz of a typical system built around
// the CPU family. Returns zero for an unknown family.
func NominalClock(family string) float64 {
	switch family {
	case machine.Family6502:
		return 1000000
	case machine.FamilyZ80:
		return 4000000
	}
	return 0
}

// CalcTPS takes the the number of ticks and duration (in seconds) and returns
// the ticks-per-second and the accuracy of that value as a percentage of the
// nominal clock.
func CalcTPS(numTicks int, duration float64, nominal float64) (tps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	tps = float64(numTicks) / duration
	if nominal > 0 {
		accuracy = 100 * tps / nominal
	}
	return tps, accuracy
}
