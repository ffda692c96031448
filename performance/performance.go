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

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/chips/curated"
	"github.com/jetsetilly/chips/machine"
	"github.com/spf13/afero"
)

// Leadtime is the period the machine runs for before measurement begins.
var Leadtime = 2 * time.Second

// number of ticks between checks of the timer channel
const performanceBrake = 10000

// Check the performance of the machine. The machine should have an image
// loaded before calling this function.
//
// The machine will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, fs afero.Fs, profile Profile, m *machine.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var numTicks int
	var startTicks int

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has elapsed. buffered so that the timers never
		// block
		timerChan := make(chan bool, 2)

		time.AfterFunc(Leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			numTicks += m.Run(performanceBrake)

			select {
			case v := <-timerChan:
				if v {
					return nil
				}
				startTicks = numTicks
			default:
			}
		}
	}

	err = RunProfiler(fs, profile, "performance", runner)
	if err != nil {
		return err
	}

	measured := numTicks - startTicks
	tps, accuracy := CalcTPS(measured, dur.Seconds(), NominalClock(m.Family()))
	fmt.Fprintf(output, "%.2f MHz (%d ticks in %.2f seconds) %.1f%%\n", tps/1000000, measured, dur.Seconds(), accuracy)

	return nil
}
