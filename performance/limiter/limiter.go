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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(50)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		m.Run(clock / 50)
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/chips/curated"
)

// Sentinal error patterns.
const (
	InvalidRate = "limiter: rate must be greater than zero (%d)"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger rate times every second.
type Limiter struct {
	rate   int
	period time.Duration

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	if rate <= 0 {
		return nil, curated.Errorf(InvalidRate, rate)
	}

	lim := &Limiter{
		rate:   rate,
		period: time.Second / time.Duration(rate),
		tick:   make(chan bool),
		quit:   make(chan bool),
	}

	go func() {
		adjusted := lim.period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.period
			t = nt
		}
	}()

	return lim, nil
}

// Rate returns the number of triggers per second.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	close(lim.quit)
}
