// This file is part of Turtle.
//
// Turtle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Turtle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Turtle.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to pace the servicing of GUI backends:
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
//	for {
//		fps.Wait()
//		gui.Service()
//	}
package limiter

import (
	"time"

	"github.com/turtlecomp/turtle/curated"
)

// InvalidRate is returned by NewFPSLimiter() for rates of zero or less.
const InvalidRate = "limiter: frames per second must be positive (%d)"

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}
	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(period(framesPerSecond)),
	}
	return lim, nil
}

func period(framesPerSecond int) time.Duration {
	return time.Second / time.Duration(framesPerSecond)
}

// SetLimit changes the rate at which the FpsLimiter triggers. Values of zero
// or less are ignored.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		return
	}
	lim.framesPerSecond = framesPerSecond
	lim.ticker.Reset(period(framesPerSecond))
}

// Limit returns the current rate.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if the trigger has already happened and false
// if it is still yet to happen. It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. It should not be used afterwards.
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
