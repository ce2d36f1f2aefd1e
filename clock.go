// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import "time"

// Clock supplies the elapsed time in seconds. Successive values must not
// decrease.
type Clock interface {
	Elapsed() float64
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() float64

func (f ClockFunc) Elapsed() float64 { return f() }

// FixedClock is a Clock frozen at a point in time.
type FixedClock float64

func (c FixedClock) Elapsed() float64 { return float64(c) }

// ManualClock is a Clock advanced explicitly, for deterministic
// animation such as tests and offline rendering.
type ManualClock struct {
	T float64
}

func (c *ManualClock) Elapsed() float64 { return c.T }

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.T += dt
}

// SinceClock returns a Clock measuring wall time from start.
func SinceClock(start time.Time) Clock {
	return ClockFunc(func() float64 {
		return time.Since(start).Seconds()
	})
}
