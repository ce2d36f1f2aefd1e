// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"math"

	"gioui.org/f32"
	"golang.org/x/exp/constraints"
)

const twoPi = 2 * math.Pi

// dotSegments is the resolution of small filled dots.
const dotSegments = 8

func clamp[T constraints.Ordered](v, lo, hi T) T {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// clampDots limits n to [0, MaxDots].
func clampDots(n int) int {
	return clamp(n, 0, MaxDots)
}

// polar returns the point at angle a and distance r from center.
func polar(center f32.Point, a float64, r float32) f32.Point {
	s, c := math.Sincos(a)
	return f32.Pt(center.X+float32(c)*r, center.Y+float32(s)*r)
}

// pulse is the easing primitive of pulsing widths and alphas.
func pulse(minimum, phase float64) float64 {
	return math.Max(minimum, math.Sin(phase))
}

// direction returns -1 for reversed spinners and 1 otherwise.
func direction(reverse bool) float64 {
	if reverse {
		return -1
	}
	return 1
}

// arcPath appends n+1 points of the arc from angle a0 sweeping by
// sweep radians to the current path.
func (ctx *Context) arcPath(center f32.Point, radius float32, a0, sweep float64, n int) {
	for i := 0; i <= n; i++ {
		a := a0 + float64(i)/float64(n)*sweep
		ctx.list.PathLineTo(polar(center, a, radius))
	}
}
