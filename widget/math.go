// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"gioui.org/f32"
)

// polar returns the point at turn t of the circle around center.
func polar(center f32.Point, t float64, r float32) f32.Point {
	s, c := math.Sincos(2 * math.Pi * t)
	return f32.Pt(center.X+float32(c)*r, center.Y+float32(s)*r)
}
