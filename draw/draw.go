// SPDX-License-Identifier: Unlicense OR MIT

/*
Package draw defines the drawing surface spinners render into.

A Surface is an append-only sink for the current frame: commands are
consumed in the order they are issued and no command carries state
from one frame to the next. List layers incremental path construction
on top of a Surface, and Recorder captures commands for later replay.

Implementations must not retain the point slices passed to them; the
callers reuse them.
*/
package draw

import (
	"image/color"

	"gioui.org/f32"
)

// Surface is the drawing surface of a frame.
type Surface interface {
	// StrokePath strokes the poly-line through points. A closed path
	// connects the last point back to the first.
	StrokePath(points []f32.Point, c color.NRGBA, closed bool, width float32)
	// FillCircle fills a circle approximated by the given number of
	// segments. Implementations that draw exact circles may ignore
	// segments.
	FillCircle(center f32.Point, radius float32, c color.NRGBA, segments int)
	// FillConvexPoly fills the convex polygon through points.
	FillConvexPoly(points []f32.Point, c color.NRGBA)
	// Line draws the straight segment from one point to another.
	Line(from, to f32.Point, c color.NRGBA, width float32)
}

// List is a drawing list in the style of immediate mode toolkits: a
// current path is built point by point and then stroked. Commands with
// a fully transparent color and paths with fewer than two points are
// dropped before they reach the Surface.
type List struct {
	Surface Surface

	path []f32.Point
}

// PathClear discards the current path.
func (l *List) PathClear() {
	l.path = l.path[:0]
}

// PathLineTo appends a point to the current path.
func (l *List) PathLineTo(p f32.Point) {
	l.path = append(l.path, p)
}

// PathStroke strokes the current path and clears it.
func (l *List) PathStroke(c color.NRGBA, closed bool, width float32) {
	if len(l.path) >= 2 && c.A != 0 {
		l.Surface.StrokePath(l.path, c, closed, width)
	}
	l.PathClear()
}

// PathFillConvex fills the current path as a convex polygon and clears
// it.
func (l *List) PathFillConvex(c color.NRGBA) {
	if len(l.path) >= 3 && c.A != 0 {
		l.Surface.FillConvexPoly(l.path, c)
	}
	l.PathClear()
}

// FillCircle fills a circle.
func (l *List) FillCircle(center f32.Point, radius float32, c color.NRGBA, segments int) {
	if c.A == 0 {
		return
	}
	l.Surface.FillCircle(center, radius, c, segments)
}

// FillConvexPoly fills a convex polygon.
func (l *List) FillConvexPoly(points []f32.Point, c color.NRGBA) {
	if len(points) < 3 || c.A == 0 {
		return
	}
	l.Surface.FillConvexPoly(points, c)
}

// Line draws a straight line.
func (l *List) Line(from, to f32.Point, c color.NRGBA, width float32) {
	if c.A == 0 {
		return
	}
	l.Surface.Line(from, to, c, width)
}

// Discard is a Surface that draws nothing, for layout passes.
var Discard Surface = discard{}

type discard struct{}

func (discard) StrokePath([]f32.Point, color.NRGBA, bool, float32) {}
func (discard) FillCircle(f32.Point, float32, color.NRGBA, int)    {}
func (discard) FillConvexPoly([]f32.Point, color.NRGBA)            {}
func (discard) Line(f32.Point, f32.Point, color.NRGBA, float32)    {}
