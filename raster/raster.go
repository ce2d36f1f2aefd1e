// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software draw.Surface rendering into an
image.RGBA, for offline rendering and tests.

Shapes are anti-aliased by golang.org/x/image/vector and composited
over the existing content of the image. Strokes have butt caps and
round joins.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"gioui.org/f32"
	spindraw "gioui.org/spinner/draw"
	"golang.org/x/image/vector"
)

// Rasterizer is a draw.Surface drawing into Target. Commands falling
// outside Target are ignored.
type Rasterizer struct {
	Target *image.RGBA

	vr      vector.Rasterizer
	scratch []f32.Point
}

var _ spindraw.Surface = (*Rasterizer)(nil)

// Frame clears frameBuf to bg and replays the recorded commands into
// it.
func (r *Rasterizer) Frame(rec *spindraw.Recorder, frameBuf *image.RGBA, bg color.NRGBA) {
	r.Target = frameBuf
	draw.Draw(frameBuf, frameBuf.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	rec.Replay(r)
}

func (r *Rasterizer) StrokePath(points []f32.Point, c color.NRGBA, closed bool, width float32) {
	if !(width > 0) || len(points) < 2 {
		return
	}
	hw := width / 2
	bounds := pointBounds(points, hw)
	bounds, off, ok := r.begin(bounds)
	if !ok {
		return
	}
	n := len(points)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		segment(&r.vr, points[i], points[(i+1)%n], hw, off)
	}
	for i := 0; i < n; i++ {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		r.disc(points[i], hw, joinSegments, off)
	}
	r.end(bounds, c)
}

func (r *Rasterizer) FillCircle(center f32.Point, radius float32, c color.NRGBA, segments int) {
	if !(radius > 0) {
		return
	}
	if segments < 3 {
		segments = joinSegments
	}
	bounds := pointBounds([]f32.Point{center}, radius)
	bounds, off, ok := r.begin(bounds)
	if !ok {
		return
	}
	r.disc(center, radius, segments, off)
	r.end(bounds, c)
}

func (r *Rasterizer) FillConvexPoly(points []f32.Point, c color.NRGBA) {
	if len(points) < 3 {
		return
	}
	bounds := pointBounds(points, 0)
	bounds, off, ok := r.begin(bounds)
	if !ok {
		return
	}
	polygon(&r.vr, points, off)
	r.end(bounds, c)
}

func (r *Rasterizer) Line(from, to f32.Point, c color.NRGBA, width float32) {
	if !(width > 0) {
		return
	}
	hw := width / 2
	bounds := pointBounds([]f32.Point{from, to}, hw)
	bounds, off, ok := r.begin(bounds)
	if !ok {
		return
	}
	segment(&r.vr, from, to, hw, off)
	r.end(bounds, c)
}

// joinSegments is the resolution of the discs rounding stroke joins.
const joinSegments = 12

// begin prepares the rasterizer for a shape covering bounds. It
// returns the visible part of bounds and the offset from target to
// rasterizer coordinates, or false if nothing is visible.
func (r *Rasterizer) begin(bounds image.Rectangle) (image.Rectangle, f32.Point, bool) {
	if r.Target == nil {
		return image.Rectangle{}, f32.Point{}, false
	}
	bounds = bounds.Intersect(r.Target.Bounds())
	if bounds.Empty() {
		return image.Rectangle{}, f32.Point{}, false
	}
	r.vr.Reset(bounds.Dx(), bounds.Dy())
	r.vr.DrawOp = draw.Over
	off := f32.Point{X: -float32(bounds.Min.X), Y: -float32(bounds.Min.Y)}
	return bounds, off, true
}

func (r *Rasterizer) end(bounds image.Rectangle, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	r.vr.Draw(r.Target, bounds, image.NewUniform(c), image.Point{})
}

// pointBounds returns the pixel bounds of points grown by pad.
// Non-finite coordinates yield empty bounds.
func pointBounds(points []f32.Point, pad float32) image.Rectangle {
	lo := f32.Point{X: float32(math.Inf(1)), Y: float32(math.Inf(1))}
	hi := f32.Point{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))}
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return image.Rectangle{}
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return image.Rect(
		pixel(math.Floor(float64(lo.X-pad))-1),
		pixel(math.Floor(float64(lo.Y-pad))-1),
		pixel(math.Ceil(float64(hi.X+pad))+1),
		pixel(math.Ceil(float64(hi.Y+pad))+1),
	)
}

// pixel converts a coordinate to an integer, saturating far outside
// any reasonable image.
func pixel(v float64) int {
	const limit = 1 << 24
	return int(math.Max(-limit, math.Min(limit, v)))
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// segment adds the rectangle covering the line from a to b with half
// width hw. All shapes are wound the same way so that overlaps do not
// cancel.
func segment(vr *vector.Rasterizer, a, b f32.Point, hw float32, off f32.Point) {
	d := b.Sub(a)
	l := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if l == 0 {
		return
	}
	n := f32.Point{X: -d.Y / l * hw, Y: d.X / l * hw}
	a, b = a.Add(off), b.Add(off)
	vr.MoveTo(a.X-n.X, a.Y-n.Y)
	vr.LineTo(b.X-n.X, b.Y-n.Y)
	vr.LineTo(b.X+n.X, b.Y+n.Y)
	vr.LineTo(a.X+n.X, a.Y+n.Y)
	vr.ClosePath()
}

func (r *Rasterizer) disc(center f32.Point, radius float32, segments int, off f32.Point) {
	pts := r.scratch[:0]
	for i := 0; i < segments; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		pts = append(pts, f32.Point{X: center.X + float32(c)*radius, Y: center.Y + float32(s)*radius})
	}
	r.scratch = pts
	polygon(&r.vr, pts, off)
}

func polygon(vr *vector.Rasterizer, points []f32.Point, off f32.Point) {
	p := points[0].Add(off)
	vr.MoveTo(p.X, p.Y)
	for _, p := range points[1:] {
		p = p.Add(off)
		vr.LineTo(p.X, p.Y)
	}
	vr.ClosePath()
}
