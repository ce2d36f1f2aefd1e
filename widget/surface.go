// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/spinner/draw"
)

// Surface is a draw.Surface recording Gio operations. Coordinates are
// relative to the current transformation of Ops.
type Surface struct {
	Ops *op.Ops
}

var _ draw.Surface = Surface{}

func (s Surface) StrokePath(points []f32.Point, c color.NRGBA, closed bool, width float32) {
	if !(width > 0) || len(points) < 2 {
		return
	}
	var p clip.Path
	p.Begin(s.Ops)
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	if closed {
		p.Close()
	}
	paint.FillShape(s.Ops, c, clip.Stroke{Path: p.End(), Width: width}.Op())
}

func (s Surface) FillCircle(center f32.Point, radius float32, c color.NRGBA, segments int) {
	if !(radius > 0) {
		return
	}
	if segments < 3 {
		segments = 12
	}
	var p clip.Path
	p.Begin(s.Ops)
	p.MoveTo(polar(center, 0, radius))
	for i := 1; i < segments; i++ {
		p.LineTo(polar(center, float64(i)/float64(segments), radius))
	}
	p.Close()
	paint.FillShape(s.Ops, c, clip.Outline{Path: p.End()}.Op())
}

func (s Surface) FillConvexPoly(points []f32.Point, c color.NRGBA) {
	if len(points) < 3 {
		return
	}
	var p clip.Path
	p.Begin(s.Ops)
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	p.Close()
	paint.FillShape(s.Ops, c, clip.Outline{Path: p.End()}.Op())
}

func (s Surface) Line(from, to f32.Point, c color.NRGBA, width float32) {
	s.StrokePath([]f32.Point{from, to}, c, false, width)
}
