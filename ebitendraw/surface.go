// SPDX-License-Identifier: Unlicense OR MIT

// Package ebitendraw renders spinners into Ebitengine images.
package ebitendraw

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/spinner/draw"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface is a draw.Surface drawing into Target, typically the screen
// passed to Game.Draw.
type Surface struct {
	Target    *ebiten.Image
	AntiAlias bool

	vs []ebiten.Vertex
	is []uint16
}

var _ draw.Surface = (*Surface)(nil)

func (s *Surface) StrokePath(points []f32.Point, c color.NRGBA, closed bool, width float32) {
	if s.Target == nil || !(width > 0) || len(points) < 2 || c.A == 0 {
		return
	}
	var p vector.Path
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.Close()
	}
	s.vs, s.is = p.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	s.triangles(c, ebiten.FillAll)
}

func (s *Surface) FillCircle(center f32.Point, radius float32, c color.NRGBA, segments int) {
	if s.Target == nil || !(radius > 0) || c.A == 0 {
		return
	}
	vector.DrawFilledCircle(s.Target, center.X, center.Y, radius, c, s.AntiAlias)
}

func (s *Surface) FillConvexPoly(points []f32.Point, c color.NRGBA) {
	if s.Target == nil || len(points) < 3 || c.A == 0 {
		return
	}
	var p vector.Path
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.triangles(c, ebiten.NonZero)
}

func (s *Surface) Line(from, to f32.Point, c color.NRGBA, width float32) {
	if s.Target == nil || !(width > 0) || c.A == 0 {
		return
	}
	vector.StrokeLine(s.Target, from.X, from.Y, to.X, to.Y, width, c, s.AntiAlias)
}

func (s *Surface) triangles(c color.NRGBA, rule ebiten.FillRule) {
	r, g, b, a := straight(c)
	for i := range s.vs {
		v := &s.vs[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	s.Target.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		FillRule:       rule,
		AntiAlias:      s.AntiAlias,
	})
}

// straight returns the non-premultiplied components of c in [0, 1].
func straight(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
