// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/spinner"
	"gioui.org/spinner/draw"
)

func newContext(max image.Point, now time.Time) layout.Context {
	return layout.Context{
		Ops: new(op.Ops),
		Now: now,
		Constraints: layout.Constraints{
			Max: max,
		},
	}
}

func TestSpinnersLayout(t *testing.T) {
	var s Spinners
	now := time.Unix(1000, 0)
	gtx := newContext(image.Pt(200, 200), now)
	dims := s.Layout(gtx, "ang", spinner.KindAng, spinner.Radius(16))
	if got, want := dims.Size, image.Pt(32, 38); got != want {
		t.Errorf("size %v, want %v", got, want)
	}
	gtx = newContext(image.Pt(20, 20), now)
	dims = s.Layout(gtx, "ang", spinner.KindAng, spinner.Radius(16))
	if got, want := dims.Size, image.Pt(20, 20); got != want {
		t.Errorf("constrained size %v, want %v", got, want)
	}
}

func TestSpinnersState(t *testing.T) {
	var s Spinners
	now := time.Unix(1000, 0)
	for i := 0; i < 3; i++ {
		gtx := newContext(image.Pt(200, 200), now.Add(time.Duration(i)*time.Second/60))
		s.Layout(gtx, "rot", spinner.KindRotateDots)
	}
	if n := s.State().Len(); n != 2 {
		t.Errorf("%d state slots, want 2", n)
	}
	if got, want := s.Context().Time(), 2.0/60; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("elapsed %v, want %v", got, want)
	}
}

func TestSpinnersHidden(t *testing.T) {
	var s Spinners
	gtx := newContext(image.Point{}, time.Unix(1000, 0))
	dims := s.Layout(gtx, "rot", spinner.KindRotateDots)
	if dims.Size != (image.Point{}) {
		t.Errorf("hidden spinner has size %v", dims.Size)
	}
	if s.State().Len() != 0 {
		t.Error("hidden spinner kept state")
	}
}

func TestSpinnersInvalidKind(t *testing.T) {
	var s Spinners
	gtx := newContext(image.Pt(200, 200), time.Unix(1000, 0))
	c := spinner.DefaultConfig()
	c.Kind = 77
	if dims := s.LayoutConfig(gtx, "bad", c); dims.Size != (image.Point{}) {
		t.Errorf("invalid kind has size %v", dims.Size)
	}
}

func TestSurfaceDegenerate(t *testing.T) {
	s := Surface{Ops: new(op.Ops)}
	red := color.NRGBA{R: 0xff, A: 0xff}
	// None of these may panic.
	s.FillCircle(f32.Pt(1, 1), 0, red, 12)
	s.StrokePath(nil, red, true, 2)
	s.FillConvexPoly(nil, red)
	s.Line(f32.Pt(0, 0), f32.Pt(1, 1), red, 0)
	s.FillCircle(f32.Pt(8, 8), 4, red, 0)
}

func TestSpinnersContextBeforeLayout(t *testing.T) {
	var s Spinners
	ctx := s.Context()
	if ctx.Surface() != draw.Discard {
		t.Fatalf("surface before the first layout is %v", ctx.Surface())
	}
	// Neither may panic before the first frame.
	ctx.Surface().FillCircle(f32.Pt(8, 8), 4, color.NRGBA{A: 0xff}, 12)
	spinner.Spin(ctx, "early", spinner.KindArc)
	if s.State().Len() != 0 {
		t.Error("hidden spinner kept state")
	}
}
