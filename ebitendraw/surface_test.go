// SPDX-License-Identifier: Unlicense OR MIT

package ebitendraw

import (
	"image/color"
	"testing"

	"gioui.org/f32"
	"gioui.org/spinner"
	"gioui.org/spinner/draw"
)

func TestStraight(t *testing.T) {
	r, g, b, a := straight(color.NRGBA{R: 0xff, G: 0x80, A: 0xff})
	if r != 1 || b != 0 || a != 1 {
		t.Errorf("straight gave %v %v %v %v", r, g, b, a)
	}
	if g < .5 || g > .51 {
		t.Errorf("green %v, want about .5", g)
	}
}

func TestNoTarget(t *testing.T) {
	var s Surface
	red := color.NRGBA{R: 0xff, A: 0xff}
	s.StrokePath([]f32.Point{{}, {X: 4}}, red, false, 2)
	s.FillCircle(f32.Pt(4, 4), 2, red, 8)
	s.FillConvexPoly([]f32.Point{{}, {X: 4}, {Y: 4}}, red)
	s.Line(f32.Point{}, f32.Pt(4, 4), red, 1)
	if len(s.vs) != 0 || len(s.is) != 0 {
		t.Error("surface without target built vertices")
	}
	// A spinner drawn without a target is a no-op.
	ctx := spinner.NewContext(&s, nil, spinner.FixedClock(1), nil)
	if !spinner.Spin(ctx, "s", spinner.KindBarChartSine) {
		t.Error("spinner reported invisible")
	}
	var _ draw.Surface = &s
}
