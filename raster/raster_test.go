// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gioui.org/f32"
	"gioui.org/spinner"
	spindraw "gioui.org/spinner/draw"
)

var (
	black = color.NRGBA{A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
)

func newTarget(w, h int) *Rasterizer {
	return &Rasterizer{Target: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func isRed(c color.RGBA) bool {
	return c.R > 0xf0 && c.G == 0 && c.B == 0 && c.A > 0xf0
}

func TestFillCircle(t *testing.T) {
	r := newTarget(32, 32)
	r.FillCircle(f32.Pt(16, 16), 8, red, 32)
	if c := r.Target.RGBAAt(16, 16); !isRed(c) {
		t.Errorf("center is %v", c)
	}
	if c := r.Target.RGBAAt(2, 2); c.A != 0 {
		t.Errorf("corner is %v", c)
	}
}

func TestLine(t *testing.T) {
	r := newTarget(32, 32)
	r.Line(f32.Pt(4, 16), f32.Pt(28, 16), red, 4)
	if c := r.Target.RGBAAt(16, 16); !isRed(c) {
		t.Errorf("line center is %v", c)
	}
	if c := r.Target.RGBAAt(16, 24); c.A != 0 {
		t.Errorf("pixel off the line is %v", c)
	}
}

func TestStrokeClosed(t *testing.T) {
	r := newTarget(32, 32)
	square := []f32.Point{f32.Pt(8, 8), f32.Pt(24, 8), f32.Pt(24, 24), f32.Pt(8, 24)}
	r.StrokePath(square, red, true, 2)
	// The closing edge from the last point back to the first.
	if c := r.Target.RGBAAt(8, 16); !isRed(c) {
		t.Errorf("closing edge is %v", c)
	}
	if c := r.Target.RGBAAt(16, 16); c.A != 0 {
		t.Errorf("interior is %v", c)
	}
	r = newTarget(32, 32)
	r.StrokePath(square, red, false, 2)
	if c := r.Target.RGBAAt(8, 16); c.A != 0 {
		t.Errorf("open path drew its closing edge: %v", c)
	}
}

func TestFillConvexPoly(t *testing.T) {
	r := newTarget(32, 32)
	r.FillConvexPoly([]f32.Point{f32.Pt(4, 4), f32.Pt(28, 4), f32.Pt(28, 28), f32.Pt(4, 28)}, red)
	if c := r.Target.RGBAAt(16, 16); !isRed(c) {
		t.Errorf("polygon interior is %v", c)
	}
}

func TestDegenerate(t *testing.T) {
	r := newTarget(16, 16)
	nan := float32(math.NaN())
	r.FillCircle(f32.Pt(8, 8), 0, red, 12)
	r.FillCircle(f32.Pt(8, 8), -3, red, 12)
	r.FillCircle(f32.Pt(nan, 8), 4, red, 12)
	r.Line(f32.Pt(0, 0), f32.Pt(16, 16), red, 0)
	r.StrokePath([]f32.Point{f32.Pt(1, 1)}, red, true, 2)
	r.FillConvexPoly([]f32.Point{f32.Pt(1, 1), f32.Pt(2, 2)}, red)
	r.FillCircle(f32.Pt(1e9, -1e9), 4, red, 12)
	r.Line(f32.Pt(8, 8), f32.Pt(8, 8), color.NRGBA{}, 4)
	for _, p := range r.Target.Pix {
		if p != 0 {
			t.Fatal("degenerate shapes drew pixels")
		}
	}
	var empty Rasterizer
	empty.FillCircle(f32.Pt(8, 8), 4, red, 12)
}

func TestBlendOver(t *testing.T) {
	r := newTarget(8, 8)
	r.Frame(new(spindraw.Recorder), r.Target, black)
	half := color.NRGBA{R: 0xff, A: 0x80}
	r.FillConvexPoly([]f32.Point{f32.Pt(0, 0), f32.Pt(8, 0), f32.Pt(8, 8), f32.Pt(0, 8)}, half)
	c := r.Target.RGBAAt(4, 4)
	if c.A != 0xff || c.R < 0x70 || c.R > 0x90 {
		t.Errorf("half red over black is %v", c)
	}
}

func TestFrameSpinner(t *testing.T) {
	rec := new(spindraw.Recorder)
	ctx := spinner.NewContext(rec, new(spinner.Flow), spinner.FixedClock(.5), nil)
	spinner.Spin(ctx, "s", spinner.KindAng, spinner.Radius(16), spinner.Thickness(4),
		spinner.Color(red))
	var r Rasterizer
	img := image.NewRGBA(image.Rect(0, 0, 48, 48))
	r.Frame(rec, img, black)
	var drawn int
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			if c := img.RGBAAt(x, y); c.R > 0 {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("spinner frame is empty")
	}
}
