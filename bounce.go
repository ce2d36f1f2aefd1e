// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/spinner/internal/f32color"
)

// Metrics of the dot rows, in units of thickness.
const (
	dotAdvance   = 2.5
	bounceHeight = 2
	bounceRate   = .8
)

// BounceDots draws a row of dots jumping one after the other.
func BounceDots(ctx *Context, label string, thickness float32, col color.NRGBA, speed float32, dots int) bool {
	c := NewConfig(KindBounceDots, Thickness(thickness), Color(col), Speed(speed), Dots(dots))
	return bounceDots(ctx, label, &c)
}

// FadeDots draws a row of dots fading in and out one after the other.
func FadeDots(ctx *Context, label string, thickness float32, col color.NRGBA, speed float32, dots int) bool {
	c := NewConfig(KindFadeDots, Thickness(thickness), Color(col), Speed(speed), Dots(dots))
	return fadeDots(ctx, label, &c)
}

// BounceBall draws balls bouncing on the floor of a square of the given
// radius.
func BounceBall(ctx *Context, label string, radius, thickness float32, col color.NRGBA, speed float32, dots int) bool {
	c := NewConfig(KindBounceBall, Radius(radius), Thickness(thickness), Color(col), Speed(speed), Dots(dots))
	return bounceBall(ctx, label, &c)
}

// BarChartSine draws a row of bars whose heights follow a travelling
// sine wave. Bars are separated by thickness pixels.
func BarChartSine(ctx *Context, label string, radius, thickness float32, col color.NRGBA, speed float32, bars int) bool {
	c := NewConfig(KindBarChartSine, Radius(radius), Thickness(thickness), Color(col), Speed(speed), Dots(bars))
	return barChartSine(ctx, label, &c)
}

// dotRow reserves the footprint of a row of n dots and returns the
// placement and the center of the first dot.
func (ctx *Context) dotRow(label string, c *Config, n int) (Placement, f32.Point, bool) {
	pad := ctx.Style.FramePadding
	size := f32.Pt(c.Thickness*dotAdvance*float32(n)+pad.X, c.Thickness*4*bounceHeight+pad.Y)
	_, p, ok := ctx.reserve(label, size)
	first := f32.Pt(p.Min.X+pad.X/2+c.Thickness*dotAdvance/2, p.Center().Y)
	return p, first, ok
}

func bounceDots(ctx *Context, label string, c *Config) bool {
	n := clampDots(c.Dots)
	_, first, ok := ctx.dotRow(label, c, n)
	if !ok {
		return false
	}
	start := ctx.Time() * float64(c.Speed)
	offset := math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := start + (math.Pi - float64(i)*offset)
		y := first.Y + float32(math.Sin(a*bounceRate))*c.Thickness*bounceHeight
		p := f32.Pt(first.X+float32(i)*c.Thickness*dotAdvance, min(y, first.Y))
		ctx.list.FillCircle(p, c.Thickness, c.Color, dotSegments)
	}
	return true
}

func fadeDots(ctx *Context, label string, c *Config) bool {
	n := clampDots(c.Dots)
	_, first, ok := ctx.dotRow(label, c, n)
	if !ok {
		return false
	}
	start := ctx.Time() * float64(c.Speed)
	offset := math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := start + (math.Pi - float64(i)*offset)
		alpha := float32(pulse(.1, a*bounceRate))
		p := f32.Pt(first.X+float32(i)*c.Thickness*dotAdvance, first.Y)
		ctx.list.FillCircle(p, c.Thickness, f32color.MulAlpha(c.Color, alpha), dotSegments)
	}
	return true
}

func bounceBall(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	n := clampDots(c.Dots)
	start := ctx.Time() * float64(c.Speed)
	floor := center.Y + c.Radius - c.Thickness
	ceil := center.Y - c.Radius + c.Thickness
	span := 2 * (c.Radius - c.Thickness)
	for i := 0; i < n; i++ {
		h := float32(math.Abs(math.Sin(start + float64(i)*math.Pi/float64(n))))
		x := center.X
		if n > 1 {
			x = center.X - c.Radius + c.Thickness + float32(i)*span/float32(n-1)
		}
		y := floor - h*(floor-ceil)
		ctx.list.FillCircle(f32.Pt(x, y), c.Thickness, c.Color, dotSegments)
	}
	return true
}

func barChartSine(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	n := clampDots(c.Dots)
	start := ctx.Time() * float64(c.Speed)
	step := 2 * c.Radius / float32(n)
	left := center.X - c.Radius
	var bar [4]f32.Point
	for i := 0; i < n; i++ {
		h := float32(pulse(.2, start+float64(i)*math.Pi/float64(n))) * c.Radius
		x0 := left + float32(i)*step + c.Thickness/2
		x1 := left + float32(i+1)*step - c.Thickness/2
		bar = [4]f32.Point{
			{X: x0, Y: center.Y - h},
			{X: x1, Y: center.Y - h},
			{X: x1, Y: center.Y + h},
			{X: x0, Y: center.Y + h},
		}
		ctx.list.FillConvexPoly(bar[:], c.Color)
	}
	return true
}
