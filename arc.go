// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"image/color"
	"math"

	"gioui.org/spinner/internal/f32color"
)

// Rainbow draws an arc that grows and shrinks while it rotates. Its hue
// cycles over time; only the alpha of col is used. The sweep is bounded
// by angMin and angMax.
func Rainbow(ctx *Context, label string, radius, thickness float32, col color.NRGBA, speed, angMin, angMax float32) bool {
	c := NewConfig(KindRainbow, Radius(radius), Thickness(thickness), Color(col),
		Speed(speed), AngleMin(angMin), AngleMax(angMax))
	return rainbow(ctx, label, &c)
}

// Arc draws a rotating arc that grows and shrinks.
func Arc(ctx *Context, label string, radius, thickness float32, col color.NRGBA) bool {
	c := NewConfig(KindArc, Radius(radius), Thickness(thickness), Color(col))
	return arc(ctx, label, &c)
}

// Ang draws an arc of the given sweep rotating over a background ring.
// A transparent bg omits the ring.
func Ang(ctx *Context, label string, radius, thickness float32, col, bg color.NRGBA, speed, angle float32) bool {
	c := NewConfig(KindAng, Radius(radius), Thickness(thickness), Color(col), BgColor(bg),
		Speed(speed), Angle(angle))
	return ang(ctx, label, &c)
}

// AngEclipse draws a rotating arc whose width and opacity grow from its
// tail to its head.
func AngEclipse(ctx *Context, label string, radius, thickness float32, col color.NRGBA, speed, angle float32) bool {
	c := NewConfig(KindAngEclipse, Radius(radius), Thickness(thickness), Color(col),
		Speed(speed), Angle(angle))
	return angEclipse(ctx, label, &c)
}

// IngYang draws two opposed arcs, the second delta pixels inside the
// first, with widths pulsing in counter phase.
func IngYang(ctx *Context, label string, radius, thickness float32, reverse bool, delta float32, colI, colY color.NRGBA, speed, angle float32) bool {
	c := NewConfig(KindIngYang, Radius(radius), Thickness(thickness), Reverse(reverse),
		Delta(delta), Color(colI), AltColor(colY), Speed(speed), Angle(angle))
	return ingYang(ctx, label, &c)
}

// TwinAng draws two arcs on radius1 and radius2 rotating in opposite
// directions at different rates.
func TwinAng(ctx *Context, label string, radius1, radius2, thickness float32, col1, col2 color.NRGBA, speed, angle float32) bool {
	c := NewConfig(KindTwinAng, Radius(radius1), Delta(radius1-radius2), Thickness(thickness),
		Color(col1), AltColor(col2), Speed(speed), Angle(angle))
	return twinAng(ctx, label, &c)
}

func rainbow(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	t := ctx.Time()
	n := ctx.Segments(c.Radius)
	amin, amax := growingArc(t, n)
	amin = math.Max(float64(c.AngleMin), amin)
	amax = math.Min(float64(c.AngleMax), amax)
	col := f32color.HSV(float32(math.Mod(t*.3, 1)), .8, .8)
	col.A = c.Color.A
	ctx.list.PathClear()
	ctx.arcPath(center, c.Radius, amin+t*float64(c.Speed)*direction(c.Reverse), amax-amin, n)
	ctx.list.PathStroke(col, false, c.Thickness)
	return true
}

func arc(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	t := ctx.Time()
	n := ctx.Segments(c.Radius)
	amin, amax := growingArc(t, n)
	ctx.list.PathClear()
	ctx.arcPath(center, c.Radius, amin+t*8*float64(c.Speed)*direction(c.Reverse), amax-amin, n)
	ctx.list.PathStroke(c.Color, false, c.Thickness)
	return true
}

// growingArc returns the bounds of an arc of n segments whose start
// sweeps back and forth.
func growingArc(t float64, n int) (amin, amax float64) {
	start := math.Floor(math.Abs(math.Sin(t*1.8)) * float64(n-5))
	amin = twoPi * start / float64(n)
	amax = twoPi * float64(n-3) / float64(n)
	return amin, amax
}

func ang(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	t := ctx.Time()
	n := ctx.Segments(c.Radius)
	start := t * float64(c.Speed) * direction(c.Reverse)
	ctx.list.PathClear()
	ctx.arcPath(center, c.Radius, start, twoPi, n)
	ctx.list.PathStroke(c.BgColor, false, c.Thickness)
	ctx.arcPath(center, c.Radius, start, float64(c.Angle), n)
	ctx.list.PathStroke(c.Color, false, c.Thickness)
	return true
}

func angEclipse(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	t := ctx.Time()
	n := ctx.Segments(c.Radius)
	start := t * float64(c.Speed) * direction(c.Reverse)
	sweep := float64(c.Angle)
	from := polar(center, start, c.Radius)
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n)
		to := polar(center, start+f*sweep, c.Radius)
		w := max(c.MinThickness, c.Thickness*float32(f))
		ctx.list.Line(from, to, f32color.MulAlpha(c.Color, float32(f)), w)
		from = to
	}
	return true
}

func ingYang(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, max(c.Radius, c.Radius-c.Delta))
	if !ok {
		return false
	}
	t := ctx.Time()
	n := ctx.Segments(c.Radius)
	phase := t * float64(c.Speed)
	start := phase * direction(c.Reverse)
	sweep := float64(c.Angle)
	ctx.list.PathClear()
	ctx.arcPath(center, c.Radius, start, sweep, n)
	ctx.list.PathStroke(c.Color, false, c.Thickness*float32(pulse(.5, phase)))
	ctx.arcPath(center, c.Radius-c.Delta, start+math.Pi, sweep, n)
	ctx.list.PathStroke(c.AltColor, false, c.Thickness*float32(pulse(.5, phase+math.Pi)))
	return true
}

// twinRate scales the speed of the inner ring of TwinAng.
const twinRate = 1.3

func twinAng(ctx *Context, label string, c *Config) bool {
	inner := c.Radius - c.Delta
	_, center, ok := ctx.reserveRadius(label, max(c.Radius, inner))
	if !ok {
		return false
	}
	t := ctx.Time()
	n := ctx.Segments(c.Radius)
	dir := direction(c.Reverse)
	speed := float64(c.Speed)
	sweep := float64(c.Angle)
	ctx.list.PathClear()
	ctx.arcPath(center, c.Radius, t*speed*dir, sweep, n)
	ctx.list.PathStroke(c.Color, false, c.Thickness)
	ctx.arcPath(center, inner, -t*speed*twinRate*dir, sweep, n)
	ctx.list.PathStroke(c.AltColor, false, c.Thickness)
	return true
}
