// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/spinner/internal/f32color"
)

// Pulsar draws a ring expanding from the center and fading out. Every
// time the ring restarts it leaves an echo in color bg that shrinks
// from the full radius; the echo radius is kept in the spinner's state.
func Pulsar(ctx *Context, label string, radius, thickness float32, col, bg color.NRGBA, speed float32) bool {
	c := NewConfig(KindPulsar, Radius(radius), Thickness(thickness), Color(col), BgColor(bg), Speed(speed))
	return pulsar(ctx, label, &c)
}

// ClockHands draws a dial in color bg with a fast hand in col and a slow
// hand in alt.
func ClockHands(ctx *Context, label string, radius, thickness float32, col, alt, bg color.NRGBA, speed float32) bool {
	c := NewConfig(KindClock, Radius(radius), Thickness(thickness), Color(col), AltColor(alt),
		BgColor(bg), Speed(speed))
	return clockHands(ctx, label, &c)
}

// GooeyBalls draws two balls orbiting each other, merging at the center
// and shrinking as they separate.
func GooeyBalls(ctx *Context, label string, radius float32, col color.NRGBA, speed float32) bool {
	c := NewConfig(KindGooeyBalls, Radius(radius), Color(col), Speed(speed))
	return gooeyBalls(ctx, label, &c)
}

// echoDecay is the per frame shrink factor of the Pulsar echo.
const echoDecay = .92

func pulsar(ctx *Context, label string, c *Config) bool {
	id, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	phase := float32(math.Mod(ctx.Time()*float64(c.Speed), 1))
	if phase < 0 {
		phase++
	}
	st := ctx.store()
	prev := st.Float(id, slotPhaseTime, phase)
	echo := st.Float(id, slotSecondaryRadius, 0)
	if phase < prev {
		echo = c.Radius
	} else {
		echo *= echoDecay
	}
	st.SetFloat(id, slotPhaseTime, phase)
	st.SetFloat(id, slotSecondaryRadius, echo)

	n := ctx.Segments(c.Radius)
	if echo > 0 && c.Radius > 0 {
		ctx.circlePath(center, echo, n)
		ctx.list.PathStroke(f32color.MulAlpha(c.BgColor, echo/c.Radius), true, c.Thickness)
	}
	ctx.circlePath(center, phase*c.Radius, n)
	ctx.list.PathStroke(f32color.MulAlpha(c.Color, 1-phase), true, c.Thickness)
	return true
}

// Hand lengths of ClockHands relative to the radius.
const (
	minuteHand = .8
	hourHand   = .5
)

func clockHands(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	t := ctx.Time() * float64(c.Speed) * direction(c.Reverse)
	ctx.circlePath(center, c.Radius, ctx.Segments(c.Radius))
	ctx.list.PathStroke(c.BgColor, true, c.Thickness)
	fast := t - math.Pi/2
	slow := t/12 - math.Pi/2
	ctx.list.Line(center, polar(center, fast, c.Radius*minuteHand), c.Color, c.Thickness)
	ctx.list.Line(center, polar(center, slow, c.Radius*hourHand), c.AltColor, c.Thickness*1.5)
	return true
}

func gooeyBalls(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	a := ctx.Time() * float64(c.Speed) * direction(c.Reverse)
	s := float32(math.Abs(math.Sin(a)))
	dist := c.Radius * .5 * s
	ball := c.Radius * .5 * (1 - .4*s)
	n := ctx.Segments(ball)
	ctx.list.FillCircle(polar(center, a, dist), ball, c.Color, n)
	ctx.list.FillCircle(polar(center, a+math.Pi, dist), ball, c.Color, n)
	return true
}

// circlePath replaces the current path by a closed circle of n
// segments.
func (ctx *Context) circlePath(center f32.Point, radius float32, n int) {
	ctx.list.PathClear()
	for i := 0; i < n; i++ {
		ctx.list.PathLineTo(polar(center, float64(i)*twoPi/float64(n), radius))
	}
}
