// SPDX-License-Identifier: Unlicense OR MIT

package spinner

// A generator draws one frame of one motif. It reports whether the
// spinner was visible.
type generator func(ctx *Context, label string, c *Config) bool

// generators is the dispatch table. It is complete: every valid Kind
// has exactly one generator.
var generators = [kindCount]generator{
	KindRainbow:      rainbow,
	KindArc:          arc,
	KindAng:          ang,
	KindDots:         dots,
	KindVDots:        vdots,
	KindBounceDots:   bounceDots,
	KindFadeDots:     fadeDots,
	KindBounceBall:   bounceBall,
	KindAngEclipse:   angEclipse,
	KindIngYang:      ingYang,
	KindBarChartSine: barChartSine,
	KindRotateDots:   rotateDots,
	KindTwinAng:      twinAng,
	KindPulsar:       pulsar,
	KindClock:        clockHands,
	KindGooeyBalls:   gooeyBalls,
}

// Invoke draws the spinner of kind k. The Kind field of c is ignored.
// A kind outside the catalog draws nothing, reserves no space, leaves
// the state untouched and returns false.
func Invoke(ctx *Context, k Kind, label string, c Config) bool {
	if !k.Valid() {
		return false
	}
	c.Kind = k
	return generators[k](ctx, label, &c)
}

// Spin resolves opts and draws the spinner of the resulting kind.
func Spin(ctx *Context, label string, opts ...Option) bool {
	c := Resolve(opts...)
	return Invoke(ctx, c.Kind, label, c)
}
