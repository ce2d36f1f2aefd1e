// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"image/color"
	"math"
)

// Config is the complete parameter record of a spinner. Generators
// receive a fully populated Config; fields a motif does not use are
// ignored.
type Config struct {
	// Kind selects the motif. Default KindRainbow.
	Kind Kind
	// Radius of the spinner in pixels. Default 16.
	Radius float32
	// Speed multiplies the elapsed time. Default 1.
	Speed float32
	// Thickness of strokes, or the radius of dots, in pixels. Default 1.
	Thickness float32
	// Color is the primary color. Default opaque white.
	Color color.NRGBA
	// BgColor is the secondary color, used for background rings and
	// echoes. Default white at half opacity.
	BgColor color.NRGBA
	// AltColor is the tertiary color, used by motifs with two moving
	// parts. Default opaque white.
	AltColor color.NRGBA
	// Angle is the sweep of arcs in radians. Default π.
	Angle float32
	// AngleMin and AngleMax bound the sweep of arcs that grow and
	// shrink. Default 0 and 2π.
	AngleMin, AngleMax float32
	// Dots is the number of dots, bars or balls, at most MaxDots.
	// Default 12.
	Dots int
	// MidDots is the length of the highlighted run of dots. Default 6.
	MidDots int
	// MinThickness is the lower bound of pulsing widths. Default 0.
	MinThickness float32
	// Reverse inverts the direction of rotation. Default false.
	Reverse bool
	// Delta is a motif specific offset, such as the radius difference of
	// twin rings. Default 0.
	Delta float32
	// FloatPtr optionally points to caller owned animation state that
	// replaces the spinner's own slot. Default nil.
	FloatPtr *float32
}

// MaxDots bounds the number of dots drawn by a single spinner.
const MaxDots = 32

// MaxSegments bounds the segment count set by Style.Segments.
const MaxSegments = 32

// An Option sets one field of a Config.
type Option interface {
	applyOption(c *Config)
}

type (
	// Radius sets Config.Radius.
	Radius float32
	// Speed sets Config.Speed.
	Speed float32
	// Thickness sets Config.Thickness.
	Thickness float32
	// Color sets Config.Color.
	Color color.NRGBA
	// BgColor sets Config.BgColor.
	BgColor color.NRGBA
	// AltColor sets Config.AltColor.
	AltColor color.NRGBA
	// Angle sets Config.Angle.
	Angle float32
	// AngleMin sets Config.AngleMin.
	AngleMin float32
	// AngleMax sets Config.AngleMax.
	AngleMax float32
	// Dots sets Config.Dots.
	Dots int
	// MidDots sets Config.MidDots.
	MidDots int
	// MinThickness sets Config.MinThickness.
	MinThickness float32
	// Reverse sets Config.Reverse.
	Reverse bool
	// Delta sets Config.Delta.
	Delta float32
)

// FloatPtr sets Config.FloatPtr.
type FloatPtr struct {
	Ptr *float32
}

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	halfWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
)

// DefaultConfig returns the record every resolution starts from.
func DefaultConfig() Config {
	return Config{
		Kind:      KindRainbow,
		Radius:    16,
		Speed:     1,
		Thickness: 1,
		Color:     white,
		BgColor:   halfWhite,
		AltColor:  white,
		Angle:     math.Pi,
		AngleMin:  0,
		AngleMax:  2 * math.Pi,
		Dots:      12,
		MidDots:   6,
	}
}

// Resolve applies opts in order to the default Config. Nil options are
// skipped.
func Resolve(opts ...Option) Config {
	c := DefaultConfig()
	c.Apply(opts...)
	return c
}

// NewConfig is like Resolve, with the kind set before opts are applied.
func NewConfig(k Kind, opts ...Option) Config {
	c := DefaultConfig()
	c.Kind = k
	c.Apply(opts...)
	return c
}

// Apply applies opts in order to c.
func (c *Config) Apply(opts ...Option) {
	for _, o := range opts {
		if o != nil {
			o.applyOption(c)
		}
	}
}

// Options returns the options that resolve to c.
func (c Config) Options() []Option {
	opts := []Option{
		c.Kind,
		Radius(c.Radius),
		Speed(c.Speed),
		Thickness(c.Thickness),
		Color(c.Color),
		BgColor(c.BgColor),
		AltColor(c.AltColor),
		Angle(c.Angle),
		AngleMin(c.AngleMin),
		AngleMax(c.AngleMax),
		Dots(c.Dots),
		MidDots(c.MidDots),
		MinThickness(c.MinThickness),
		Reverse(c.Reverse),
		Delta(c.Delta),
	}
	if c.FloatPtr != nil {
		opts = append(opts, FloatPtr{Ptr: c.FloatPtr})
	}
	return opts
}

func (k Kind) applyOption(c *Config)         { c.Kind = k }
func (r Radius) applyOption(c *Config)       { c.Radius = float32(r) }
func (s Speed) applyOption(c *Config)        { c.Speed = float32(s) }
func (t Thickness) applyOption(c *Config)    { c.Thickness = float32(t) }
func (col Color) applyOption(c *Config)      { c.Color = color.NRGBA(col) }
func (col BgColor) applyOption(c *Config)    { c.BgColor = color.NRGBA(col) }
func (col AltColor) applyOption(c *Config)   { c.AltColor = color.NRGBA(col) }
func (a Angle) applyOption(c *Config)        { c.Angle = float32(a) }
func (a AngleMin) applyOption(c *Config)     { c.AngleMin = float32(a) }
func (a AngleMax) applyOption(c *Config)     { c.AngleMax = float32(a) }
func (d Dots) applyOption(c *Config)         { c.Dots = int(d) }
func (d MidDots) applyOption(c *Config)      { c.MidDots = int(d) }
func (t MinThickness) applyOption(c *Config) { c.MinThickness = float32(t) }
func (r Reverse) applyOption(c *Config)      { c.Reverse = bool(r) }
func (d Delta) applyOption(c *Config)        { c.Delta = float32(d) }
func (p FloatPtr) applyOption(c *Config)     { c.FloatPtr = p.Ptr }
