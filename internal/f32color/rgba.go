// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color implements the color arithmetic shared by the
// spinner generators and render sinks.
package f32color

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var errHexSyntax = errors.New("expected #rgb, #rgba, #rrggbb or #rrggbbaa")

// MulAlpha scales the alpha channel of c by a. The factor is clamped
// to [0, 1].
func MulAlpha(c color.NRGBA, a float32) color.NRGBA {
	c.A = uint8(float32(c.A)*clamp1(a) + .5)
	return c
}

// HSV converts hue, saturation and value, each in [0, 1], to an opaque
// color. Hue wraps around so any real value is accepted.
func HSV(h, s, v float32) color.NRGBA {
	s, v = clamp1(s), clamp1(v)
	if s == 0 {
		g := uint8(v*0xff + .5)
		return color.NRGBA{R: g, G: g, B: g, A: 0xff}
	}
	h -= float32(math.Floor(float64(h)))
	h *= 6
	i := int(h)
	f := h - float32(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float32
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.NRGBA{R: unit(r), G: unit(g), B: unit(b), A: 0xff}
}

// ParseHex parses a CSS style hex color. Missing alpha means opaque.
func ParseHex(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("f32color: %q: %w", s, errHexSyntax)
	}
	switch len(hex) {
	case 3, 4:
		var long strings.Builder
		for _, r := range hex {
			long.WriteRune(r)
			long.WriteRune(r)
		}
		hex = long.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("f32color: %q: %w", s, errHexSyntax)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("f32color: %q: %w", s, errHexSyntax)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as #rrggbbaa.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func unit(v float32) uint8 {
	return uint8(clamp1(v)*0xff + .5)
}

func clamp1(v float32) float32 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	}
	return v
}
