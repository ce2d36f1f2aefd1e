// SPDX-License-Identifier: Unlicense OR MIT

package preset

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"gioui.org/spinner/internal/f32color"
)

// ParseColor parses a hex color or a CSS color name, with an optional
// opacity suffix such as "white@50%".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	base, opacity, hasOpacity := strings.Cut(s, "@")
	c, err := parseBase(strings.TrimSpace(base))
	if err != nil {
		return color.NRGBA{}, err
	}
	if hasOpacity {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(opacity), "%"), 32)
		if err != nil || pct < 0 || pct > 100 {
			return color.NRGBA{}, fmt.Errorf("invalid opacity %q", opacity)
		}
		c = f32color.MulAlpha(c, float32(pct/100))
	}
	return c, nil
}

func parseBase(s string) (color.NRGBA, error) {
	if strings.HasPrefix(s, "#") {
		return f32color.ParseHex(s)
	}
	rgba, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	// Named colors are opaque, so no unpremultiplication is needed.
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}, nil
}

// FormatColor returns the CSS name of an opaque named color, or the hex
// form of c.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		for _, name := range colornames.Names {
			rgba := colornames.Map[name]
			if rgba.R == c.R && rgba.G == c.G && rgba.B == c.B {
				return name
			}
		}
	}
	return f32color.Hex(c)
}
