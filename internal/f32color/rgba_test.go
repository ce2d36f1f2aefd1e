// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestMulAlphaBoundary(t *testing.T) {
	for col := 0; col <= 0xFF; col++ {
		for alpha := 0; alpha <= 0xFF; alpha++ {
			in := color.NRGBA{R: uint8(col), A: uint8(alpha)}
			if got := MulAlpha(in, 1); got != in {
				t.Errorf("%v: MulAlpha(1) = %v", in, got)
			}
			if got := MulAlpha(in, 0); got.A != 0 || got.R != in.R {
				t.Errorf("%v: MulAlpha(0) = %v", in, got)
			}
			if got := MulAlpha(in, 2); got != in {
				t.Errorf("%v: MulAlpha(2) = %v, factor not clamped", in, got)
			}
		}
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h, s, v float32
		want    color.NRGBA
	}{
		{0, 1, 1, color.NRGBA{R: 0xff, A: 0xff}},
		{1. / 3, 1, 1, color.NRGBA{G: 0xff, A: 0xff}},
		{2. / 3, 1, 1, color.NRGBA{B: 0xff, A: 0xff}},
		{1, 1, 1, color.NRGBA{R: 0xff, A: 0xff}},
		{-1. / 3, 1, 1, color.NRGBA{B: 0xff, A: 0xff}},
		{.5, 0, .5, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}},
	}
	for _, test := range tests {
		if got := HSV(test.h, test.s, test.v); got != test.want {
			t.Errorf("HSV(%v, %v, %v) = %v, want %v", test.h, test.s, test.v, got, test.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ffffff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#ffffff80", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}},
		{"#f00", color.NRGBA{R: 0xff, A: 0xff}},
		{"#0f08", color.NRGBA{G: 0xff, A: 0x88}},
		{" #102030 ", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
	}
	for _, test := range tests {
		got, err := ParseHex(test.in)
		if err != nil {
			t.Errorf("ParseHex(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseHex(%q) = %v, want %v", test.in, got, test.want)
		}
		if back, _ := ParseHex(Hex(got)); back != got {
			t.Errorf("Hex(%v) does not parse back: %v", got, back)
		}
	}
	for _, bad := range []string{"", "ffffff", "#ff", "#fffff", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) succeeded", bad)
		}
	}
}

var sink color.NRGBA

func BenchmarkHSV(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = HSV(float32(i%360)/360, .8, .8)
	}
}
