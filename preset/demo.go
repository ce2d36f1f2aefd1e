// SPDX-License-Identifier: Unlicense OR MIT

package preset

import (
	"math"

	"gioui.org/spinner"
)

func ptr[T any](v T) *T {
	return &v
}

// DemoPresets returns the demo catalog: the classic demo spinners
// followed by one spinner of every other kind.
func DemoPresets() []Preset {
	ang270 := float32(270. / 360. * 2 * math.Pi)
	return []Preset{
		{Label: "Spinner", Kind: "rainbow", Radius: ptr[float32](16), Thickness: ptr[float32](2)},
		{Label: "SpinnerAng", Kind: "ang", Radius: ptr[float32](16), Thickness: ptr[float32](6), Speed: ptr[float32](6),
			Color: "white", BgColor: "white@50%"},
		{Label: "SpinnerDots", Kind: "dots", Radius: ptr[float32](16), Thickness: ptr[float32](4), Speed: ptr[float32](1)},
		{Label: "SpinnerAngNoBg", Kind: "ang", Radius: ptr[float32](16), Thickness: ptr[float32](6), Speed: ptr[float32](6),
			Color: "white", BgColor: "white@0%"},
		{Label: "SpinnerAng270", Kind: "ang", Radius: ptr[float32](16), Thickness: ptr[float32](6), Speed: ptr[float32](6),
			Angle: ptr(ang270), Color: "white", BgColor: "white@50%"},
		{Label: "SpinnerAng270NoBg", Kind: "ang", Radius: ptr[float32](16), Thickness: ptr[float32](6), Speed: ptr[float32](6),
			Angle: ptr(ang270), Color: "white", BgColor: "white@0%"},
		{Label: "SpinnerVDots", Kind: "vdots", Radius: ptr[float32](16), Thickness: ptr[float32](4), Speed: ptr[float32](1)},
		{Label: "SpinnerBounceDots", Kind: "bounce-dots", Thickness: ptr[float32](6), Speed: ptr[float32](6), Dots: ptr(3)},
		{Label: "SpinnerFadeDots", Kind: "fade-dots", Thickness: ptr[float32](6), Speed: ptr[float32](8), Dots: ptr(3)},
		{Label: "SpinnerArc", Kind: "arc", Radius: ptr[float32](16), Thickness: ptr[float32](3), Color: "deepskyblue"},
		{Label: "SpinnerBounceBall", Kind: "bounce-ball", Radius: ptr[float32](16), Thickness: ptr[float32](4),
			Speed: ptr[float32](4), Dots: ptr(1), Color: "orange"},
		{Label: "SpinnerAngEclipse", Kind: "ang-eclipse", Radius: ptr[float32](16), Thickness: ptr[float32](5),
			Speed: ptr[float32](6), Color: "gold"},
		{Label: "SpinnerIngYang", Kind: "ing-yang", Radius: ptr[float32](16), Thickness: ptr[float32](5),
			Delta: ptr[float32](5), Speed: ptr[float32](4), Color: "white", AltColor: "crimson"},
		{Label: "SpinnerBarChartSine", Kind: "bar-chart-sine", Radius: ptr[float32](16), Thickness: ptr[float32](2),
			Speed: ptr[float32](4), Dots: ptr(6), Color: "limegreen"},
		{Label: "SpinnerRotateDots", Kind: "rotate-dots", Radius: ptr[float32](16), Thickness: ptr[float32](3),
			Speed: ptr[float32](2), Dots: ptr(2)},
		{Label: "SpinnerTwinAng", Kind: "twin-ang", Radius: ptr[float32](16), Delta: ptr[float32](5),
			Thickness: ptr[float32](3), Speed: ptr[float32](4), Color: "white", AltColor: "tomato"},
		{Label: "SpinnerPulsar", Kind: "pulsar", Radius: ptr[float32](16), Thickness: ptr[float32](2),
			Speed: ptr[float32](1), Color: "white", BgColor: "skyblue"},
		{Label: "SpinnerClock", Kind: "clock", Radius: ptr[float32](16), Thickness: ptr[float32](2),
			Speed: ptr[float32](4), Color: "white", AltColor: "orangered", BgColor: "dimgray"},
		{Label: "SpinnerGooeyBalls", Kind: "gooey-balls", Radius: ptr[float32](16), Speed: ptr[float32](2),
			Color: "violet"},
	}
}

// DemoFile returns a preset file holding DemoPresets.
func DemoFile() *File {
	return &File{Version: Version, Spinners: DemoPresets()}
}

// FromConfig returns the preset of label that resolves to c. Every
// field is set explicitly.
func FromConfig(label string, c spinner.Config) Preset {
	return Preset{
		Label:        label,
		Kind:         c.Kind.String(),
		Radius:       ptr(c.Radius),
		Speed:        ptr(c.Speed),
		Thickness:    ptr(c.Thickness),
		Color:        FormatColor(c.Color),
		BgColor:      FormatColor(c.BgColor),
		AltColor:     FormatColor(c.AltColor),
		Angle:        ptr(c.Angle),
		AngleMin:     ptr(c.AngleMin),
		AngleMax:     ptr(c.AngleMax),
		Dots:         ptr(c.Dots),
		MidDots:      ptr(c.MidDots),
		MinThickness: ptr(c.MinThickness),
		Reverse:      ptr(c.Reverse),
		Delta:        ptr(c.Delta),
	}
}
