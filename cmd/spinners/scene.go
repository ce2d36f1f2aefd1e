// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/spinner"
	"gioui.org/spinner/draw"
	"gioui.org/spinner/raster"
)

// Margins of a scene, in pixels.
const (
	sceneMargin  = 8
	sceneSpacing = 8
)

// scene lays out a list of spinners in rows and renders them frame by
// frame into an image.
type scene struct {
	presets []namedConfig
	flow    spinner.Flow
	ctx     *spinner.Context
	rec     draw.Recorder
	raster  raster.Rasterizer
	bg      color.NRGBA
	size    image.Point
	img     *image.RGBA
}

// newScene prepares a scene wrapping rows at width pixels. Zero width
// places every spinner on one row.
func newScene(presets []namedConfig, width int, bg color.NRGBA) *scene {
	s := &scene{
		presets: presets,
		bg:      bg,
		flow: spinner.Flow{
			Origin:  f32.Pt(sceneMargin, sceneMargin),
			Spacing: f32.Pt(sceneSpacing, sceneSpacing),
		},
	}
	if width > 0 {
		s.flow.Width = float32(width - sceneMargin)
	}
	s.ctx = spinner.NewContext(&s.rec, &s.flow, spinner.FixedClock(0), nil)

	// Measure with a throwaway state so that the first frame starts
	// from fresh state.
	measure := spinner.NewContext(draw.Discard, &s.flow, spinner.FixedClock(0), nil)
	s.layout(measure)
	ext := s.flow.Extent()
	s.size = image.Pt(
		int(math.Ceil(float64(ext.X)))+sceneMargin,
		int(math.Ceil(float64(ext.Y)))+sceneMargin,
	)
	if width > s.size.X {
		s.size.X = width
	}
	s.img = image.NewRGBA(image.Rectangle{Max: s.size})
	return s
}

func (s *scene) layout(ctx *spinner.Context) {
	s.flow.Reset()
	for _, p := range s.presets {
		spinner.Invoke(ctx, p.Config.Kind, p.Label, p.Config)
	}
}

// frame renders the scene at time t seconds. The returned image is
// reused by the next call.
func (s *scene) frame(t float64) *image.RGBA {
	s.rec.Reset()
	s.ctx.Clock = spinner.FixedClock(t)
	s.layout(s.ctx)
	s.raster.Frame(&s.rec, s.img, s.bg)
	return s.img
}
