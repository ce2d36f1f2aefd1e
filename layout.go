// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"image"

	"gioui.org/f32"
)

// Placement is the outcome of reserving space for a widget.
type Placement struct {
	// Visible is false if the widget is clipped or skipped by the host,
	// in which case the widget must not draw.
	Visible bool
	// Min is the top-left corner of the reserved rectangle.
	Min f32.Point
	// Size of the reserved rectangle.
	Size f32.Point
}

// Center returns the center of the reserved rectangle.
func (p Placement) Center() f32.Point {
	return p.Min.Add(p.Size.Mul(.5))
}

// Max returns the bottom-right corner of the reserved rectangle.
func (p Placement) Max() f32.Point {
	return p.Min.Add(p.Size)
}

// Layouter reserves screen space for widgets. Reserve is called exactly
// once per drawn widget and frame, and commits the space whether or not
// the widget turns out to be visible.
type Layouter interface {
	Reserve(id ID, size f32.Point) Placement
}

// Flow is a Layouter placing widgets left to right in rows. The zero
// value places widgets from the origin without wrapping and treats
// every widget as visible.
type Flow struct {
	// Origin is the top-left corner of the first row.
	Origin f32.Point
	// Spacing separates consecutive widgets and rows.
	Spacing f32.Point
	// Width is the row width after which widgets wrap to a new row.
	// Zero disables wrapping.
	Width float32
	// Viewport, if not empty, is the visible area in pixels. Widgets
	// not overlapping it are reported invisible.
	Viewport image.Rectangle

	cursor f32.Point
	lineH  float32
	extent f32.Point
}

func (f *Flow) Reserve(id ID, size f32.Point) Placement {
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)
	if f.Width > 0 && f.cursor.X > 0 && f.cursor.X+size.X > f.Width {
		f.NewLine()
	}
	p := Placement{
		Min:  f.Origin.Add(f.cursor),
		Size: size,
	}
	f.cursor.X += size.X + f.Spacing.X
	f.lineH = max(f.lineH, size.Y)
	f.extent.X = max(f.extent.X, f.cursor.X-f.Spacing.X)
	f.extent.Y = max(f.extent.Y, f.cursor.Y+f.lineH)
	p.Visible = f.visible(p.Min, p.Max())
	return p
}

// NewLine moves the cursor to the start of the next row.
func (f *Flow) NewLine() {
	if f.cursor.X == 0 && f.lineH == 0 {
		return
	}
	f.cursor.X = 0
	f.cursor.Y += f.lineH + f.Spacing.Y
	f.lineH = 0
}

// Extent returns the size of the area covered by the widgets placed so
// far.
func (f *Flow) Extent() f32.Point {
	return f.extent
}

// Reset moves the cursor back to the origin for the next frame.
func (f *Flow) Reset() {
	f.cursor = f32.Point{}
	f.lineH = 0
	f.extent = f32.Point{}
}

func (f *Flow) visible(lo, hi f32.Point) bool {
	v := f.Viewport
	if v.Empty() {
		return true
	}
	return lo.X < float32(v.Max.X) && hi.X > float32(v.Min.X) &&
		lo.Y < float32(v.Max.Y) && hi.Y > float32(v.Min.Y)
}
