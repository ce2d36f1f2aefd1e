// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"gioui.org/f32"
	"gioui.org/spinner/draw"
	"gioui.org/spinner/state"
)

// ID identifies a spinner instance. See Context.ID.
type ID = state.ID

// Style holds the metrics shared by all spinners of a Context.
type Style struct {
	// FramePadding is added around spinner footprints.
	FramePadding f32.Point
	// Segments, if positive, overrides the number of segments used to
	// approximate circles and arcs. It is clamped to [3, MaxSegments].
	Segments int
}

// DefaultStyle returns the style used by NewContext.
func DefaultStyle() Style {
	return Style{FramePadding: f32.Pt(4, 3)}
}

// Context carries the collaborators spinners need to draw a frame.
type Context struct {
	// Layout reserves space for each spinner.
	Layout Layouter
	// Clock supplies the animation time. A nil Clock stands still at 0.
	Clock Clock
	// State holds the persistent state of stateful spinners.
	State *state.Store
	Style Style

	list draw.List
	ids  []ID
}

// NewContext returns a Context drawing to s. A nil surface draws
// nothing and a nil store is replaced by a new, empty one.
func NewContext(s draw.Surface, l Layouter, c Clock, st *state.Store) *Context {
	if st == nil {
		st = new(state.Store)
	}
	ctx := &Context{
		Layout: l,
		Clock:  c,
		State:  st,
		Style:  DefaultStyle(),
	}
	ctx.SetSurface(s)
	return ctx
}

// Surface returns the current drawing surface.
func (c *Context) Surface() draw.Surface {
	return c.list.Surface
}

// SetSurface replaces the drawing surface, typically once per frame. A
// nil surface draws nothing.
func (c *Context) SetSurface(s draw.Surface) {
	if s == nil {
		s = draw.Discard
	}
	c.list.Surface = s
	c.list.PathClear()
}

// PushID opens a scope named label. IDs derived inside the scope differ
// from IDs derived from the same labels in other scopes.
func (c *Context) PushID(label string) {
	c.ids = append(c.ids, c.ID(label))
}

// PopID closes the innermost scope opened by PushID.
func (c *Context) PopID() {
	if len(c.ids) == 0 {
		panic("spinner: PopID without PushID")
	}
	c.ids = c.ids[:len(c.ids)-1]
}

// ID derives the identity of label in the current scope.
func (c *Context) ID(label string) ID {
	var seed ID
	if n := len(c.ids); n > 0 {
		seed = c.ids[n-1]
	}
	return HashID(seed, label)
}

// HashID derives an ID from a label and the ID of its scope. The zero
// seed denotes the outermost scope.
func HashID(seed ID, label string) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	h.Write(buf[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// Time returns the elapsed time of the frame in seconds.
func (c *Context) Time() float64 {
	if c.Clock == nil {
		return 0
	}
	return c.Clock.Elapsed()
}

// Segments returns the number of segments used to approximate a circle
// of the given radius.
func (c *Context) Segments(radius float32) int {
	if c.Style.Segments > 0 {
		return clamp(c.Style.Segments, 3, MaxSegments)
	}
	return circleSegments(radius)
}

// reserve claims size for the spinner labelled label. It returns false
// if the spinner is not visible.
func (c *Context) reserve(label string, size f32.Point) (ID, Placement, bool) {
	id := c.ID(label)
	if c.Layout == nil {
		p := Placement{Visible: true, Size: size}
		return id, p, true
	}
	p := c.Layout.Reserve(id, size)
	return id, p, p.Visible
}

// reserveRadius claims the footprint of a round spinner and returns its
// center.
func (c *Context) reserveRadius(label string, radius float32) (ID, f32.Point, bool) {
	pad := c.Style.FramePadding
	size := f32.Pt(radius*2, (radius+pad.Y)*2)
	id, p, ok := c.reserve(label, size)
	return id, p.Center(), ok
}

// circleSegments approximates a circle within a third of a pixel,
// rounded up to an even count.
func circleSegments(radius float32) int {
	const (
		maxError = .3
		minSegs  = 12
		maxSegs  = 128
	)
	r := float64(radius)
	if !(r > maxError) {
		return minSegs
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-maxError/r)))
	n = (n + 1) / 2 * 2
	return clamp(n, minSegs, maxSegs)
}
