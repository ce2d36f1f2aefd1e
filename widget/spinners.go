// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/spinner"
	"gioui.org/spinner/draw"
	"gioui.org/spinner/state"
)

// Spinners draws spinners in a Gio window. It owns the persistent state
// and the animation clock of the spinners of one window. The zero value
// is ready to use; the clock starts at the first call to Layout.
type Spinners struct {
	// Style is applied to every spinner. The zero Style is replaced by
	// spinner.DefaultStyle.
	Style spinner.Style

	store state.Store
	start time.Time
	ctx   *spinner.Context
	host  host
}

// Layout draws the spinner labelled label with the given options. The
// spinner occupies its natural size, constrained by gtx.
func (s *Spinners) Layout(gtx layout.Context, label string, opts ...spinner.Option) layout.Dimensions {
	return s.LayoutConfig(gtx, label, spinner.Resolve(opts...))
}

// LayoutConfig is like Layout for a resolved configuration. A kind
// outside the catalog lays out as an empty widget.
func (s *Spinners) LayoutConfig(gtx layout.Context, label string, c spinner.Config) layout.Dimensions {
	ctx := s.context(gtx)
	s.host = host{visible: gtx.Constraints.Max.X > 0 && gtx.Constraints.Max.Y > 0}
	if !spinner.Invoke(ctx, c.Kind, label, c) {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	op.InvalidateOp{}.Add(gtx.Ops)
	sz := image.Pt(int(math.Ceil(float64(s.host.size.X))), int(math.Ceil(float64(s.host.size.Y))))
	return layout.Dimensions{Size: gtx.Constraints.Constrain(sz)}
}

// Context returns the spinner context of the current frame, for
// scoping labels with PushID and PopID. Before the first Layout it draws
// nothing.
func (s *Spinners) Context() *spinner.Context {
	if s.ctx == nil {
		s.ctx = spinner.NewContext(draw.Discard, &s.host, nil, &s.store)
	}
	return s.ctx
}

// State returns the persistent state of the spinners.
func (s *Spinners) State() *state.Store {
	return &s.store
}

func (s *Spinners) context(gtx layout.Context) *spinner.Context {
	if s.start.IsZero() {
		s.start = gtx.Now
	}
	ctx := s.Context()
	if s.Style == (spinner.Style{}) {
		ctx.Style = spinner.DefaultStyle()
	} else {
		ctx.Style = s.Style
	}
	elapsed := gtx.Now.Sub(s.start).Seconds()
	ctx.Clock = spinner.FixedClock(elapsed)
	ctx.SetSurface(Surface{Ops: gtx.Ops})
	return ctx
}

// host is the Layouter of a single widget: the spinner is placed at the
// origin of the widget and is visible if the widget is.
type host struct {
	visible bool
	size    f32.Point
}

func (h *host) Reserve(id spinner.ID, size f32.Point) spinner.Placement {
	h.size = size
	return spinner.Placement{Visible: h.visible, Size: size}
}
