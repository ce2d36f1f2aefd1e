// SPDX-License-Identifier: Unlicense OR MIT

package spinner

import (
	"image/color"
	"math"

	"gioui.org/spinner/state"
)

// State slots of the stateful motifs.
const (
	slotNextDot         state.Slot = "nextdot"
	slotVelocity        state.Slot = "velocity"
	slotPhaseTime       state.Slot = "phase-time"
	slotSecondaryRadius state.Slot = "secondary-radius"
)

// DotsRing draws a ring of dots in which a run of mdots dots swells and
// travels around the ring. The position of the run is kept in the
// spinner's state, or in *nextdot if nextdot is not nil; a negative
// position restarts the run.
func DotsRing(ctx *Context, label string, nextdot *float32, radius, thickness float32, col color.NRGBA, speed float32, count, mdots int) bool {
	c := NewConfig(KindDots, FloatPtr{Ptr: nextdot}, Radius(radius), Thickness(thickness),
		Color(col), Speed(speed), Dots(count), MidDots(mdots))
	return dots(ctx, label, &c)
}

// VDots draws a rotating ring of dots overlaid by an arc spanning mdots
// of them.
func VDots(ctx *Context, label string, radius, thickness float32, col color.NRGBA, speed float32, dots, mdots int) bool {
	c := NewConfig(KindVDots, Radius(radius), Thickness(thickness), Color(col),
		Speed(speed), Dots(dots), MidDots(mdots))
	return vdots(ctx, label, &c)
}

// RotateDots draws dots orbiting a center dot. The orbit accelerates
// and brakes periodically; its velocity is kept in the spinner's state.
func RotateDots(ctx *Context, label string, radius, thickness float32, col color.NRGBA, speed float32, dots int) bool {
	c := NewConfig(KindRotateDots, Radius(radius), Thickness(thickness), Color(col),
		Speed(speed), Dots(dots))
	return rotateDots(ctx, label, &c)
}

// nextDotStep is the distance the swelling run of Dots travels per
// frame and unit of speed.
const nextDotStep = .07

func dots(ctx *Context, label string, c *Config) bool {
	id, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	n := clampDots(c.Dots)
	if n == 0 {
		return true
	}
	start := ctx.Time() * float64(c.Speed)
	next := ctx.loadFloat(id, slotNextDot, -1, c.FloatPtr)
	if next < 0 {
		next = float32(n)
	}
	half := c.Thickness / 2
	run := float32(c.MidDots)
	step := twoPi / float64(n)
	for i := 0; i < n; i++ {
		a := math.Mod(start+float64(i)*step, twoPi)
		th := half
		if d, ok := runOffset(float32(i), next, run, float32(n)); ok {
			th = max(half, float32(pulse(0, float64(d/run)*math.Pi))*c.Thickness)
		}
		ctx.list.FillCircle(polar(center, -a, c.Radius), th, c.Color, dotSegments)
	}
	next -= nextDotStep * c.Speed
	if c.Speed < 0 && next >= float32(n) {
		// Reversed runs travel up and wrap around the ring.
		next = float32(math.Mod(float64(next), float64(n)))
	}
	ctx.storeFloat(id, slotNextDot, next, c.FloatPtr)
	return true
}

// runOffset reports whether dot i of a ring of n dots lies strictly
// inside the run of length run starting at next, and its distance from
// the start of the run. A run starting at or past n is empty.
func runOffset(i, next, run, n float32) (float32, bool) {
	if run <= 0 || next >= n {
		return 0, false
	}
	d := i - next
	if d < 0 && next+run >= n {
		d += n
	}
	return d, d > 0 && d < run
}

func vdots(ctx *Context, label string, c *Config) bool {
	_, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	n := clampDots(c.Dots)
	if n == 0 {
		return true
	}
	start := ctx.Time() * float64(c.Speed)
	step := twoPi / float64(n)
	for i := 0; i < n; i++ {
		a := math.Mod(start+float64(i)*step, twoPi)
		ctx.list.FillCircle(polar(center, -a, c.Radius), c.Thickness/2, c.Color, dotSegments)
	}
	sweep := float64(clamp(c.MidDots, 0, n)) / float64(n) * twoPi
	ctx.list.PathClear()
	ctx.arcPath(center, c.Radius, start, sweep, n)
	ctx.list.PathStroke(c.Color, false, c.Thickness)
	return true
}

// Velocity bounds of RotateDots, in radians per frame.
const (
	minVelocity = .01
	maxVelocity = .1
)

// motion is the state of the inertial orbit of RotateDots.
type motion uint8

const (
	coasting motion = iota
	accelerating
	braking
)

// motionAt returns the motion for the phase within the current half
// turn.
func motionAt(dtime float64) motion {
	switch {
	case dtime > 0 && dtime < math.Pi/2:
		return accelerating
	case dtime > math.Pi*.9 && dtime < math.Pi:
		return braking
	}
	return coasting
}

// inertia advances the orbit by one frame. The returned velocity is
// always within [minVelocity, maxVelocity] and the phase within [0, 2π).
func inertia(velocity, phase, speed float32) (float32, float32) {
	switch motionAt(math.Mod(float64(phase), math.Pi)) {
	case accelerating:
		velocity += .001 * speed
	case braking:
		velocity -= .01 * speed
	}
	velocity = clamp(velocity, minVelocity, maxVelocity)
	if velocity != velocity {
		velocity = minVelocity
	}
	phase = float32(math.Mod(float64(phase+velocity), twoPi))
	if !(phase >= 0) {
		phase = 0
	}
	return velocity, phase
}

func rotateDots(ctx *Context, label string, c *Config) bool {
	id, center, ok := ctx.reserveRadius(label, c.Radius)
	if !ok {
		return false
	}
	st := ctx.store()
	velocity := st.Float(id, slotVelocity, 0)
	phase := st.Float(id, slotPhaseTime, 0)
	velocity, phase = inertia(velocity, phase, c.Speed)
	st.SetFloat(id, slotVelocity, velocity)
	st.SetFloat(id, slotPhaseTime, phase)

	ctx.list.FillCircle(center, c.Thickness, c.Color, dotSegments)
	n := clampDots(c.Dots)
	start := float64(phase) * direction(c.Reverse)
	for i := 0; i < n; i++ {
		a := start + float64(i)*twoPi/float64(n)
		ctx.list.FillCircle(polar(center, a, c.Radius), c.Thickness, c.Color, dotSegments)
	}
	return true
}

func (ctx *Context) store() *state.Store {
	if ctx.State == nil {
		ctx.State = new(state.Store)
	}
	return ctx.State
}

// loadFloat reads a slot, or *ptr if ptr is not nil.
func (ctx *Context) loadFloat(id ID, slot state.Slot, def float32, ptr *float32) float32 {
	if ptr != nil {
		return *ptr
	}
	return ctx.store().Float(id, slot, def)
}

// storeFloat writes a slot, or *ptr if ptr is not nil.
func (ctx *Context) storeFloat(id ID, slot state.Slot, v float32, ptr *float32) {
	if ptr != nil {
		*ptr = v
		return
	}
	ctx.store().SetFloat(id, slot, v)
}
