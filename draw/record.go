// SPDX-License-Identifier: Unlicense OR MIT

package draw

import (
	"fmt"
	"image/color"
	"math"

	"gioui.org/f32"
)

// Op is the type of a recorded command.
type Op uint8

const (
	OpStroke Op = iota
	OpCircle
	OpPoly
	OpLine
)

// Command is one recorded drawing command. Points holds the path of a
// stroke or polygon, the center of a circle, or the two end points of a
// line.
type Command struct {
	Op       Op
	Points   []f32.Point
	Color    color.NRGBA
	Width    float32
	Radius   float32
	Closed   bool
	Segments int
}

// Recorder is a Surface that records commands instead of drawing them.
// The zero value is ready to use.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) StrokePath(points []f32.Point, c color.NRGBA, closed bool, width float32) {
	r.Commands = append(r.Commands, Command{
		Op:     OpStroke,
		Points: append([]f32.Point(nil), points...),
		Color:  c,
		Width:  width,
		Closed: closed,
	})
}

func (r *Recorder) FillCircle(center f32.Point, radius float32, c color.NRGBA, segments int) {
	r.Commands = append(r.Commands, Command{
		Op:       OpCircle,
		Points:   []f32.Point{center},
		Color:    c,
		Radius:   radius,
		Segments: segments,
	})
}

func (r *Recorder) FillConvexPoly(points []f32.Point, c color.NRGBA) {
	r.Commands = append(r.Commands, Command{
		Op:     OpPoly,
		Points: append([]f32.Point(nil), points...),
		Color:  c,
	})
}

func (r *Recorder) Line(from, to f32.Point, c color.NRGBA, width float32) {
	r.Commands = append(r.Commands, Command{
		Op:     OpLine,
		Points: []f32.Point{from, to},
		Color:  c,
		Width:  width,
	})
}

// Reset discards the recorded commands, keeping the allocated storage.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns the number of recorded commands of type op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Replay issues the recorded commands to s in recording order.
func (r *Recorder) Replay(s Surface) {
	for _, c := range r.Commands {
		switch c.Op {
		case OpStroke:
			s.StrokePath(c.Points, c.Color, c.Closed, c.Width)
		case OpCircle:
			s.FillCircle(c.Points[0], c.Radius, c.Color, c.Segments)
		case OpPoly:
			s.FillConvexPoly(c.Points, c.Color)
		case OpLine:
			s.Line(c.Points[0], c.Points[1], c.Color, c.Width)
		}
	}
}

// Equal reports whether two commands are identical, comparing floats
// bit for bit: NaN equals itself and -0 differs from +0.
func (c Command) Equal(o Command) bool {
	if c.Op != o.Op || c.Color != o.Color || !sameFloat(c.Width, o.Width) ||
		!sameFloat(c.Radius, o.Radius) || c.Closed != o.Closed || c.Segments != o.Segments ||
		len(c.Points) != len(o.Points) {
		return false
	}
	for i, p := range c.Points {
		q := o.Points[i]
		if !sameFloat(p.X, q.X) || !sameFloat(p.Y, q.Y) {
			return false
		}
	}
	return true
}

func sameFloat(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

func (o Op) String() string {
	switch o {
	case OpStroke:
		return "Stroke"
	case OpCircle:
		return "Circle"
	case OpPoly:
		return "Poly"
	case OpLine:
		return "Line"
	default:
		panic(fmt.Sprintf("unknown Op %d", o))
	}
}

var _ Surface = (*Recorder)(nil)
