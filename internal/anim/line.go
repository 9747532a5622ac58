package anim

import "github.com/san-kum/povdisplay/internal/surface"

// Rand is the random source an element draws its starting values from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// MaxSpeed bounds each velocity component picked by Reset.
const MaxSpeed = 5

// Point is an integer screen position or velocity.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Line is a segment whose endpoints drift independently and bounce off
// the edges of a W x H area.
type Line struct {
	Toggle
	From, To   Point
	VFrom, VTo Point
	W, H       int
}

// NewLine returns an enabled, never-started line bouncing inside w x h.
func NewLine(w, h int) *Line {
	return &Line{Toggle: Toggle{Enabled: true}, W: w, H: h}
}

// Reset puts the endpoints near the top-left corner with random velocities
// in [1, MaxSpeed] on each axis.
func (l *Line) Reset(rng Rand) {
	l.From = Point{5, 0}
	l.VFrom = Point{rng.Intn(MaxSpeed) + 1, rng.Intn(MaxSpeed) + 1}
	l.To = Point{0, 5}
	l.VTo = Point{rng.Intn(MaxSpeed) + 1, rng.Intn(MaxSpeed) + 1}
}

// Advance moves both endpoints one step. An endpoint outside the area on
// an axis has that velocity component negated; it is not pulled back, so
// it may overshoot by up to one step before returning.
func (l *Line) Advance() {
	l.From = l.From.Add(l.VFrom)
	l.To = l.To.Add(l.VTo)
	bounce(l.From, &l.VFrom, l.W, l.H)
	bounce(l.To, &l.VTo, l.W, l.H)
}

func bounce(p Point, v *Point, w, h int) {
	if p.X < 0 || p.X > w {
		v.X = -v.X
	}
	if p.Y < 0 || p.Y > h {
		v.Y = -v.Y
	}
}

// Render draws the segment into dst.
func (l *Line) Render(dst *surface.Buffer, op surface.Op) {
	dst.Line(l.From.X, l.From.Y, l.To.X, l.To.Y, op)
}
