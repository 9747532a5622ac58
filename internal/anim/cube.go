package anim

import (
	"github.com/san-kum/povdisplay/internal/geom"
	"github.com/san-kum/povdisplay/internal/surface"
)

// Per-tick rotation increments. The rates differ so the tumble does not
// visibly repeat over a short period.
const (
	SpinX = 0.04
	SpinY = 0.03
	SpinZ = 0.02
)

const (
	DefaultFocal = 100.0
	DefaultDepth = 800.0
)

// Cube tumbles a wireframe template about its own centre and draws it at
// a world offset.
type Cube struct {
	Toggle
	Offset geom.Vertex
	Angle  geom.Vertex
	Home   geom.Vertex
	Focal  float64

	template geom.Solid
}

// NewCube returns an enabled, never-started cube of the given half extent
// that resets to DefaultDepth in front of the viewer.
func NewCube(half, focal float64) *Cube {
	c, _ := NewSolid(geom.NewCube(half), focal)
	return c
}

// NewSolid is NewCube for an arbitrary wireframe. It fails if an edge
// refers to a vertex the template does not have.
func NewSolid(template geom.Solid, focal float64) (*Cube, error) {
	if err := template.Validate(); err != nil {
		return nil, err
	}
	return &Cube{
		Toggle:   Toggle{Enabled: true},
		Home:     geom.Vertex{Z: DefaultDepth},
		Focal:    focal,
		template: template.Clone(),
	}, nil
}

// Reset returns the cube to its home offset with no rotation.
func (c *Cube) Reset() {
	c.Offset = c.Home
	c.Angle = geom.Vertex{}
}

// Advance accumulates one tick of rotation.
func (c *Cube) Advance() {
	c.Angle.X += SpinX
	c.Angle.Y += SpinY
	c.Angle.Z += SpinZ
}

// Translate nudges the offset without touching rotation. A cube that was
// never started is reset first so the nudge survives its first start.
func (c *Cube) Translate(dx, dy, dz float64) {
	if c.phase == Uninitialized {
		c.Reset()
		c.phase = Paused
	}
	c.Offset = c.Offset.Add(geom.Vertex{X: dx, Y: dy, Z: dz})
}

// Solid returns a copy of the template rotated and then translated by the
// current state.
func (c *Cube) Solid() geom.Solid {
	s := c.template.Clone()
	s.Rotate(c.Angle.X, c.Angle.Y, c.Angle.Z).Translate(c.Offset.X, c.Offset.Y, c.Offset.Z)
	return s
}

// Render draws the current pose into dst and returns the number of edges drawn.
func (c *Cube) Render(dst *surface.Buffer, op surface.Op) int {
	s := c.Solid()
	return s.Draw(dst, c.Focal, dst.Width, dst.Height, op)
}
