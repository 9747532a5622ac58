package geom

import (
	"fmt"

	"github.com/san-kum/povdisplay/internal/surface"
)

// MinDepth is the smallest effective depth a vertex is projected with.
// Vertices at or behind the focal plane are clamped to it and flagged so
// their edges can be culled.
const MinDepth = 1e-3

// DefaultHalfExtent is the half side length of the canonical cube.
const DefaultHalfExtent = 100.0

// LineDrawer is the target a solid draws its edges into.
type LineDrawer interface {
	LineF(x0, y0, x1, y1 float64, op surface.Op)
}

// Solid is a named wireframe.
type Solid struct {
	Name     string
	Vertices []Vertex
	Edges    []Edge
}

// Projected is a vertex mapped onto the screen.
type Projected struct {
	X, Y    float64
	Depth   float64
	Clamped bool
}

// NewCube returns a cube centred on the origin with corners at (±half, ±half, ±half).
func NewCube(half float64) Solid {
	v := make([]Vertex, 0, 8)
	for i := 0; i < 8; i++ {
		v = append(v, Vertex{sign(i&1) * half, sign(i&2) * half, sign(i&4) * half})
	}
	// Corners i and j share an edge when their indices differ in exactly one bit.
	e := make([]Edge, 0, 12)
	for i := 0; i < 8; i++ {
		for _, bit := range [3]int{1, 2, 4} {
			if j := i | bit; j != i {
				e = append(e, Edge{i, j})
			}
		}
	}
	return Solid{Name: "cube", Vertices: v, Edges: e}
}

func sign(bit int) float64 {
	if bit != 0 {
		return 1
	}
	return -1
}

// Clone returns a deep copy so the receiver can serve as an untouched template.
func (s Solid) Clone() Solid {
	c := Solid{Name: s.Name, Vertices: make([]Vertex, len(s.Vertices)), Edges: make([]Edge, len(s.Edges))}
	copy(c.Vertices, s.Vertices)
	copy(c.Edges, s.Edges)
	return c
}

// Validate reports an edge that refers to a missing vertex.
func (s Solid) Validate() error {
	for i, e := range s.Edges {
		if e.A < 0 || e.A >= len(s.Vertices) || e.B < 0 || e.B >= len(s.Vertices) {
			return fmt.Errorf("%w: %s edge %d = (%d,%d) with %d vertices", ErrEdgeIndex, s.Name, i, e.A, e.B, len(s.Vertices))
		}
	}
	return nil
}

// Rotate turns every vertex about the solid's own X, then Y, then Z axis.
func (s *Solid) Rotate(ax, ay, az float64) *Solid {
	for i, v := range s.Vertices {
		s.Vertices[i] = v.Rotate(ax, ay, az)
	}
	return s
}

// Translate shifts every vertex by (dx, dy, dz).
func (s *Solid) Translate(dx, dy, dz float64) *Solid {
	d := Vertex{dx, dy, dz}
	for i, v := range s.Vertices {
		s.Vertices[i] = v.Add(d)
	}
	return s
}

// Project maps a point onto a w x h viewport with the eye focal units in
// front of the z = 0 plane. Larger z is further away.
func Project(v Vertex, focal float64, w, h int) Projected {
	p := Projected{Depth: focal + v.Z}
	if p.Depth < MinDepth {
		p.Depth = MinDepth
		p.Clamped = true
	}
	p.X = float64(w)/2 + focal*v.X/p.Depth
	p.Y = float64(h)/2 + focal*v.Y/p.Depth
	return p
}

// Project maps every vertex onto the viewport.
func (s *Solid) Project(focal float64, w, h int) []Projected {
	out := make([]Projected, len(s.Vertices))
	for i, v := range s.Vertices {
		out[i] = Project(v, focal, w, h)
	}
	return out
}

// Draw projects the solid and draws each edge with op. Edges touching a
// clamped vertex are skipped.
func (s *Solid) Draw(dst LineDrawer, focal float64, w, h int, op surface.Op) int {
	pts := s.Project(focal, w, h)
	drawn := 0
	for _, e := range s.Edges {
		if e.A < 0 || e.A >= len(pts) || e.B < 0 || e.B >= len(pts) {
			continue
		}
		a, b := pts[e.A], pts[e.B]
		if a.Clamped || b.Clamped {
			continue
		}
		dst.LineF(a.X, a.Y, b.X, b.Y, op)
		drawn++
	}
	return drawn
}
