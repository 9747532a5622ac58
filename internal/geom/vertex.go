package geom

import "math"

// Vertex is a point in object-local space.
type Vertex struct {
	X, Y, Z float64
}

func (v Vertex) Add(o Vertex) Vertex    { return Vertex{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vertex) Sub(o Vertex) Vertex    { return Vertex{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vertex) Scale(s float64) Vertex { return Vertex{v.X * s, v.Y * s, v.Z * s} }
func (v Vertex) Length() float64        { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vertex) Dist(o Vertex) float64  { return v.Sub(o).Length() }

// Rotate turns v about the X axis, then Y, then Z.
func (v Vertex) Rotate(ax, ay, az float64) Vertex {
	cx, sx := math.Cos(ax), math.Sin(ax)
	v.Y, v.Z = v.Y*cx-v.Z*sx, v.Y*sx+v.Z*cx
	cy, sy := math.Cos(ay), math.Sin(ay)
	v.X, v.Z = v.X*cy+v.Z*sy, -v.X*sy+v.Z*cy
	cz, sz := math.Cos(az), math.Sin(az)
	v.X, v.Y = v.X*cz-v.Y*sz, v.X*sz+v.Y*cz
	return v
}

// Edge joins two vertices of a solid by index.
type Edge struct {
	A, B int
}
