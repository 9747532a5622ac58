package surface

import "math"

// Line draws a segment between two pixel positions, both inclusive.
func (b *Buffer) Line(x0, y0, x1, y1 int, op Op) {
	b.LineF(float64(x0), float64(y0), float64(x1), float64(y1), op)
}

// LineF draws a segment between two sub-pixel positions. The segment is
// clipped to the buffer before rasterisation, so far-away endpoints cost
// no more than on-screen ones.
func (b *Buffer) LineF(x0, y0, x1, y1 float64, op Op) {
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, float64(b.Width-1), float64(b.Height-1))
	if !ok {
		return
	}
	b.bresenham(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), op)
}

// bresenham plots every pixel of the segment exactly once, which keeps
// OpInvert strokes from cancelling themselves.
func (b *Buffer) bresenham(x0, y0, x1, y1 int, op Op) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		b.Plot(x0, y0, op)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// clipSegment is Liang-Barsky against [0,xmax]x[0,ymax].
func clipSegment(x0, y0, x1, y1, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0, xmax - x0, y0, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
