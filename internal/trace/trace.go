// Package trace steps a display headless and samples each frame for
// plotting in the terminal.
package trace

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/povdisplay/internal/display"
	"github.com/san-kum/povdisplay/internal/surface"
)

// Sample describes the buffer after one tick, before it is presented.
type Sample struct {
	Frame    uint64
	Lit      int
	Coverage float64 // percent of pixels lit
	Depth    float64 // nearest cube vertex, NaN when the cube is off
	Edges    int     // cube edges that survive culling
}

type Trace struct {
	Width, Height int
	Samples       []Sample
}

// Run starts the animation on d and samples the next n frames. Each frame
// is presented into a scratch buffer so background erase behaves as it
// does on screen.
func Run(d *display.Display, n int) (*Trace, error) {
	buf := d.Buffer()
	sink, err := surface.NewLike(buf)
	if err != nil {
		return nil, err
	}
	tr := &Trace{Width: buf.Width, Height: buf.Height, Samples: make([]Sample, 0, n)}

	d.StartAnimation()
	for i := 0; i < n; i++ {
		if !d.NextFrame() {
			continue
		}
		tr.Samples = append(tr.Samples, sample(d))
		d.Present(sink)
	}
	return tr, nil
}

func sample(d *display.Display) Sample {
	buf := d.Buffer()
	lit := buf.Count()
	s := Sample{
		Frame:    d.Frame(),
		Lit:      lit,
		Coverage: 100 * float64(lit) / float64(buf.Width*buf.Height),
		Depth:    math.NaN(),
	}
	cube := d.Cube()
	if !cube.Active() {
		return s
	}
	solid := cube.Solid()
	pts := solid.Project(cube.Focal, buf.Width, buf.Height)
	s.Depth = math.Inf(1)
	for _, p := range pts {
		s.Depth = math.Min(s.Depth, p.Depth)
	}
	for _, e := range solid.Edges {
		if !pts[e.A].Clamped && !pts[e.B].Clamped {
			s.Edges++
		}
	}
	return s
}

// Coverage returns the lit percentage series.
func (t *Trace) Coverage() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Coverage
	}
	return out
}

// Depth returns the nearest-vertex series, skipping frames without a cube.
func (t *Trace) Depth() []float64 {
	out := make([]float64, 0, len(t.Samples))
	for _, s := range t.Samples {
		if !math.IsNaN(s.Depth) {
			out = append(out, s.Depth)
		}
	}
	return out
}

// Plot renders the coverage chart and, when the cube ran, the depth chart.
// width is the plot width in columns; zero lets asciigraph use one column
// per sample.
func (t *Trace) Plot(width, height int) (string, error) {
	cov := t.Coverage()
	if len(cov) < 2 {
		return "", ErrTooShort
	}
	var b strings.Builder
	b.WriteString(asciigraph.Plot(cov,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption("lit pixels (%)")))
	if depth := t.Depth(); len(depth) >= 2 {
		b.WriteString("\n\n")
		b.WriteString(asciigraph.Plot(depth,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption("nearest cube vertex depth")))
	}
	b.WriteString("\n")
	return b.String(), nil
}

// Summary is a one-line digest of the coverage series.
func (t *Trace) Summary() string {
	if len(t.Samples) == 0 {
		return "no frames"
	}
	lo, hi, sum := math.Inf(1), math.Inf(-1), 0.0
	for _, s := range t.Samples {
		lo = math.Min(lo, s.Coverage)
		hi = math.Max(hi, s.Coverage)
		sum += s.Coverage
	}
	return fmt.Sprintf("%d frames at %dx%d, coverage min %.2f%% max %.2f%% mean %.2f%%",
		len(t.Samples), t.Width, t.Height, lo, hi, sum/float64(len(t.Samples)))
}
