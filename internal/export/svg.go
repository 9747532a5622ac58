// Package export writes frames as SVG, either pixel for pixel or as the
// cube's vector wireframe.
package export

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/san-kum/povdisplay/internal/geom"
)

const (
	Background = "#0a0a0a"
	Foreground = "#00ff00"
)

// Pixels is the read side of a frame buffer. *surface.Buffer satisfies it.
type Pixels interface {
	Bounds() image.Rectangle
	Lit(x, y int) bool
}

// BufferToSVG writes the lit pixels of b, scale units per pixel. Runs of
// lit pixels on a row become a single rect.
func BufferToSVG(w io.Writer, b Pixels, scale float64) error {
	r := b.Bounds()
	width, height := float64(r.Dx())*scale, float64(r.Dy())*scale

	var sb strings.Builder
	header(&sb, width, height)
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", Foreground))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; {
			if !b.Lit(x, y) {
				x++
				continue
			}
			start := x
			for x < r.Max.X && b.Lit(x, y) {
				x++
			}
			sb.WriteString(fmt.Sprintf("<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\"/>\n",
				float64(start-r.Min.X)*scale, float64(y-r.Min.Y)*scale, float64(x-start)*scale, scale))
		}
	}
	sb.WriteString("</g>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WireframeToSVG projects s onto a w x h screen and writes each surviving
// edge as a line. Edges with an endpoint behind the viewer are left out,
// as they are on screen.
func WireframeToSVG(out io.Writer, s *geom.Solid, focal float64, w, h int, stroke string) error {
	pts := s.Project(focal, w, h)

	var sb strings.Builder
	header(&sb, float64(w), float64(h))
	sb.WriteString(fmt.Sprintf("<g stroke=\"%s\" stroke-width=\"1.5\" stroke-linecap=\"round\">\n", stroke))
	for _, e := range s.Edges {
		a, b := pts[e.A], pts[e.B]
		if a.Clamped || b.Clamped {
			continue
		}
		sb.WriteString(fmt.Sprintf("<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\"/>\n", a.X, a.Y, b.X, b.Y))
	}
	sb.WriteString("</g>\n</svg>\n")
	_, err := io.WriteString(out, sb.String())
	return err
}

func header(sb *strings.Builder, width, height float64) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, Background))
}
