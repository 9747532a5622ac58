package export

import (
	"strings"
	"testing"

	"github.com/san-kum/povdisplay/internal/geom"
	"github.com/san-kum/povdisplay/internal/surface"
)

func TestBufferToSVG_Runs(t *testing.T) {
	b, _ := surface.New(8, 4)
	b.Line(1, 1, 4, 1, surface.OpCopy)
	b.Plot(6, 1, surface.OpCopy)
	b.Plot(0, 3, surface.OpCopy)

	var sb strings.Builder
	if err := BufferToSVG(&sb, b, 2); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if n := strings.Count(out, "<rect x="); n != 3 {
		t.Errorf("expected 3 runs, got %d\n%s", n, out)
	}
	if !strings.Contains(out, `<rect x="2.0" y="2.0" width="8.0" height="2.0"/>`) {
		t.Errorf("missing scaled run in\n%s", out)
	}
	if !strings.Contains(out, `width="16" height="8"`) {
		t.Error("header should carry the scaled size")
	}
}

func TestWireframeToSVG(t *testing.T) {
	s := geom.NewCube(100)
	s.Translate(0, 0, 800)

	var sb strings.Builder
	if err := WireframeToSVG(&sb, &s, 100, 320, 200, Foreground); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), "<line "); n != 12 {
		t.Errorf("expected 12 edges, got %d", n)
	}

	behind := geom.NewCube(100)
	behind.Translate(0, 0, -100.5)
	sb.Reset()
	WireframeToSVG(&sb, &behind, 100, 320, 200, Foreground)
	if n := strings.Count(sb.String(), "<line "); n != 4 {
		t.Errorf("expected 4 edges in front of the viewer, got %d", n)
	}
}
