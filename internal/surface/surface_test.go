package surface

import (
	"errors"
	"math"
	"testing"
)

func TestNew_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 5},
		{"too wide", MaxDim + 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
		})
	}
}

func TestLine_Endpoints(t *testing.T) {
	b, _ := New(16, 16)
	b.Line(1, 2, 10, 7, OpCopy)

	if !b.Lit(1, 2) || !b.Lit(10, 7) {
		t.Error("expected both endpoints lit")
	}
	if b.Count() != 10 {
		t.Errorf("expected 10 pixels on a 9x5 diagonal, got %d", b.Count())
	}
}

func TestLine_InvertTwiceCancels(t *testing.T) {
	b, _ := New(32, 32)
	b.Line(0, 0, 31, 20, OpInvert)
	if b.Count() == 0 {
		t.Fatal("expected pixels after first stroke")
	}
	b.Line(0, 0, 31, 20, OpInvert)
	if b.Count() != 0 {
		t.Errorf("expected inverted strokes to cancel, %d pixels left", b.Count())
	}
}

func TestLine_Clipped(t *testing.T) {
	b, _ := New(10, 10)
	b.LineF(-1e9, 5, 1e9, 5, OpCopy)

	for x := 0; x < 10; x++ {
		if !b.Lit(x, 5) {
			t.Errorf("expected (%d,5) lit", x)
		}
	}
	if b.Count() != 10 {
		t.Errorf("expected only row 5 lit, got %d pixels", b.Count())
	}

	b.Clear()
	b.Line(-20, -20, -5, -1, OpCopy)
	if b.Count() != 0 {
		t.Error("expected fully outside segment to draw nothing")
	}
}

func TestLine_NonFiniteIgnored(t *testing.T) {
	b, _ := New(8, 8)
	b.LineF(0, 0, math.Inf(1), 4, OpCopy)
	if b.Count() != 0 {
		t.Error("expected segment with infinite endpoint to be dropped")
	}
}

func TestBlit_Ops(t *testing.T) {
	dst, _ := New(4, 1)
	src, _ := New(4, 1)
	copy(dst.Pix, []uint8{On, On, Off, Off})
	copy(src.Pix, []uint8{On, Off, On, Off})

	tests := []struct {
		op   Op
		want []uint8
	}{
		{OpCopy, []uint8{On, Off, On, Off}},
		{OpXor, []uint8{Off, On, On, Off}},
		{OpInvert, []uint8{Off, On, On, Off}},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			d := dst.Clone()
			if err := d.Blit(src, tt.op); err != nil {
				t.Fatalf("blit failed: %v", err)
			}
			for i, v := range tt.want {
				if d.Pix[i] != v {
					t.Errorf("pixel %d: got %#x, want %#x", i, d.Pix[i], v)
				}
			}
		})
	}
}

func TestBlit_SizeMismatch(t *testing.T) {
	a, _ := New(4, 4)
	b, _ := New(4, 5)
	if err := a.Blit(b, OpCopy); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestStretch_Shrink(t *testing.T) {
	src, _ := New(64, 64)
	src.Line(0, 31, 63, 31, OpCopy)
	dst, _ := New(16, 8)
	Stretch(dst, src)

	row := 31 * 8 / 64
	for x := 0; x < dst.Width; x++ {
		if !dst.Lit(x, row) {
			t.Errorf("expected thin line to survive shrink at (%d,%d)", x, row)
		}
	}
	if dst.Count() != dst.Width {
		t.Errorf("expected exactly one lit row, got %d pixels", dst.Count())
	}
}

func TestStretch_Enlarge(t *testing.T) {
	src, _ := New(2, 2)
	src.Plot(1, 0, OpCopy)
	dst, _ := New(6, 4)
	Stretch(dst, src)

	if dst.Count() != 6 {
		t.Errorf("expected a 3x2 block, got %d pixels", dst.Count())
	}
	if !dst.Lit(3, 0) || !dst.Lit(5, 1) || dst.Lit(2, 0) || dst.Lit(3, 2) {
		t.Error("block placed at wrong position")
	}
}

func TestText_TopCenter(t *testing.T) {
	b, _ := New(200, 60)
	font := Fonts[DefaultFont]
	b.Text(font, 100, 10, "Hi", AlignTop|AlignCenter)

	if b.Count() == 0 {
		t.Fatal("expected glyph pixels")
	}
	minX, maxX, minY := b.Width, -1, b.Height
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.Lit(x, y) {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY = min(minY, y)
		}
	}
	if minY < 10 {
		t.Errorf("top-anchored text rose above anchor: minY=%d", minY)
	}
	if minX >= 100 || maxX <= 100 {
		t.Errorf("expected text to straddle x=100, spans [%d,%d]", minX, maxX)
	}
}

func TestPaletted(t *testing.T) {
	b, _ := New(5, 3)
	b.Plot(4, 2, OpCopy)
	img := b.Paletted()
	if img.ColorIndexAt(4, 2) != 1 || img.ColorIndexAt(0, 0) != 0 {
		t.Error("paletted conversion wrong")
	}
}
