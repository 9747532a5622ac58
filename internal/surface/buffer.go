package surface

import (
	"fmt"
	"image"
	"image/color"
)

// MaxDim bounds either side of a buffer. tinyfont addresses pixels with
// int16, so anything beyond this cannot receive text.
const MaxDim = 1<<15 - 1

const (
	Off uint8 = 0x00
	On  uint8 = 0xFF
)

// Buffer is a row-major monochrome pixel raster.
type Buffer struct {
	Width, Height int
	Pix           []uint8
}

// New allocates a black buffer of the given size.
func New(w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 || w > MaxDim || h > MaxDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Buffer{Width: w, Height: h, Pix: make([]uint8, w*h)}, nil
}

// NewLike allocates a black buffer with the same dimensions as b.
func NewLike(b *Buffer) (*Buffer, error) { return New(b.Width, b.Height) }

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Clear resets every pixel to black.
func (b *Buffer) Clear() {
	for i := range b.Pix {
		b.Pix[i] = Off
	}
}

// Get reports the pixel value at (x, y); out-of-range reads are black.
func (b *Buffer) Get(x, y int) uint8 {
	if !b.inside(x, y) {
		return Off
	}
	return b.Pix[y*b.Width+x]
}

// Lit reports whether the pixel at (x, y) is on.
func (b *Buffer) Lit(x, y int) bool { return b.Get(x, y) != Off }

// Plot combines a lit pixel into (x, y) using op. Out-of-range writes are dropped.
func (b *Buffer) Plot(x, y int, op Op) {
	if !b.inside(x, y) {
		return
	}
	i := y*b.Width + x
	b.Pix[i] = op.apply(b.Pix[i], On)
}

// Count returns the number of lit pixels.
func (b *Buffer) Count() int {
	n := 0
	for _, p := range b.Pix {
		if p != Off {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{Width: b.Width, Height: b.Height, Pix: make([]uint8, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// Blit combines src into b pixel by pixel. Both buffers must have the same size.
func (b *Buffer) Blit(src *Buffer, op Op) error {
	if src.Width != b.Width || src.Height != b.Height {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, src.Width, src.Height, b.Width, b.Height)
	}
	for i, s := range src.Pix {
		b.Pix[i] = op.apply(b.Pix[i], s)
	}
	return nil
}

// RGBA writes b as opaque white-on-black RGBA into pix, which must hold
// at least 4*Width*Height bytes.
func (b *Buffer) RGBA(pix []byte) {
	for i, p := range b.Pix {
		j := i * 4
		if j+3 >= len(pix) {
			return
		}
		pix[j+0] = p
		pix[j+1] = p
		pix[j+2] = p
		pix[j+3] = 0xFF
	}
}

// Paletted converts b into a two-colour paletted image.
func (b *Buffer) Paletted() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, b.Width, b.Height), color.Palette{color.Black, color.White})
	for i, p := range b.Pix {
		if p != Off {
			img.Pix[(i/b.Width)*img.Stride+i%b.Width] = 1
		}
	}
	return img
}

// image.Image

func (b *Buffer) ColorModel() color.Model { return color.GrayModel }
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }
func (b *Buffer) At(x, y int) color.Color  { return color.Gray{Y: b.Get(x, y)} }
