package surface

import (
	"image/color"
	"sort"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var _ drivers.Displayer = (*Buffer)(nil)

// Align controls how a text position is interpreted. The zero value puts
// the start of the baseline at the position.
type Align uint8

const (
	AlignTop    Align = 1 << 0
	AlignCenter Align = 1 << 1
)

var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Fonts are the faces selectable by name from configuration.
var Fonts = map[string]tinyfont.Fonter{
	"mono9":  &freemono.Regular9pt7b,
	"mono12": &freemono.Regular12pt7b,
	"mono18": &freemono.Regular18pt7b,
	"mono24": &freemono.Regular24pt7b,
}

// DefaultFont is used when configuration names no font.
const DefaultFont = "mono18"

// FontNames lists the keys of Fonts in order.
func FontNames() []string {
	names := make([]string, 0, len(Fonts))
	for k := range Fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (b *Buffer) Size() (x, y int16) { return int16(b.Width), int16(b.Height) }

// SetPixel copies a glyph pixel in; bright colours are lit, dark ones clear.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if !b.inside(ix, iy) {
		return
	}
	v := Off
	if int(c.R)+int(c.G)+int(c.B) >= 3*0x80 {
		v = On
	}
	b.Pix[iy*b.Width+ix] = v
}

func (b *Buffer) Display() error { return nil }

// Text renders s in white with font at (x, y) according to align.
func (b *Buffer) Text(font tinyfont.Fonter, x, y int, s string, align Align) {
	if font == nil || s == "" {
		return
	}
	if align&AlignCenter != 0 {
		_, w := tinyfont.LineWidth(font, s)
		x -= int(w) / 2
	}
	if align&AlignTop != 0 {
		y += Ascent(font, s)
	}
	tinyfont.WriteLine(b, font, int16(x), int16(y), s, white)
}

// Ascent is the largest distance any glyph of s rises above the baseline.
func Ascent(font tinyfont.Fonter, s string) int {
	asc := 0
	for _, r := range s {
		if a := -int(font.GetGlyph(r).Info().YOffset); a > asc {
			asc = a
		}
	}
	return asc
}
