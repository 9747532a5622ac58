package surface

// Stretch scales src into dst, whatever their relative sizes. Enlarging
// replicates pixels. Shrinking lights a destination pixel if any source
// pixel it covers is lit, so one-pixel strokes survive a smaller target.
func Stretch(dst, src *Buffer) {
	if dst == nil || src == nil || dst.Width <= 0 || dst.Height <= 0 {
		return
	}
	for y := 0; y < dst.Height; y++ {
		sy0, sy1 := span(y, dst.Height, src.Height)
		row := y * dst.Width
		for x := 0; x < dst.Width; x++ {
			sx0, sx1 := span(x, dst.Width, src.Width)
			dst.Pix[row+x] = src.peak(sx0, sy0, sx1, sy1)
		}
	}
}

// span maps destination index i of n onto the half-open source range it covers.
func span(i, n, m int) (int, int) {
	lo := i * m / n
	hi := (i + 1) * m / n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (b *Buffer) peak(x0, y0, x1, y1 int) uint8 {
	var v uint8
	for y := y0; y < y1; y++ {
		row := y * b.Width
		for x := x0; x < x1; x++ {
			if p := b.Pix[row+x]; p > v {
				v = p
				if v == On {
					return v
				}
			}
		}
	}
	return v
}
