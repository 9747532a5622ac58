// Package surface provides the offscreen pixel buffers the animation draws into.
//
// A [Buffer] is a monochrome raster: each pixel is either [Off] or [On]. Every
// drawing primitive takes an explicit [Op] that decides how the drawn pixels
// combine with what is already there:
//
//   - [OpCopy]: overwrite the destination
//   - [OpInvert]: flip destination pixels wherever the source is lit
//   - [OpXor]: exclusive-or source into destination
//
// Drawing the same content twice with OpInvert or OpXor restores the
// original pixels, which is how overlapping animated strokes cancel
// instead of accumulating.
//
// Buffers implement [image.Image] for export and tinygo's drivers.Displayer
// so tinyfont can render text straight into them.
package surface
