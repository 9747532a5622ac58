// Package geom holds the wireframe model: vertices, edges and the
// transformable [Solid] built from them.
//
// Transforms mutate a solid in place and return it for chaining, so the
// usual per-frame pattern is to clone a template and transform the copy:
//
//	s := cube.Clone()
//	s.Rotate(rx, ry, rz).Translate(dx, dy, dz)
//	s.Draw(buf, 100, w, h, surface.OpInvert)
//
// Rotate before translating to spin a solid about its own centre.
// Reversing the order makes it orbit the origin instead.
package geom
