// Package anim implements the per-tick state machines of the animated
// elements: a bouncing [Line], a tumbling [Cube] and a cycling text [Ticker].
//
// Every element carries an Enabled flag and a [Phase]. Enabled decides
// whether it takes part at all; the phase tracks whether it has been
// initialised and whether it is currently advancing.
package anim
