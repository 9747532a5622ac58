// Package display drives the animation. A [Display] owns the offscreen
// buffer and the animated elements, and a [Clock] decides when
// [Display.NextFrame] runs. Presenters copy the buffer out with
// [Display.Present] at whatever size they draw at.
package display
