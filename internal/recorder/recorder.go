// Package recorder captures presented frames and writes them out as an
// animated GIF.
package recorder

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/san-kum/povdisplay/internal/surface"
)

// Source is anything that can present its current frame into a buffer.
// *display.Display satisfies it.
type Source interface {
	Present(dst *surface.Buffer) bool
}

// Recorder accumulates frames at a fixed output size.
type Recorder struct {
	// Delay is the per-frame delay in hundredths of a second.
	Delay int
	// MaxFrames caps the capture; zero means unlimited.
	MaxFrames int

	target *surface.Buffer
	frames []*image.Paletted
}

// New returns a recorder producing frames of w*scale x h*scale pixels.
func New(w, h, scale int, delay time.Duration) (*Recorder, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	target, err := surface.New(w*scale, h*scale)
	if err != nil {
		return nil, fmt.Errorf("recorder: allocate target: %w", err)
	}
	return &Recorder{Delay: DelayFor(delay), target: target}, nil
}

// DelayFor converts a tick period into GIF delay units, never less than one.
func DelayFor(period time.Duration) int {
	d := int((period + 5*time.Millisecond) / (10 * time.Millisecond))
	if d < 1 {
		return 1
	}
	return d
}

// Capture presents src into the recorder's target and keeps a copy. It
// reports false once MaxFrames is reached.
func (r *Recorder) Capture(src Source) bool {
	if r.MaxFrames > 0 && len(r.frames) >= r.MaxFrames {
		return false
	}
	src.Present(r.target)
	r.frames = append(r.frames, r.target.Paletted())
	return true
}

func (r *Recorder) Len() int { return len(r.frames) }

// Size is the output frame size.
func (r *Recorder) Size() (w, h int) { return r.target.Width, r.target.Height }

// Encode writes every captured frame as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

// Save encodes to path, replacing any existing file.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recorder: create %s: %w", path, err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("recorder: encode %s: %w", path, err)
	}
	return f.Close()
}
