package anim

import (
	"image"

	"github.com/san-kum/povdisplay/internal/surface"
	"tinygo.org/x/tinyfont"
)

// Ticker timing, in frames. The current line flashes on frames ShowFrom
// through ShowTo of every Period and rolls on to the next line at frame 0.
const (
	Period   = 60
	ShowFrom = 1
	ShowTo   = 4
)

// Visible reports whether the ticker draws text on this frame.
func Visible(frame uint64) bool {
	m := frame % Period
	return m >= ShowFrom && m <= ShowTo
}

// Rolls reports whether the ticker moves to its next line on this frame.
func Rolls(frame uint64) bool { return frame%Period == 0 }

// Ticker flashes one line of text at a time at a fixed anchor. Text is
// drawn into a scratch buffer first and XOR-blended into the target, so
// it reads on any background and the same blend removes it again.
type Ticker struct {
	Toggle
	Lines  []string
	Index  int
	Anchor image.Point
	Font   tinyfont.Fonter

	scratch *surface.Buffer
}

// NewTicker returns an enabled, never-started ticker drawing through scratch.
func NewTicker(scratch *surface.Buffer, font tinyfont.Fonter, lines ...string) *Ticker {
	t := &Ticker{Toggle: Toggle{Enabled: true}, Font: font, scratch: scratch}
	for _, l := range lines {
		t.AddLine(l)
	}
	return t
}

// AddLine appends a line to the playback order and returns the line count.
func (t *Ticker) AddLine(s string) int {
	t.Lines = append(t.Lines, s)
	return len(t.Lines)
}

// Reset anchors the text at the centre of the scratch area.
func (t *Ticker) Reset() {
	t.Anchor = image.Pt(t.scratch.Width/2, t.scratch.Height/2)
}

// Advance is a no-op; the text does not move.
func (t *Ticker) Advance() {}

// NextLine steps to the following line, wrapping after the last.
func (t *Ticker) NextLine() {
	if len(t.Lines) == 0 {
		t.Index = 0
		return
	}
	t.Index = (t.Index + 1) % len(t.Lines)
}

// Current returns the line that is shown next, or "" if there are none.
func (t *Ticker) Current() string {
	if t.Index < 0 || t.Index >= len(t.Lines) {
		return ""
	}
	return t.Lines[t.Index]
}

// Render runs the ticker's schedule for frame. It reports whether text was
// blended into dst.
func (t *Ticker) Render(dst *surface.Buffer, frame uint64) (bool, error) {
	if len(t.Lines) == 0 {
		return false, nil
	}
	switch {
	case Visible(frame):
		t.scratch.Clear()
		t.scratch.Text(t.Font, t.Anchor.X, t.Anchor.Y, t.Current(), surface.AlignTop|surface.AlignCenter)
		if err := dst.Blit(t.scratch, surface.OpXor); err != nil {
			return false, err
		}
		return true, nil
	case Rolls(frame):
		t.NextLine()
	}
	return false, nil
}
