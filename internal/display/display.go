package display

import (
	"fmt"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/san-kum/povdisplay/internal/anim"
	"github.com/san-kum/povdisplay/internal/config"
	"github.com/san-kum/povdisplay/internal/geom"
	"github.com/san-kum/povdisplay/internal/surface"
	"tinygo.org/x/tinyfont"
)

// Kind names one of the animated elements.
type Kind uint8

const (
	KindLine Kind = iota
	KindCube
	KindText
)

// Kinds lists every element in tick order.
var Kinds = []Kind{KindLine, KindCube, KindText}

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCube:
		return "cube"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Display owns the offscreen buffer, the frame counter and the animated
// elements, and advances them once per tick.
//
// A Display is not safe for concurrent use. NextFrame refuses to overlap
// with itself, but every other method must be called from the goroutine
// that delivers ticks.
type Display struct {
	buf     *surface.Buffer
	scratch *surface.Buffer
	frame   uint64

	line   *anim.Line
	cube   *anim.Cube
	ticker *anim.Ticker

	rng    anim.Rand
	clock  Clock
	period time.Duration
	font   tinyfont.Fonter
	log    logr.Logger

	armed bool
	erase bool
	ready bool
	busy  atomic.Bool
}

type Option func(*Display)

// WithClock sets the tick source. The default is a ManualClock.
func WithClock(c Clock) Option { return func(d *Display) { d.clock = c } }

// WithRand replaces the random source seeded from the configuration.
func WithRand(r anim.Rand) Option { return func(d *Display) { d.rng = r } }

func WithLogger(l logr.Logger) Option { return func(d *Display) { d.log = l } }

// WithFont overrides the configured ticker font.
func WithFont(f tinyfont.Fonter) Option { return func(d *Display) { d.font = f } }

// New allocates the buffers and builds every element from cfg. An
// allocation failure aborts construction; there is no degraded mode.
func New(cfg *config.Config, opts ...Option) (*Display, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	buf, err := surface.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("display: allocate buffer: %w", err)
	}
	scratch, err := surface.NewLike(buf)
	if err != nil {
		return nil, fmt.Errorf("display: allocate scratch buffer: %w", err)
	}

	d := &Display{
		buf:     buf,
		scratch: scratch,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		clock:   &ManualClock{},
		period:  cfg.TickPeriod(),
		font:    surface.Fonts[cfg.Font],
		log:     logr.Discard(),
		erase:   cfg.EraseBackground,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.line = anim.NewLine(cfg.Width, cfg.Height)
	d.line.Enabled = cfg.Elements.Line
	if d.cube, err = anim.NewSolid(geom.NewCube(cfg.Cube.HalfExtent), cfg.Focal); err != nil {
		return nil, fmt.Errorf("display: cube template: %w", err)
	}
	d.cube.Home.Z = cfg.Cube.Depth
	d.cube.Enabled = cfg.Elements.Cube
	d.ticker = anim.NewTicker(scratch, d.font, cfg.Text.Lines...)
	d.ticker.Enabled = cfg.Elements.Text

	d.Clear()
	d.log.V(1).Info("display created", "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed, "period", d.period)
	return d, nil
}

// Clear blacks out the buffer.
func (d *Display) Clear() {
	d.buf.Clear()
	d.ready = true
}

// StartAnimation arms the clock and sets every enabled element running,
// resetting any that has never run. Calling it again changes nothing.
func (d *Display) StartAnimation() {
	if !d.armed {
		d.armed = d.clock.Arm(d.period)
		if !d.armed {
			d.log.Info("tick source refused to arm", "period", d.period)
		} else {
			d.log.V(1).Info("animation started", "frame", d.frame)
		}
	}
	for _, k := range Kinds {
		if d.Enabled(k) {
			d.start(k)
		}
	}
}

// StopAnimation disarms the clock and pauses every element. Enabled flags
// are kept. Calling it again changes nothing.
func (d *Display) StopAnimation() {
	if d.armed {
		d.clock.Disarm()
		d.log.V(1).Info("animation stopped", "frame", d.frame)
	}
	d.armed = false
	d.line.Pause()
	d.cube.Pause()
	d.ticker.Pause()
}

func (d *Display) ToggleAnimation() {
	if d.armed {
		d.StopAnimation()
	} else {
		d.StartAnimation()
	}
}

func (d *Display) start(k Kind) {
	switch k {
	case KindLine:
		d.line.Start(func() { d.line.Reset(d.rng) })
	case KindCube:
		d.cube.Start(d.cube.Reset)
	case KindText:
		d.ticker.Start(d.ticker.Reset)
	}
}

// NextFrame advances and renders every enabled, running element in the
// order line, cube, text, then bumps the frame counter. It returns false
// without doing anything if another NextFrame is still in progress.
func (d *Display) NextFrame() bool {
	if !d.busy.CompareAndSwap(false, true) {
		d.log.V(1).Info("tick dropped while previous frame renders")
		return false
	}
	defer d.busy.Store(false)

	if d.line.Active() {
		d.line.Advance()
		d.line.Render(d.buf, surface.OpInvert)
	}
	if d.cube.Active() {
		d.cube.Advance()
		d.cube.Render(d.buf, surface.OpInvert)
	}
	if d.ticker.Active() {
		d.ticker.Advance()
		if _, err := d.ticker.Render(d.buf, d.frame); err != nil {
			d.log.Error(err, "ticker render failed", "frame", d.frame)
		}
	}
	d.frame++
	d.ready = true
	d.log.V(2).Info("frame", "n", d.frame)
	return true
}

// Step runs one frame by hand. Enabled elements advance even while the
// animation is stopped, and a stopped animation stays stopped.
func (d *Display) Step() bool {
	if d.armed {
		return d.NextFrame()
	}
	for _, k := range Kinds {
		if d.Enabled(k) {
			d.start(k)
		}
	}
	ok := d.NextFrame()
	d.line.Pause()
	d.cube.Pause()
	d.ticker.Pause()
	return ok
}

// AddRandomLines draws n static segments straight into the buffer, each
// running from near the left edge to near the right edge.
func (d *Display) AddRandomLines(n int) {
	w, h := d.buf.Width, d.buf.Height
	margin := max(w/5, 1)
	for ; n > 0; n-- {
		x0, y0 := d.rng.Intn(margin), d.rng.Intn(h)
		x1, y1 := w-d.rng.Intn(margin), d.rng.Intn(h)
		d.buf.Line(x0, y0, x1, y1, surface.OpInvert)
	}
	d.ready = true
}

// TranslateCube nudges the cube's position without affecting its rotation.
func (d *Display) TranslateCube(dx, dy, dz float64) {
	d.cube.Translate(dx, dy, dz)
}

// Present stretch-copies the buffer into dst, whatever its size, and
// reports whether anything changed since the previous Present. With
// background erase on the buffer is cleared afterwards, so each frame
// starts from black.
func (d *Display) Present(dst *surface.Buffer) bool {
	fresh := d.ready
	surface.Stretch(dst, d.buf)
	d.ready = false
	if d.erase {
		d.buf.Clear()
	}
	return fresh
}

// Ready reports whether the buffer changed since the last Present.
func (d *Display) Ready() bool { return d.ready }

// StatusMessage summarises the current toggles.
func (d *Display) StatusMessage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Animation: %s", yesNo(d.armed))
	fmt.Fprintf(&b, ", Background erase?: %s", yesNo(d.erase))
	fmt.Fprintf(&b, ", Line enabled: %s", yesNo(d.line.Enabled))
	fmt.Fprintf(&b, ", Cube enabled: %s", yesNo(d.cube.Enabled))
	fmt.Fprintf(&b, ", Text enabled: %s", yesNo(d.ticker.Enabled))
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// SetEnabled switches an element in or out. Enabling an element while the
// animation runs starts it immediately.
func (d *Display) SetEnabled(k Kind, on bool) {
	switch k {
	case KindLine:
		d.line.Enabled = on
	case KindCube:
		d.cube.Enabled = on
	case KindText:
		d.ticker.Enabled = on
	default:
		return
	}
	if on && d.armed {
		d.start(k)
	}
}

func (d *Display) ToggleEnabled(k Kind) { d.SetEnabled(k, !d.Enabled(k)) }

func (d *Display) Enabled(k Kind) bool {
	switch k {
	case KindLine:
		return d.line.Enabled
	case KindCube:
		return d.cube.Enabled
	case KindText:
		return d.ticker.Enabled
	}
	return false
}

func (d *Display) SetEraseBackground(on bool) { d.erase = on }
func (d *Display) EraseBackground() bool      { return d.erase }

// Running reports whether the clock is armed.
func (d *Display) Running() bool { return d.armed }

// Frame is the number of completed ticks.
func (d *Display) Frame() uint64 { return d.frame }

// Period is the configured tick interval.
func (d *Display) Period() time.Duration { return d.period }

// Buffer exposes the offscreen buffer for reading.
func (d *Display) Buffer() *surface.Buffer { return d.buf }

func (d *Display) Line() *anim.Line     { return d.line }
func (d *Display) Cube() *anim.Cube     { return d.cube }
func (d *Display) Ticker() *anim.Ticker { return d.ticker }
