// Package window presents a display in a resizable desktop window and
// drives its animation from the ebiten update loop.
package window

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/san-kum/povdisplay/internal/control"
	"github.com/san-kum/povdisplay/internal/display"
	"github.com/san-kum/povdisplay/internal/surface"
)

const maxCatchUp = 4

var keymap = map[ebiten.Key]control.Action{
	ebiten.KeySpace:      control.ToggleAnimation,
	ebiten.KeyP:          control.ToggleAnimation,
	ebiten.KeyN:          control.Step,
	ebiten.KeyL:          control.ToggleLine,
	ebiten.KeyC:          control.ToggleCube,
	ebiten.KeyT:          control.ToggleText,
	ebiten.KeyE:          control.ToggleErase,
	ebiten.KeyR:          control.AddLines,
	ebiten.KeyX:          control.Clear,
	ebiten.KeyArrowLeft:  control.MoveLeft,
	ebiten.KeyArrowRight: control.MoveRight,
	ebiten.KeyArrowUp:    control.MoveUp,
	ebiten.KeyArrowDown:  control.MoveDown,
	ebiten.KeyEqual:      control.MoveNear,
	ebiten.KeyKPAdd:      control.MoveNear,
	ebiten.KeyMinus:      control.MoveFar,
	ebiten.KeyKPSubtract: control.MoveFar,
	ebiten.KeyQ:          control.Quit,
	ebiten.KeyEscape:     control.Quit,
}

// Game is an ebiten.Game and the display's Clock. Build the display with
// WithClock(game) and then Attach it.
type Game struct {
	d     *display.Display
	ctl   control.Controls
	log   logr.Logger
	pacer display.Pacer
	armed bool

	target *surface.Buffer
	img    *ebiten.Image
	pix    []byte
	w, h   int
	dirty  bool
}

func NewGame(ctl control.Controls, log logr.Logger) *Game {
	return &Game{ctl: ctl, log: log, pacer: display.Pacer{MaxCatchUp: maxCatchUp}}
}

func (g *Game) Attach(d *display.Display) {
	g.d = d
	g.dirty = true
}

func (g *Game) Arm(period time.Duration) bool {
	g.armed = true
	g.pacer.Period = period
	g.pacer.Reset()
	return true
}

func (g *Game) Disarm() { g.armed = false }

func (g *Game) Update() error {
	for k, a := range keymap {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		switch g.ctl.Apply(g.d, a) {
		case control.Quitting:
			return ebiten.Termination
		case control.Redraw, control.Stepped:
			g.dirty = true
		}
		g.log.V(1).Info("key", "action", a.String())
	}

	if g.armed {
		for n := g.pacer.Due(time.Second / time.Duration(ebiten.TPS())); n > 0; n-- {
			if g.d.NextFrame() {
				g.dirty = true
			}
		}
	}

	if g.target == nil || g.target.Width != g.w || g.target.Height != g.h {
		t, err := surface.New(g.w, g.h)
		if err != nil {
			// Layout has not run yet.
			return nil
		}
		g.target = t
		g.pix = make([]byte, 4*g.w*g.h)
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(g.w, g.h)
		g.dirty = true
	}
	if g.dirty {
		g.d.Present(g.target)
		g.target.RGBA(g.pix)
		g.img.WritePixels(g.pix)
		g.dirty = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		return
	}
	screen.DrawImage(g.img, nil)
}

// Layout renders at the window's own size so presentation scales with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.w, g.h
}

// Run opens a window scale times the display size and blocks until it closes.
func Run(g *Game, title string, scale int) error {
	buf := g.d.Buffer()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(buf.Width*max(scale, 1), buf.Height*max(scale, 1))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	g.log.V(1).Info("window open", "width", buf.Width, "height", buf.Height, "scale", scale)
	return ebiten.RunGame(g)
}
