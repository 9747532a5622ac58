package control

import "github.com/san-kum/povdisplay/internal/display"

type Action uint8

const (
	None Action = iota
	ToggleAnimation
	Step
	ToggleLine
	ToggleCube
	ToggleText
	ToggleErase
	AddLines
	Clear
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveNear
	MoveFar
	Quit
)

var actionNames = [...]string{
	None:            "none",
	ToggleAnimation: "toggle-animation",
	Step:            "step",
	ToggleLine:      "toggle-line",
	ToggleCube:      "toggle-cube",
	ToggleText:      "toggle-text",
	ToggleErase:     "toggle-erase",
	AddLines:        "add-lines",
	Clear:           "clear",
	MoveLeft:        "move-left",
	MoveRight:       "move-right",
	MoveUp:          "move-up",
	MoveDown:        "move-down",
	MoveNear:        "move-near",
	MoveFar:         "move-far",
	Quit:            "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Bindings maps key names, as bubbletea spells them, to actions.
var Bindings = map[string]Action{
	" ":      ToggleAnimation,
	"space":  ToggleAnimation,
	"p":      ToggleAnimation,
	"n":      Step,
	"l":      ToggleLine,
	"c":      ToggleCube,
	"t":      ToggleText,
	"e":      ToggleErase,
	"r":      AddLines,
	"x":      Clear,
	"left":   MoveLeft,
	"h":      MoveLeft,
	"right":  MoveRight,
	"up":     MoveUp,
	"k":      MoveUp,
	"down":   MoveDown,
	"j":      MoveDown,
	"+":      MoveNear,
	"=":      MoveNear,
	"-":      MoveFar,
	"_":      MoveFar,
	"q":      Quit,
	"esc":    Quit,
	"ctrl+c": Quit,
}

// Lookup returns the action bound to key, or None.
func Lookup(key string) Action { return Bindings[key] }

// Result says what a presenter has to do after an action.
type Result uint8

const (
	Unchanged Result = iota
	// Redraw means the buffer changed outside a tick.
	Redraw
	// Stepped means a frame ran.
	Stepped
	Quitting
)

const (
	DefaultStepXY      = 10.0
	DefaultStepZ       = 50.0
	DefaultRandomLines = 10
)

// Controls holds the amounts the actions use.
type Controls struct {
	RandomLines int
	StepXY      float64
	StepZ       float64
}

func Defaults() Controls {
	return Controls{RandomLines: DefaultRandomLines, StepXY: DefaultStepXY, StepZ: DefaultStepZ}
}

// Apply performs a on d.
func (c Controls) Apply(d *display.Display, a Action) Result {
	switch a {
	case ToggleAnimation:
		d.ToggleAnimation()
	case Step:
		if d.Step() {
			return Stepped
		}
	case ToggleLine:
		d.ToggleEnabled(display.KindLine)
	case ToggleCube:
		d.ToggleEnabled(display.KindCube)
	case ToggleText:
		d.ToggleEnabled(display.KindText)
	case ToggleErase:
		d.SetEraseBackground(!d.EraseBackground())
	case AddLines:
		d.AddRandomLines(c.RandomLines)
		return Redraw
	case Clear:
		d.Clear()
		return Redraw
	case MoveLeft:
		d.TranslateCube(-c.StepXY, 0, 0)
	case MoveRight:
		d.TranslateCube(c.StepXY, 0, 0)
	case MoveUp:
		d.TranslateCube(0, -c.StepXY, 0)
	case MoveDown:
		d.TranslateCube(0, c.StepXY, 0)
	case MoveNear:
		d.TranslateCube(0, 0, -c.StepZ)
	case MoveFar:
		d.TranslateCube(0, 0, c.StepZ)
	case Quit:
		d.StopAnimation()
		return Quitting
	}
	return Unchanged
}

// Help is the one-line key summary shown by presenters.
const Help = "space run  n step  l/c/t elements  e erase  r lines  x clear  arrows/+/- move cube  q quit"
