package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/povdisplay/internal/config"
	"github.com/san-kum/povdisplay/internal/control"
	"github.com/san-kum/povdisplay/internal/display"
	"github.com/san-kum/povdisplay/internal/surface"
)

func newModel(t *testing.T, preset string, opts ...Option) (Model, *display.Display, *Clock) {
	t.Helper()
	clock := NewClock()
	d, err := display.New(config.GetPreset(preset), display.WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(d, clock, opts...), d, clock
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return nm, cmd
}

func TestCanvas_SetAndString(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	if got := c.String(); got != string([]rune{0x2801, 0x2880}) {
		t.Errorf("unexpected cells %q", got)
	}
	c.Clear()
	if c.String() != string([]rune{blank, blank}) {
		t.Error("clear should blank every cell")
	}
}

func TestCanvas_Load(t *testing.T) {
	c := NewCanvas(3, 2)
	w, h := c.Dots()
	if w != 6 || h != 8 {
		t.Fatalf("expected 6x8 dots, got %dx%d", w, h)
	}
	b, _ := surface.New(w, h)
	b.Line(0, 0, w-1, 0, surface.OpCopy)
	c.Load(b)
	rows := strings.Split(c.String(), "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, r := range rows[0] {
		if r != 0x2809 {
			t.Errorf("top row should have both top dots lit, got %U", r)
		}
	}
}

func TestClock_Generations(t *testing.T) {
	c := NewClock()
	if c.Arm(0) {
		t.Error("zero period should be refused")
	}
	c.Arm(time.Millisecond)
	stale := tickMsg{gen: c.gen}
	if c.pending() == nil || c.pending() != nil {
		t.Error("pending should hand out exactly one first tick")
	}
	c.Disarm()
	c.Arm(time.Millisecond)
	if c.current(stale) {
		t.Error("tick from an earlier arming should be dropped")
	}
	if !c.current(tickMsg{gen: c.gen}) {
		t.Error("tick from the live arming should run")
	}
}

func TestModel_ToggleSchedulesTick(t *testing.T) {
	m, d, _ := newModel(t, "tiny")
	m, cmd := update(t, m, key(" "))
	if !d.Running() {
		t.Fatal("space should start the animation")
	}
	if cmd == nil {
		t.Error("starting should schedule the first tick")
	}
	_, cmd = update(t, m, key(" "))
	if d.Running() || cmd != nil {
		t.Error("second space should stop without scheduling")
	}
}

func TestModel_Tick(t *testing.T) {
	m, d, clock := newModel(t, "tiny")
	d.StartAnimation()

	m, cmd := update(t, m, tickMsg{gen: clock.gen, at: time.Now()})
	if d.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", d.Frame())
	}
	if cmd == nil {
		t.Error("an armed tick should chain the next one")
	}
	if len(m.coverage) != 1 {
		t.Errorf("expected one coverage sample, got %d", len(m.coverage))
	}

	d.StopAnimation()
	_, cmd = update(t, m, tickMsg{gen: clock.gen})
	if d.Frame() != 1 || cmd != nil {
		t.Error("ticks after stop should be ignored")
	}
}

func TestModel_Keys(t *testing.T) {
	m, d, _ := newModel(t, "default")

	m, _ = update(t, m, key("c"))
	if d.Enabled(display.KindCube) {
		t.Error("c should disable the cube")
	}
	m, _ = update(t, m, key("e"))
	if !d.EraseBackground() {
		t.Error("e should turn erase on")
	}
	m, _ = update(t, m, key("e"))

	// The first nudge of a never-started cube lands relative to its home.
	z := d.Cube().Home.Z
	m, _ = update(t, m, key("left"))
	m, _ = update(t, m, key("up"))
	m, _ = update(t, m, key("+"))
	off := d.Cube().Offset
	if off.X != -control.DefaultStepXY || off.Y != -control.DefaultStepXY || off.Z != z-control.DefaultStepZ {
		t.Errorf("unexpected cube offset %+v", off)
	}

	m, _ = update(t, m, key("r"))
	if d.Buffer().Count() == 0 {
		t.Error("r should add lines")
	}
	m, _ = update(t, m, key("x"))
	if d.Buffer().Count() != 0 {
		t.Error("x should clear the buffer")
	}

	m, _ = update(t, m, key("n"))
	if d.Frame() != 1 || d.Running() {
		t.Error("n should step once without starting")
	}
}

func TestModel_Quit(t *testing.T) {
	m, d, _ := newModel(t, "tiny")
	d.StartAnimation()
	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if d.Running() {
		t.Error("quitting should stop the animation")
	}
}

func TestModel_ResizeAndView(t *testing.T) {
	m, _, _ := newModel(t, "tiny", WithChart(true))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if m.canvas.Width != 56 {
		t.Errorf("expected 56 columns, got %d", m.canvas.Width)
	}
	if m.canvas.Height != 30-chrome-chartRows-chartChrome {
		t.Errorf("unexpected row count %d", m.canvas.Height)
	}

	m, _ = update(t, m, key("n"))
	m, _ = update(t, m, key("n"))
	v := m.View()
	for _, want := range []string{"povdisplay", "Animation: No", "lit pixels", "q quit"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_ResizeKeepsErasedFrame(t *testing.T) {
	m, d, _ := newModel(t, "tiny")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	d.SetEraseBackground(true)
	m, _ = update(t, m, key("r"))
	if d.Buffer().Count() != 0 {
		t.Fatal("presenting with erase on should clear the buffer")
	}
	if m.target.Count() == 0 {
		t.Fatal("r should draw lines into the canvas target")
	}

	for _, msg := range []tea.Msg{
		tea.WindowSizeMsg{Width: 40, Height: 20},
		key("g"),
		key("g"),
		tea.WindowSizeMsg{Width: 40, Height: 20},
	} {
		m, _ = update(t, m, msg)
		if m.target.Count() == 0 {
			t.Fatalf("canvas target went black after %T", msg)
		}
	}
	if !strings.ContainsFunc(m.canvas.String(), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Error("canvas went blank while paused")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("amber").Name != "amber" || GetTheme("nope").Name != ThemePhosphor.Name {
		t.Error("unexpected theme lookup")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("every theme needs a name")
	}
	if nextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("theme cycle should wrap")
	}

	m, _, _ := newModel(t, "tiny", WithTheme("ocean"))
	m, _ = update(t, m, key("y"))
	if m.theme.Name != nextTheme(ThemeOcean).Name {
		t.Errorf("y should move to the next theme, got %s", m.theme.Name)
	}
}
