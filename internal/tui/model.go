// Package tui presents a display in the terminal as braille dots and
// drives its animation from bubbletea ticks.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/povdisplay/internal/control"
	"github.com/san-kum/povdisplay/internal/display"
	"github.com/san-kum/povdisplay/internal/surface"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	historyCapacity = 120
	chartRows       = 4
	chrome          = 5 // header, blank, blank, status, help
	chartChrome     = 2
)

type Option func(*Model)

// WithTheme picks the colour scheme by name.
func WithTheme(name string) Option { return func(m *Model) { m.theme = GetTheme(name) } }

// WithControls sets the amounts the key actions use.
func WithControls(c control.Controls) Option { return func(m *Model) { m.ctl = c } }

func WithLogger(l logr.Logger) Option { return func(m *Model) { m.log = l } }

// WithChart shows the coverage chart from the start.
func WithChart(on bool) Option { return func(m *Model) { m.showChart = on } }

// Model is the bubbletea model around a display. The display must have
// been built with the same clock.
type Model struct {
	d      *display.Display
	clock  *Clock
	target *surface.Buffer
	canvas *Canvas
	log    logr.Logger
	theme  Theme
	style  styles

	width, height int
	showChart     bool
	ctl           control.Controls
	coverage      []float64
	lastFrame     time.Time
	fps           float64
}

func NewModel(d *display.Display, clock *Clock, opts ...Option) Model {
	m := Model{
		d:        d,
		clock:    clock,
		log:      logr.Discard(),
		theme:    ThemePhosphor,
		width:    defaultWidth,
		height:   defaultHeight,
		ctl:      control.Defaults(),
		coverage: make([]float64, 0, historyCapacity),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.style = m.theme.styles()
	m.layout()
	m.present()
	return m
}

// layout sizes the canvas to the space left over by the surrounding text.
func (m *Model) layout() {
	rows := m.height - chrome
	if m.showChart {
		rows -= chartRows + chartChrome
	}
	cols := m.width - 4
	rows, cols = max(rows, 4), max(cols, 8)
	if m.canvas == nil {
		m.canvas = NewCanvas(cols, rows)
	} else {
		m.canvas.Resize(cols, rows)
	}
	w, h := m.canvas.Dots()
	t, err := surface.New(w, h)
	if err != nil {
		m.log.Error(err, "canvas target", "cols", cols, "rows", rows)
		return
	}
	if m.target != nil {
		surface.Stretch(t, m.target)
	}
	m.target = t
}

// present copies the display into the canvas. The display is only asked
// for a new frame when it has one, since presenting may erase its buffer;
// otherwise the canvas is reloaded from the last frame it showed.
func (m *Model) present() {
	if m.target == nil {
		return
	}
	if m.d.Ready() {
		m.d.Present(m.target)
	}
	m.canvas.Load(m.target)
}

func (m Model) Init() tea.Cmd { return m.clock.pending() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.present()
		return m, nil
	case tickMsg:
		if !m.clock.current(msg) {
			return m, nil
		}
		if !msg.at.IsZero() && !m.lastFrame.IsZero() {
			if dt := msg.at.Sub(m.lastFrame).Seconds(); dt > 0 {
				m.fps = 1 / dt
			}
		}
		m.lastFrame = msg.at
		m.advance(m.d.NextFrame)
		return m, m.clock.next()
	}
	return m, nil
}

// advance runs one frame through next and records its coverage.
func (m *Model) advance(next func() bool) {
	if !next() {
		return
	}
	buf := m.d.Buffer()
	m.coverage = append(m.coverage, 100*float64(buf.Count())/float64(buf.Width*buf.Height))
	if len(m.coverage) > historyCapacity {
		m.coverage = m.coverage[1:]
	}
	m.present()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "g":
		m.showChart = !m.showChart
		m.layout()
		m.present()
		return m, nil
	case "y":
		m.theme = nextTheme(m.theme)
		m.style = m.theme.styles()
		return m, nil
	}
	a := control.Lookup(msg.String())
	if a == control.Step {
		m.advance(m.d.Step)
		return m, nil
	}
	switch m.ctl.Apply(m.d, a) {
	case control.Quitting:
		return m, tea.Quit
	case control.Redraw:
		m.present()
	}
	return m, m.clock.pending()
}

func (m Model) View() string {
	var b strings.Builder

	st := m.style
	icon, state := st.paused.Render("○"), st.paused.Render("paused")
	if m.d.Running() {
		icon, state = st.running.Render("●"), st.running.Render("running")
	}
	buf := m.d.Buffer()
	b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n\n", icon, st.title.Render("povdisplay"), state,
		st.help.UnsetPaddingLeft().Render(fmt.Sprintf("frame %d  %dx%d  %.0ffps", m.d.Frame(), buf.Width, buf.Height, m.fps))))

	b.WriteString(st.canvas.Render(m.canvas.String()) + "\n")

	if m.showChart && len(m.coverage) > 1 {
		chart := asciigraph.Plot(m.coverage,
			asciigraph.Height(chartRows),
			asciigraph.Width(max(m.width-16, 10)),
			asciigraph.Precision(1),
			asciigraph.Caption("lit pixels (%)"))
		b.WriteString("\n" + st.chart.Render(chart) + "\n")
	}

	b.WriteString("\n" + st.status.Render(m.d.StatusMessage()) + "\n")
	b.WriteString(st.help.Render(control.Help + "  g chart  y theme"))
	return b.String()
}

// Run takes over the terminal until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
