package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct {
	gen int
	at  time.Time
}

// Clock is the display's tick source inside a bubbletea program. Arming
// queues a tick command that the model hands back to the runtime; ticks
// from a previous arming are recognised by generation and dropped.
type Clock struct {
	armed  bool
	period time.Duration
	gen    int
	kick   bool
}

func NewClock() *Clock { return &Clock{} }

func (c *Clock) Arm(period time.Duration) bool {
	if period <= 0 {
		return false
	}
	c.armed = true
	c.period = period
	c.gen++
	c.kick = true
	return true
}

func (c *Clock) Disarm() {
	c.armed = false
	c.kick = false
	c.gen++
}

func (c *Clock) Armed() bool { return c.armed }

// current reports whether msg belongs to the live arming.
func (c *Clock) current(msg tickMsg) bool { return c.armed && msg.gen == c.gen }

func (c *Clock) next() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.period, func(t time.Time) tea.Msg { return tickMsg{gen: gen, at: t} })
}

// pending returns the first tick of a fresh arming, once.
func (c *Clock) pending() tea.Cmd {
	if !c.kick || !c.armed {
		return nil
	}
	c.kick = false
	return c.next()
}
