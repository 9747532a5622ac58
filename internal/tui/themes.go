package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the terminal presenter.
type Theme struct {
	Name    string
	Dots    lipgloss.Color
	Title   lipgloss.Color
	Chart   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
}

var (
	ThemePhosphor = Theme{
		Name:    "phosphor",
		Dots:    lipgloss.Color("#33ff33"),
		Title:   lipgloss.Color("#88ff88"),
		Chart:   lipgloss.Color("#00cc66"),
		Text:    lipgloss.Color("#ccffcc"),
		Muted:   lipgloss.Color("#336633"),
		Running: lipgloss.Color("#33ff33"),
		Paused:  lipgloss.Color("#ffff00"),
	}

	ThemeAmber = Theme{
		Name:    "amber",
		Dots:    lipgloss.Color("#ffb000"),
		Title:   lipgloss.Color("#ffcc66"),
		Chart:   lipgloss.Color("#ff9900"),
		Text:    lipgloss.Color("#ffe0b0"),
		Muted:   lipgloss.Color("#805800"),
		Running: lipgloss.Color("#ffb000"),
		Paused:  lipgloss.Color("#ff4400"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Dots:    lipgloss.Color("#ffffff"),
		Title:   lipgloss.Color("#ffffff"),
		Chart:   lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#dddddd"),
		Muted:   lipgloss.Color("#777777"),
		Running: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Dots:    lipgloss.Color("#00a8cc"),
		Title:   lipgloss.Color("#e0f0ff"),
		Chart:   lipgloss.Color("#0077be"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Running: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffcc00"),
	}

	Themes = []Theme{ThemePhosphor, ThemeAmber, ThemeMinimal, ThemeOcean}
)

// GetTheme returns the named theme, or phosphor.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePhosphor
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme follows t in Themes, wrapping.
func nextTheme(t Theme) Theme {
	for i, c := range Themes {
		if c.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

type styles struct {
	canvas, title, chart, status, help, running, paused lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		canvas:  lipgloss.NewStyle().Foreground(t.Dots).Padding(0, 2),
		title:   lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		chart:   lipgloss.NewStyle().Foreground(t.Chart).PaddingLeft(2),
		status:  lipgloss.NewStyle().Foreground(t.Text).PaddingLeft(2),
		help:    lipgloss.NewStyle().Foreground(t.Muted).PaddingLeft(2),
		running: lipgloss.NewStyle().Foreground(t.Running),
		paused:  lipgloss.NewStyle().Foreground(t.Paused),
	}
}
