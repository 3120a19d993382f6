// Package styles defines the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the application palette.
type Theme struct {
	Primary   lipgloss.Color // sky blue accent, active filters and cursor
	Secondary lipgloss.Color // warm accent for the shuffle header

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built styles for common patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Current lipgloss.Style // currently playing entry
	Cursor  lipgloss.Style
	Error   lipgloss.Style

	FilterOn  lipgloss.Style
	FilterOff lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#76a2dc"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c8c8c8"),
	FgMuted:  lipgloss.Color("#848484"),
	FgSubtle: lipgloss.Color("#5a5a5a"),

	BgCursor: lipgloss.Color("#2e3440"),

	Border: lipgloss.Color("#585858"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = &Styles{
			Base:    lipgloss.NewStyle().Foreground(t.FgBase),
			Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:   lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
			Current: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Cursor:  lipgloss.NewStyle().Background(t.BgCursor),
			Error:   lipgloss.NewStyle().Foreground(t.Error),

			FilterOn: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#101010")).
				Background(t.Primary).
				Padding(0, 1),
			FilterOff: lipgloss.NewStyle().
				Foreground(t.FgMuted).
				Padding(0, 1),
		}
	}
	return t.styles
}
