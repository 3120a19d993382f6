package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/actq/utaview/internal/catalog"
)

// SingerTag renders a singer name as a colored tag. Directory colors
// become the tag background with a readable foreground picked by
// luminance; singers without a color get a neutral outline style.
func SingerTag(s catalog.Singer) string {
	if s.Color == "" {
		return lipgloss.NewStyle().
			Foreground(T().FgMuted).
			Render("[" + s.Name + "]")
	}
	bg, err := colorful.Hex(s.Color)
	if err != nil {
		return lipgloss.NewStyle().
			Foreground(T().FgMuted).
			Render("[" + s.Name + "]")
	}
	fg := "#101010"
	if _, _, l := bg.Hsl(); l < 0.45 {
		fg = "#f0f0f0"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg.Hex())).
		Padding(0, 1).
		Render(s.Name)
}

// SingerTags renders a list of singers separated by single spaces.
func SingerTags(singers []catalog.Singer) string {
	out := ""
	for i, s := range singers {
		if i > 0 {
			out += " "
		}
		out += SingerTag(s)
	}
	return out
}
