// Package icons holds the glyph set used by the views, selectable
// between nerd-font, plain unicode, and ASCII for terminals without
// wide glyph support.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Collapsed string
	Expanded  string
	Playing   string
	Prev      string
	Play      string
	Pause     string
	Next      string
}

var (
	nerdIcons = Icons{
		Collapsed: "", // nf-fa-caret_right
		Expanded:  "", // nf-fa-caret_down
		Playing:   "", // nf-fa-play
		Prev:      "", // nf-fa-backward_step
		Play:      "",
		Pause:     "", // nf-fa-pause
		Next:      "", // nf-fa-forward_step
	}

	unicodeIcons = Icons{
		Collapsed: "▸",
		Expanded:  "▾",
		Playing:   "▶",
		Prev:      "⏮",
		Play:      "▶",
		Pause:     "⏸",
		Next:      "⏭",
	}

	noneIcons = Icons{
		Collapsed: ">",
		Expanded:  "v",
		Playing:   ">",
		Prev:      "<<",
		Play:      ">",
		Pause:     "||",
		Next:      ">>",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init sets the active icon set from the config value. Unknown values
// fall back to the plain unicode set, the config default.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Collapsed returns the marker for a folded video card.
func Collapsed() string { return current.Collapsed }

// Expanded returns the marker for an unfolded video card.
func Expanded() string { return current.Expanded }

// Playing returns the marker for the playlist row being played.
func Playing() string { return current.Playing }

// Prev returns the previous-song transport glyph.
func Prev() string { return current.Prev }

// Play returns the play transport glyph.
func Play() string { return current.Play }

// Pause returns the pause transport glyph.
func Pause() string { return current.Pause }

// Next returns the next-song transport glyph.
func Next() string { return current.Next }
