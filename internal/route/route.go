// Package route maps location-fragment identifiers to view modes. The
// fragments match the site's hash routes, so config, the command line,
// and deep links share one vocabulary.
package route

import "strings"

// Mode is one of the two mutually exclusive views.
type Mode int

const (
	Shuffle Mode = iota
	List
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case List:
		return "list"
	case Shuffle:
		return "shuffle"
	default:
		return "unknown"
	}
}

// Fragment returns the canonical fragment identifier for the mode.
func (m Mode) Fragment() string {
	switch m {
	case List:
		return "#/list"
	default:
		return "#/shuffle"
	}
}

// Parse resolves a fragment identifier to a mode. "#/list" selects the
// list view; "#/shuffle" and "#/random" select shuffle. Anything else,
// including the empty fragment on first load, defaults to shuffle.
func Parse(fragment string) Mode {
	f := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	f = strings.Trim(f, "/")
	switch strings.ToLower(f) {
	case "list":
		return List
	case "shuffle", "random":
		return Shuffle
	default:
		return Shuffle
	}
}
