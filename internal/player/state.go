package player

// State is the external player's reported playback state.
type State int

const (
	Unstarted State = iota
	Ended
	Playing
	Paused
	Buffering
	Cued
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case Ended:
		return "Ended"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Buffering:
		return "Buffering"
	case Cued:
		return "Cued"
	default:
		return "Unknown"
	}
}

// IsPlaying reports whether the state means media is actually advancing.
func (s State) IsPlaying() bool {
	return s == Playing
}
