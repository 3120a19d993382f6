package playback

// Phase is the controller's position in the player-sync state machine.
//
//	┌──────┐ SetPlaylist ┌─────────────────┐ OnBindingReady ┌────────┐
//	│ Idle │────────────▶│ AwaitingBinding │───────────────▶│ Paused │
//	└──────┘             └─────────────────┘                └────────┘
//	    ▲                        ▲                            │    ▲
//	    │ Clear                  │ cursor moved               │    │
//	    │                        │ without a live             ▼    │
//	    │                        │ binding              ┌─────────┐
//	    └────────────────────────┴──────────────────────│ Playing │
//	                                                    └─────────┘
//
// Paused and Playing are the two sub-states of "bound": both imply an
// authoritative binding confirmed for the current song. A cursor move
// while a live binding exists reloads media on it and lands in Paused;
// without one it falls back to AwaitingBinding.
type Phase int

const (
	// Idle means no playlist is loaded.
	Idle Phase = iota
	// AwaitingBinding means a song is selected but no live player
	// binding has been confirmed for it.
	AwaitingBinding
	// Paused means bound and not playing.
	Paused
	// Playing means bound and playing.
	Playing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case AwaitingBinding:
		return "AwaitingBinding"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsBound reports whether a confirmed binding exists for the current song.
func (p Phase) IsBound() bool {
	return p == Paused || p == Playing
}

// Direction selects where Advance moves the cursor.
type Direction int

const (
	Next Direction = iota
	Prev
)
