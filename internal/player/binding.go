// Package player defines the contract with the external embedded video
// player. The player itself lives outside this program; it is consumed
// only through the Binding command/event surface.
package player

// Binding is a live handle to an instantiated external player session.
//
// Commands may be issued only while Attached reports true. A binding
// becomes invalid when its underlying visual element is torn down, at
// which point every further command must be skipped by the caller and
// every event from it ignored.
type Binding interface {
	// SeekTo moves playback to an absolute offset in seconds.
	// allowSeekAhead permits seeking into unbuffered regions.
	SeekTo(seconds float64, allowSeekAhead bool)

	// LoadMediaByID replaces the loaded media, starting at startSeconds.
	// Implementations do not reliably re-fire a ready event on reload.
	LoadMediaByID(id string, startSeconds int)

	Play()
	Pause()

	CurrentTime() float64
	Duration() float64
	PlayerState() State

	// LoadedMediaID returns the external id of the currently loaded
	// media, or "" if unknown.
	LoadedMediaID() string

	// Attached reports whether the underlying visual element still
	// exists. It is the liveness check made before every command.
	Attached() bool

	// Destroy tears down the player session.
	Destroy()
}
