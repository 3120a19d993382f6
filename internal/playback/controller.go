// Package playback owns the shuffle playback cursor and keeps it in
// sync with the external player's asynchronous event stream.
//
// Everything here runs on the UI event loop: there is no locking, but
// event ordering is adversarial. Player events can arrive late, out of
// order relative to a cursor change, or be duplicated, so every handler
// guards on the reported external video id and on binding liveness
// before touching state.
package playback

import (
	"math"

	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/player"
	"github.com/actq/utaview/internal/playlist"
)

// Controller drives the external player through a shuffle playlist.
type Controller struct {
	queue *playlist.Playlist
	index int
	phase Phase

	binding      player.Binding
	lastLoadedID string

	// position/duration are the last polled values, in absolute video
	// seconds. duration 0 means unknown.
	position float64
	duration float64

	// playAttempt tags each optimistic play so a stale delayed
	// confirmation cannot revert a newer attempt.
	playAttempt int
}

// NewController creates an idle controller.
func NewController() *Controller {
	return &Controller{phase: Idle}
}

// Phase returns the current state-machine phase.
func (c *Controller) Phase() Phase { return c.phase }

// IsPlaying reports whether the controller believes media is playing.
func (c *Controller) IsPlaying() bool { return c.phase == Playing }

// Index returns the playlist cursor. Meaningless when Len is 0.
func (c *Controller) Index() int { return c.index }

// Len returns the playlist length.
func (c *Controller) Len() int {
	if c.queue == nil {
		return 0
	}
	return c.queue.Len()
}

// Current returns the song under the cursor, or nil if the playlist is
// empty.
func (c *Controller) Current() *catalog.ShuffleSong {
	if c.queue == nil {
		return nil
	}
	return c.queue.Song(c.index)
}

// Playlist returns all songs, for rendering the playlist window.
func (c *Controller) Playlist() []catalog.ShuffleSong {
	if c.queue == nil {
		return nil
	}
	return c.queue.Songs()
}

// Position returns the last polled playback position in absolute video
// seconds.
func (c *Controller) Position() float64 { return c.position }

// LastLoadedID returns the external video id most recently loaded into
// the binding, or "" when none.
func (c *Controller) LastLoadedID() string { return c.lastLoadedID }

// SetPlaylist atomically replaces the playlist, resets the cursor to 0,
// and clears accumulated position and duration. An empty playlist is
// equivalent to Clear.
func (c *Controller) SetPlaylist(p *playlist.Playlist) {
	if p == nil || p.IsEmpty() {
		c.Clear()
		return
	}
	c.queue = p
	c.index = 0
	c.resetForCurrent()
	c.loadCurrent()
}

// Clear empties the playlist and tears down the binding. The stored
// reference is dropped even when the element is already gone, so a dead
// binding is never retried.
func (c *Controller) Clear() {
	if c.binding != nil && c.binding.Attached() {
		c.binding.Destroy()
	}
	c.binding = nil
	c.lastLoadedID = ""
	c.queue = nil
	c.index = 0
	c.position = 0
	c.duration = 0
	c.phase = Idle
}

// Advance moves the cursor one song forward or back. It is a no-op at
// either boundary and reports whether the cursor moved.
func (c *Controller) Advance(dir Direction) bool {
	if c.queue == nil || c.queue.IsEmpty() {
		return false
	}
	next := c.index
	switch dir {
	case Next:
		next++
	case Prev:
		next--
	}
	if next < 0 || next >= c.queue.Len() {
		return false
	}
	c.index = next
	c.resetForCurrent()
	c.loadCurrent()
	return true
}

// JumpTo moves the cursor to an arbitrary playlist index. Out-of-range
// indexes are a no-op.
func (c *Controller) JumpTo(index int) bool {
	if c.queue == nil || index < 0 || index >= c.queue.Len() {
		return false
	}
	c.index = index
	c.resetForCurrent()
	c.loadCurrent()
	return true
}

// OnBindingReady accepts a candidate binding from the player's ready
// event. The event is dropped when the element is already detached or
// when it reports a video id other than the current song's, which
// happens when a ready for the previous song arrives after the cursor
// moved.
func (c *Controller) OnBindingReady(b player.Binding, reportedID string) bool {
	song := c.Current()
	if song == nil || b == nil || !b.Attached() {
		return false
	}
	if reportedID != "" && reportedID != song.VideoID {
		return false
	}
	c.binding = b
	c.lastLoadedID = song.VideoID
	if d := b.Duration(); d > 0 && !math.IsInf(d, 0) && !math.IsNaN(d) {
		c.duration = d
	}
	if start := song.StartSeconds(); start > 0 {
		b.SeekTo(float64(start), true)
	}
	c.phase = Paused
	return true
}

// OnStateChange folds an external state event into the play/pause
// sub-state. It is guarded like OnBindingReady, and "ended" is mapped
// to paused rather than advancing: one video holds many songs, so song
// completion is detected only by the position poll against the song's
// own end boundary.
func (c *Controller) OnStateChange(s player.State, reportedID string) bool {
	song := c.Current()
	if song == nil || c.binding == nil || !c.binding.Attached() {
		return false
	}
	if reportedID != "" && reportedID != song.VideoID {
		return false
	}
	switch s {
	case player.Playing:
		c.phase = Playing
	case player.Paused, player.Cued, player.Ended:
		c.phase = Paused
	case player.Buffering, player.Unstarted:
		// Neutral: keep the current sub-state.
	}
	return true
}

// Poll pulls position and duration from the live binding and advances
// the cursor once the current song's end boundary is crossed. The
// cursor move resets position, so a late poll for the previous song
// cannot re-trigger the advance.
func (c *Controller) Poll() {
	song := c.Current()
	if song == nil {
		return
	}
	if c.binding == nil {
		return
	}
	if !c.binding.Attached() {
		c.dropBinding()
		return
	}
	c.position = c.binding.CurrentTime()
	if d := c.binding.Duration(); d > 0 {
		c.duration = d
	}
	if song.HasEnd() && c.position >= float64(*song.End) {
		c.Advance(Next)
	}
}

// TogglePlayPause flips play/pause optimistically. When a play was
// issued it returns a positive attempt id that must be passed to
// ConfirmPlay after the confirmation window; otherwise it returns 0.
// Autoplay is not trusted to succeed, notably on mobile player hosts.
func (c *Controller) TogglePlayPause() int {
	if c.Current() == nil || c.binding == nil {
		return 0
	}
	if !c.binding.Attached() {
		c.dropBinding()
		return 0
	}
	if c.phase == Playing {
		c.binding.Pause()
		c.phase = Paused
		return 0
	}
	c.binding.Play()
	c.phase = Playing
	c.playAttempt++
	return c.playAttempt
}

// ConfirmPlay re-checks a play attempt after its confirmation window.
// Only the most recent attempt may act: a slow timer from a superseded
// attempt is ignored. If the player never actually started, the
// optimistic playing flag is reverted.
func (c *Controller) ConfirmPlay(attempt int) {
	if attempt != c.playAttempt {
		return
	}
	if c.phase != Playing {
		return
	}
	if !c.binding.Attached() {
		c.dropBinding()
		return
	}
	if !c.binding.PlayerState().IsPlaying() {
		c.phase = Paused
	}
}

// SeekWithinSong seeks to a fraction of the current song's span.
func (c *Controller) SeekWithinSong(fraction float64) {
	song := c.Current()
	if song == nil || c.binding == nil {
		return
	}
	if !c.binding.Attached() {
		c.dropBinding()
		return
	}
	span := c.SongDuration()
	if span <= 0 {
		return
	}
	fraction = math.Min(math.Max(fraction, 0), 1)
	target := float64(song.StartSeconds()) + fraction*span
	c.binding.SeekTo(target, true)
	c.position = target
}

// SongDuration returns the current song's span in seconds: end-start
// when an explicit end exists, otherwise the remainder of the video
// past the start. 0 when unknown.
func (c *Controller) SongDuration() float64 {
	song := c.Current()
	if song == nil {
		return 0
	}
	start := float64(song.StartSeconds())
	if song.HasEnd() {
		return float64(*song.End) - start
	}
	if c.duration > start {
		return c.duration - start
	}
	return 0
}

// SongElapsed returns seconds played within the current song, clamped
// to [0, SongDuration] once the span is known.
func (c *Controller) SongElapsed() float64 {
	song := c.Current()
	if song == nil {
		return 0
	}
	elapsed := c.position - float64(song.StartSeconds())
	if elapsed < 0 {
		return 0
	}
	if span := c.SongDuration(); span > 0 && elapsed > span {
		return span
	}
	return elapsed
}

// SongProgress returns the fraction of the current song played, in
// [0, 1], or 0 when the span is unknown.
func (c *Controller) SongProgress() float64 {
	span := c.SongDuration()
	if span <= 0 {
		return 0
	}
	return c.SongElapsed() / span
}

// resetForCurrent applies the cursor-move reset semantics: position
// back to the new song's start, duration unknown, not playing.
func (c *Controller) resetForCurrent() {
	song := c.Current()
	if song == nil {
		c.position = 0
	} else {
		c.position = float64(song.StartSeconds())
	}
	c.duration = 0
}

// loadCurrent issues a load on the existing binding for the song under
// the cursor. The loaded id is recorded immediately rather than waiting
// for a ready confirmation, since players do not reliably re-fire ready
// on reload. Without a live binding the controller waits for one.
func (c *Controller) loadCurrent() {
	song := c.Current()
	if song == nil {
		return
	}
	if c.binding == nil {
		c.phase = AwaitingBinding
		return
	}
	if !c.binding.Attached() {
		c.dropBinding()
		return
	}
	c.binding.LoadMediaByID(song.VideoID, song.StartSeconds())
	c.lastLoadedID = song.VideoID
	c.phase = Paused
}

// dropBinding discards a dead binding reference without issuing any
// command against it.
func (c *Controller) dropBinding() {
	c.binding = nil
	c.lastLoadedID = ""
	if c.phase.IsBound() {
		c.phase = AwaitingBinding
	}
}
