package app

import (
	"time"

	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/player"
)

// TickMsg drives the playback position poll while shuffle mode is
// active.
type TickMsg time.Time

// PlayConfirmMsg re-checks an optimistic play attempt after its
// confirmation window. Attempt ties the timer to the toggle that
// started it so a superseded attempt cannot act.
type PlayConfirmMsg struct {
	Attempt int
}

// ArchiveLoadedMsg carries the result of the initial catalogue fetch.
type ArchiveLoadedMsg struct {
	Archive *catalog.Archive
	Err     error
}

// BindingReadyMsg delivers a live player session to the controller.
// VideoID is the video the session reports as loaded; the controller
// rejects the message when it no longer matches the current song.
type BindingReadyMsg struct {
	Binding player.Binding
	VideoID string
}

// PlayerStateMsg folds an asynchronous player state event into the
// controller, guarded the same way as BindingReadyMsg. External
// integrations inject these through Program.Send.
type PlayerStateMsg struct {
	State   player.State
	VideoID string
}
