package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/actq/utaview/internal/catalog"
)

// TickCmd schedules the next position poll.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// PlayConfirmCmd schedules the confirmation check for a play attempt.
func PlayConfirmCmd(attempt int, window time.Duration) tea.Cmd {
	return tea.Tick(window, func(_ time.Time) tea.Msg {
		return PlayConfirmMsg{Attempt: attempt}
	})
}

// AttachBindingCmd asks the factory for a player session and reports
// it ready. Nil-safe on both the factory and its result.
func AttachBindingCmd(factory BindingFactory, videoID string, startSeconds int) tea.Cmd {
	if factory == nil {
		return nil
	}
	return func() tea.Msg {
		b := factory(videoID, startSeconds)
		if b == nil {
			return nil
		}
		return BindingReadyMsg{Binding: b, VideoID: videoID}
	}
}

// LoadArchiveCmd fetches the full catalogue in the background.
func LoadArchiveCmd(client *catalog.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		archive, err := client.Load(ctx)
		return ArchiveLoadedMsg{Archive: archive, Err: err}
	}
}
