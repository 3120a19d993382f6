// Package shufflepanel renders shuffle mode: category filters, the
// current song with transport controls, and a window into the playlist.
package shufflepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/playback"
	"github.com/actq/utaview/internal/ui"
)

// GenerateMsg asks the app to build a fresh playlist from the panel's
// filters.
type GenerateMsg struct{}

// ToggleMsg asks the app to toggle play/pause.
type ToggleMsg struct{}

// AdvanceMsg asks the app to move the playback cursor.
type AdvanceMsg struct {
	Dir playback.Direction
}

// JumpMsg asks the app to jump to a playlist index.
type JumpMsg struct {
	Index int
}

// SeekMsg asks the app to seek to a fraction of the current song.
type SeekMsg struct {
	Fraction float64
}

// Model is the shuffle view state. Playback itself lives in the
// controller owned by the app; the panel reads it for rendering and
// issues commands through messages.
type Model struct {
	ui.Base

	ctrl *playback.Controller

	Categories   catalog.CategorySet
	Performances catalog.PerformanceSet

	// sel is the selection cursor inside the playlist window; -1
	// follows the playing song.
	sel int
}

// New creates a shuffle panel with every filter enabled.
func New(ctrl *playback.Controller) Model {
	return Model{
		ctrl:         ctrl,
		Categories:   catalog.AllCategories(),
		Performances: catalog.AllPerformances(),
		sel:          -1,
	}
}

// FiltersEmpty reports whether either filter axis has nothing selected,
// which disables playlist generation.
func (m Model) FiltersEmpty() bool {
	return m.Categories.IsEmpty() || m.Performances.IsEmpty()
}

// selection returns the effective playlist selection index.
func (m Model) selection() int {
	if m.sel >= 0 {
		return m.sel
	}
	return m.ctrl.Index()
}

// Update handles key input, emitting command messages for the app.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "1":
		m.Categories.Toggle(catalog.CategoryLive)
	case "2":
		m.Categories.Toggle(catalog.CategoryStreaming)
	case "3":
		m.Categories.Toggle(catalog.CategoryMV)
	case "4":
		m.Categories.Toggle(catalog.CategoryOther)
	case "s":
		m.Performances.Toggle(catalog.PerformanceSolo)
	case "u":
		m.Performances.Toggle(catalog.PerformanceUnit)
	case "r":
		if !m.FiltersEmpty() {
			m.sel = -1
			return m, send(GenerateMsg{})
		}
	case " ", "p":
		return m, send(ToggleMsg{})
	case "h", "left":
		return m, send(AdvanceMsg{Dir: playback.Prev})
	case "l", "right":
		return m, send(AdvanceMsg{Dir: playback.Next})
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "enter":
		if m.sel >= 0 {
			idx := m.sel
			m.sel = -1
			return m, send(JumpMsg{Index: idx})
		}
	case "[":
		return m, send(SeekMsg{Fraction: m.ctrl.SongProgress() - 0.1})
	case "]":
		return m, send(SeekMsg{Fraction: m.ctrl.SongProgress() + 0.1})
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if m.ctrl.Len() == 0 {
		return
	}
	sel := m.selection() + delta
	if sel < 0 {
		sel = 0
	}
	if sel >= m.ctrl.Len() {
		sel = m.ctrl.Len() - 1
	}
	m.sel = sel
}

// ResetSelection snaps the selection back to the playing song, used
// after the cursor moves for any reason other than local navigation.
func (m *Model) ResetSelection() {
	m.sel = -1
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
