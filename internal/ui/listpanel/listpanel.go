// Package listpanel renders the catalogue as per-video cards with
// expandable song lists, filterable on two independent axes.
package listpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/ui"
)

// TypeFilter is the single-select video type axis; the zero value shows
// everything.
type TypeFilter int

const (
	TypeAll TypeFilter = iota
	TypeLive
	TypeStreaming
	TypeMV
	TypeOther
)

func (f TypeFilter) label() string {
	switch f {
	case TypeLive:
		return "3D Live"
	case TypeStreaming:
		return "歌枠"
	case TypeMV:
		return "MV"
	case TypeOther:
		return "その他"
	default:
		return "すべて"
	}
}

func (f TypeFilter) matches(c catalog.VideoCategory) bool {
	switch f {
	case TypeLive:
		return c == catalog.CategoryLive
	case TypeStreaming:
		return c == catalog.CategoryStreaming
	case TypeMV:
		return c == catalog.CategoryMV
	case TypeOther:
		return c == catalog.CategoryOther
	default:
		return true
	}
}

// PerfFilter is the single-select performance axis.
type PerfFilter int

const (
	PerfAll PerfFilter = iota
	PerfSolo
	PerfUnit
)

func (f PerfFilter) label() string {
	switch f {
	case PerfSolo:
		return "ソロ"
	case PerfUnit:
		return "コラボ"
	default:
		return "すべて"
	}
}

func (f PerfFilter) matches(p catalog.PerformanceType) bool {
	switch f {
	case PerfSolo:
		return p == catalog.PerformanceSolo
	case PerfUnit:
		return p == catalog.PerformanceUnit
	default:
		return true
	}
}

// Model is the list view state.
type Model struct {
	ui.Base

	entries []catalog.VideoEntry

	typeFilter TypeFilter
	perfFilter PerfFilter

	cursor   int
	offset   int
	expanded map[int]bool // keyed by movie id
}

// New creates an empty list panel.
func New() Model {
	return Model{expanded: make(map[int]bool)}
}

// SetEntries replaces the catalogue shown by the panel.
func (m *Model) SetEntries(entries []catalog.VideoEntry) {
	m.entries = entries
	m.cursor = 0
	m.offset = 0
}

// Visible returns the videos passing both filter axes. A video passes
// the performance axis when at least one of its songs does.
func (m Model) Visible() []catalog.VideoEntry {
	var out []catalog.VideoEntry
	for _, e := range m.entries {
		if !m.typeFilter.matches(e.Category) {
			continue
		}
		if !m.hasMatchingSong(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (m Model) hasMatchingSong(e catalog.VideoEntry) bool {
	for _, s := range e.Songs {
		if m.perfFilter.matches(s.Performance) {
			return true
		}
	}
	return false
}

// visibleSongs returns the songs of an entry passing the performance
// axis; the card's song count badge always shows the full count.
func (m Model) visibleSongs(e catalog.VideoEntry) []catalog.Song {
	var out []catalog.Song
	for _, s := range e.Songs {
		if m.perfFilter.matches(s.Performance) {
			out = append(out, s)
		}
	}
	return out
}

// Update handles key input for the panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(len(m.Visible())-1, 0)
	case "enter", " ":
		m.toggleCurrent()
	case "e":
		m.setAllExpanded(true)
	case "c":
		m.setAllExpanded(false)
	case "t":
		m.typeFilter = (m.typeFilter + 1) % 5
		m.clampCursor()
	case "p":
		m.perfFilter = (m.perfFilter + 1) % 3
		m.clampCursor()
	}
	m.ensureCursorVisible()
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// ensureCursorVisible adjusts the scroll offset to keep the cursor's
// card header on screen. Expanded cards shift line positions, so the
// offset tracks rendered lines rather than card indexes.
func (m *Model) ensureCursorVisible() {
	avail := m.Height() - chromeLines
	if avail <= 0 {
		m.offset = 0
		return
	}
	lines, cursorLine := m.cardLines(m.Visible())
	if cursorLine < m.offset {
		m.offset = cursorLine
	}
	if cursorLine >= m.offset+avail {
		m.offset = cursorLine - avail + 1
	}
	if limit := len(lines) - avail; m.offset > limit {
		m.offset = limit
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) clampCursor() {
	visible := len(m.Visible())
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) toggleCurrent() {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return
	}
	id := visible[m.cursor].MovieID
	m.expanded[id] = !m.expanded[id]
}

func (m *Model) setAllExpanded(expanded bool) {
	for _, e := range m.entries {
		m.expanded[e.MovieID] = expanded
	}
}

// IsExpanded reports whether a video card shows its song list.
func (m Model) IsExpanded(movieID int) bool {
	return m.expanded[movieID]
}
