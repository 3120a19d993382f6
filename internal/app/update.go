package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/playback"
	"github.com/actq/utaview/internal/playlist"
	"github.com/actq/utaview/internal/route"
	"github.com/actq/utaview/internal/ui/shufflepanel"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case ArchiveLoadedMsg:
		return m.handleArchiveLoaded(msg)

	case TickMsg:
		return m.handleTick()

	case PlayConfirmMsg:
		m.Ctrl.ConfirmPlay(msg.Attempt)
		return m, nil

	case BindingReadyMsg:
		m.Ctrl.OnBindingReady(msg.Binding, msg.VideoID)
		return m, nil

	case PlayerStateMsg:
		m.Ctrl.OnStateChange(msg.State, msg.VideoID)
		return m, nil

	case shufflepanel.GenerateMsg:
		return m.handleGenerate()

	case shufflepanel.ToggleMsg:
		if attempt := m.Ctrl.TogglePlayPause(); attempt > 0 {
			return m, PlayConfirmCmd(attempt, m.Cfg.PlayConfirmWindow())
		}
		return m, nil

	case shufflepanel.AdvanceMsg:
		if m.Ctrl.Advance(msg.Dir) {
			m.ShufflePanel.ResetSelection()
		}
		return m, m.attachCmd()

	case shufflepanel.JumpMsg:
		if m.Ctrl.JumpTo(msg.Index) {
			m.ShufflePanel.ResetSelection()
		}
		return m, m.attachCmd()

	case shufflepanel.SeekMsg:
		m.Ctrl.SeekWithinSong(msg.Fraction)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	panelHeight := msg.Height - headerHeight
	if panelHeight < 0 {
		panelHeight = 0
	}
	m.ListPanel.SetSize(msg.Width, panelHeight)
	m.ShufflePanel.SetSize(msg.Width, panelHeight)
	return m, nil
}

// handleArchiveLoaded finishes startup. A failed fetch leaves an empty
// catalogue behind the same interface rather than aborting, so the UI
// stays usable.
func (m Model) handleArchiveLoaded(msg ArchiveLoadedMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		m.ErrorMsg = "カタログの取得に失敗しました: " + msg.Err.Error()
		m.Archive = &catalog.Archive{}
		return m, nil
	}
	m.Archive = msg.Archive
	m.ListPanel.SetEntries(catalog.GroupByVideo(
		m.Archive.Songs, m.Archive.Movies, m.Archive.Directory))
	return m, nil
}

// handleTick polls the player and reschedules itself. The chain stops
// on its own once shuffle mode is left or the playlist is cleared; a
// new chain starts from handleGenerate or the mode switch.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.Mode != route.Shuffle || m.Ctrl.Len() == 0 {
		return m, nil
	}
	m.Ctrl.Poll()
	return m, TickCmd(m.Cfg.PollInterval())
}

func (m Model) handleGenerate() (tea.Model, tea.Cmd) {
	if m.Archive == nil {
		return m, nil
	}
	wasEmpty := m.Ctrl.Len() == 0
	m.Ctrl.SetPlaylist(playlist.Build(
		m.Archive.Songs, m.Archive.Movies, m.Archive.Directory,
		m.ShufflePanel.Categories, m.ShufflePanel.Performances))
	m.ShufflePanel.ResetSelection()

	var cmds []tea.Cmd
	if wasEmpty && m.Ctrl.Len() > 0 {
		cmds = append(cmds, TickCmd(m.Cfg.PollInterval()))
	}
	if cmd := m.attachCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// attachCmd opens a player session for the current song when the
// controller is waiting for one and a factory exists.
func (m Model) attachCmd() tea.Cmd {
	if m.Ctrl.Phase() != playback.AwaitingBinding {
		return nil
	}
	song := m.Ctrl.Current()
	if song == nil {
		return nil
	}
	return AttachBindingCmd(m.Bindings, song.VideoID, song.StartSeconds())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.Ctrl.Clear()
		return m, tea.Quit
	case "tab":
		return m.switchMode()
	}

	var cmd tea.Cmd
	switch m.Mode {
	case route.List:
		m.ListPanel, cmd = m.ListPanel.Update(msg)
	case route.Shuffle:
		m.ShufflePanel, cmd = m.ShufflePanel.Update(msg)
	}
	return m, cmd
}

// switchMode toggles between the views. Leaving shuffle tears playback
// down, matching a page navigation away from the player.
func (m Model) switchMode() (tea.Model, tea.Cmd) {
	if m.Mode == route.Shuffle {
		m.Ctrl.Clear()
		m.ShufflePanel.ResetSelection()
		m.Mode = route.List
		return m, nil
	}
	m.Mode = route.Shuffle
	if m.Ctrl.Len() > 0 {
		return m, TickCmd(m.Cfg.PollInterval())
	}
	return m, nil
}
