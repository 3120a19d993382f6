// Package app wires the panels, the catalogue client, and the playback
// controller into the root bubbletea model.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/config"
	"github.com/actq/utaview/internal/playback"
	"github.com/actq/utaview/internal/player"
	"github.com/actq/utaview/internal/route"
	"github.com/actq/utaview/internal/ui/listpanel"
	"github.com/actq/utaview/internal/ui/shufflepanel"
)

// BindingFactory opens a player session for a video, cued at the given
// offset, and may return nil when no session can be opened. With a nil
// factory the controller waits for a binding delivered externally via
// BindingReadyMsg.
type BindingFactory func(videoID string, startSeconds int) player.Binding

// Model is the root application model containing all state.
type Model struct {
	Cfg      *config.Config
	Client   *catalog.Client
	Bindings BindingFactory

	Archive *catalog.Archive
	Ctrl    *playback.Controller

	ListPanel    listpanel.Model
	ShufflePanel shufflepanel.Model

	Mode     route.Mode
	Loading  bool
	ErrorMsg string

	Width  int
	Height int
}

// New creates the root model for the requested view. The catalogue is
// loaded asynchronously from Init. bindings may be nil.
func New(cfg *config.Config, client *catalog.Client, mode route.Mode, bindings BindingFactory) Model {
	ctrl := playback.NewController()
	return Model{
		Cfg:          cfg,
		Client:       client,
		Bindings:     bindings,
		Ctrl:         ctrl,
		ListPanel:    listpanel.New(),
		ShufflePanel: shufflepanel.New(ctrl),
		Mode:         mode,
		Loading:      true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return LoadArchiveCmd(m.Client)
}
