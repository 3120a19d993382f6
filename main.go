package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/actq/utaview/internal/app"
	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/config"
	"github.com/actq/utaview/internal/icons"
	"github.com/actq/utaview/internal/route"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.HasAPIBase() {
		fmt.Println("No api_base configured; set api_base in config.toml")
		os.Exit(1)
	}

	// An optional fragment argument overrides the configured start view,
	// e.g. `utaview '#/list'`.
	fragment := cfg.View
	if len(os.Args) > 1 {
		fragment = os.Args[1]
	}

	icons.Init(cfg.Icons)

	// No embedded player ships with the binary; the hosting integration
	// supplies sessions, either through a factory here or by sending
	// app.BindingReadyMsg into the running program.
	var bindings app.BindingFactory

	client := catalog.NewClient(cfg.APIBase, cfg.Performer)
	m := app.New(cfg, client, route.Parse(fragment), bindings)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
