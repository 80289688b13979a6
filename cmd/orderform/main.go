package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/orderform/core"
	"github.com/jask/orderform/internal/config"
	"github.com/jask/orderform/internal/logging"
	"github.com/jask/orderform/internal/orderform"
	"github.com/jask/orderform/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	theme, err := core.LoadTheme(cfg.UI.ThemePath)
	if err != nil {
		log.Fatalf("theme: %v", err)
	}

	defaults := core.DefaultKeyBindings()
	known := core.DefaultKeybindingsByAction(defaults)
	for action := range cfg.Keys {
		if _, ok := known[action]; !ok {
			logger.Warn("ignoring key binding for unknown action", zap.String("action", action))
		}
	}
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(defaults, cfg.Keys))

	ctrl := orderform.New(logger)
	app := tui.New(ctrl, cfg, keys, core.NewStyles(theme), logger)
	defer app.Close()

	logger.Info("starting", zap.String("snapshot_format", cfg.Output.SnapshotFormat))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
