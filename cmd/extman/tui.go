package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
	"github.com/alexisbeaulieu97/extman/internal/loader"
	"github.com/alexisbeaulieu97/extman/internal/logger"
	"github.com/alexisbeaulieu97/extman/internal/tui/cards"
)

func runUI(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd.Context(), flags, appOptions{logToFile: true, stderr: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Logger.WithFields(map[string]any{"command": "ui"})
	log.Info("launching card list")

	m := cards.NewModel(cards.Options{
		Store:  catalog.NewStore(nil),
		Loader: loader.New(loader.WithTimeout(app.Config.FetchTimeout)),
		Source: app.Config.DataSource,
		Theme:  app.Theme,
		Logger: app.Logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		log.Error(err, "card list execution failed")
		return fmt.Errorf("failed to run card list: %w", err)
	}

	if fm, ok := final.(cards.Model); ok {
		logSessionChanges(log, fm)
	}

	log.Info("card list closed")
	return nil
}

// logSessionChanges records item changes, which are never persisted.
func logSessionChanges(log *logger.Logger, m cards.Model) {
	changes := m.SessionChanges()
	if changes == "" {
		return
	}
	stats := m.SessionStats()
	log.WithFields(map[string]any{
		"changes": changes,
		"added":   stats.Added,
		"removed": stats.Removed,
	}).Info("session changes discarded")
}
