package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shopmate/internal/tui"
)

func runStorefront(cmd *cobra.Command, flags *rootFlags, start string) error {
	app, err := newAppContext(cmd, flags, logToFile)
	if err != nil {
		return err
	}
	defer app.close()

	model := tui.NewModel(app.service, tui.Options{
		Context:    app.ctx,
		StartPath:  start,
		UseUnicode: supportsUnicode(cmd.OutOrStdout()),
		Logger:     app.logger,
	})

	app.logger.Info(app.ctx, "storefront opened", "route", start)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(app.ctx))
	if _, err := program.Run(); err != nil {
		return newCommandError("run", "the storefront", err, "Run with --verbose and check the log in "+app.cfg.DataDir+".")
	}
	app.logger.Info(app.ctx, "storefront closed")
	return nil
}
