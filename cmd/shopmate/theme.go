package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle]",
		Short:     "Show or toggle the light/dark theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, logToStderr)
			if err != nil {
				return err
			}
			defer app.close()

			if len(args) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", app.service.Theme().Current())
				return nil
			}

			name, err := app.service.ToggleTheme(app.ctx)
			if err != nil {
				return newCommandError("toggle theme", "saving the theme", err, "Check permissions on "+app.cfg.StorePath()+".")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s mode\n", name)
			return nil
		},
	}
}
