package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extman/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the persisted color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := ""
			if len(args) == 1 {
				action = args[0]
			}
			return runTheme(cmd, rootFlags, action)
		},
	}

	return cmd
}

func runTheme(cmd *cobra.Command, flags *rootFlags, action string) error {
	app, err := newAppContext(cmd.Context(), flags, appOptions{stderr: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	mode := app.Theme.Mode()

	switch action {
	case "":
	case "toggle":
		mode, err = app.Theme.Toggle(ctx)
	default:
		mode = theme.ParseMode(action)
		err = app.Theme.Apply(ctx, mode)
	}
	if err != nil {
		return newCommandError("change theme", "saving preference", err, "Check the preferences path is writable.")
	}

	app.Logger.WithFields(map[string]any{"command": "theme", "theme": mode.String()}).Debug("theme applied")
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", mode.Icon(), mode, mode.IconAsset())
	return nil
}
