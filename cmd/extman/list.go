package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
	"github.com/alexisbeaulieu97/extman/internal/loader"
	"github.com/alexisbeaulieu97/extman/internal/theme"
	"github.com/alexisbeaulieu97/extman/internal/tui/cards"
)

type listOptions struct {
	filter     string
	jsonOutput bool
	cardOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the extensions matching a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "all", "Filter to apply: all, active or inactive")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.cardOutput, "cards", false, "Render styled cards instead of a table")
	cmd.MarkFlagsMutuallyExclusive("json", "cards")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	filter, err := catalog.ParseFilter(opts.filter)
	if err != nil {
		return newCommandError("list", "parsing filter", err, "Use one of: all, active, inactive.")
	}

	app, err := newAppContext(cmd.Context(), flags, appOptions{stderr: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Logger.WithFields(map[string]any{"command": "list", "source": app.Config.DataSource})

	items, err := loader.New(loader.WithTimeout(app.Config.FetchTimeout)).Fetch(cmd.Context(), app.Config.DataSource)
	if err != nil {
		log.Error(err, "could not initialize app")
		return newCommandError("list", "loading extensions", err, "Check --data or data_source points at a readable JSON array.")
	}
	log.WithFields(map[string]any{"count": len(items)}).Debug("dataset loaded")

	store := catalog.NewStore(items)
	subset := store.Filtered(filter)

	switch {
	case opts.jsonOutput:
		return renderListJSON(cmd, filter, app.Theme.Mode(), subset)
	case opts.cardOutput:
		fmt.Fprintln(cmd.OutOrStdout(), cards.RenderCards(subset, app.Theme.Mode(), terminalWidth(cmd.OutOrStdout())))
		return nil
	}

	if len(subset) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s extensions.\n", strings.ToLower(filter.Label()))
		return nil
	}
	return renderListTable(cmd, subset)
}

func renderListTable(cmd *cobra.Command, items []catalog.Item) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tSTATUS\tDESCRIPTION")

	useUnicode := isTerminal(cmd.OutOrStdout())

	for _, item := range items {
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			item.Name,
			formatStatus(item.IsActive, useUnicode),
			item.Description,
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version string         `json:"version"`
	Filter  string         `json:"filter"`
	Theme   string         `json:"theme"`
	Count   int            `json:"count"`
	Items   []catalog.Item `json:"items"`
}

func renderListJSON(cmd *cobra.Command, filter catalog.Filter, mode theme.Mode, items []catalog.Item) error {
	payload := listJSONPayload{
		Version: "1.0",
		Filter:  filter.String(),
		Theme:   mode.String(),
		Count:   len(items),
		Items:   items,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func terminalWidth(writer any) int {
	if file, ok := writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil {
			return width
		}
	}
	return 80
}

func formatStatus(active, useUnicode bool) string {
	switch {
	case active && useUnicode:
		return "● active"
	case active:
		return "[on] active"
	case useUnicode:
		return "○ inactive"
	default:
		return "[off] inactive"
	}
}
