package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	dataSource string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "extman",
		Short:         "extman browses and toggles a list of browser extensions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal there is nothing to drive the UI, so print
			// the list instead
			if !isTerminal(cmd.OutOrStdout()) {
				return runList(cmd, flags, &listOptions{filter: "all"})
			}
			return runUI(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config file (default ~/.extman/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.dataSource, "data", "", "Dataset URL or file path (overrides config)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
