package main

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/teamrandomizer/pkg/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "teams",
		Short:        "Split a list of players into random teams",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupWithLevel(logging.ParseLevel(logLevel))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newShuffleCmd(), newServeCmd())
	return root
}
