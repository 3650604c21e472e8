package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/teamrandomizer/internal/app"
	"github.com/mmynk/teamrandomizer/internal/config"
	"github.com/mmynk/teamrandomizer/pkg/logging"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the team randomizer page and API",
		Long:  `Runs the HTTP server. Settings come from the environment (and .env); --addr overrides TEAMS_ADDR.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if !cmd.Flags().Changed("log-level") {
				logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from TEAMS_ADDR)")

	return cmd
}
