package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/teamrandomizer/internal/ids"
	"github.com/mmynk/teamrandomizer/internal/importer"
	"github.com/mmynk/teamrandomizer/internal/models"
	"github.com/mmynk/teamrandomizer/internal/partition"
	"github.com/mmynk/teamrandomizer/internal/roster"
)

type shuffleOptions struct {
	size     int
	count    int
	format   string
	maxBytes int64
}

func newShuffleCmd() *cobra.Command {
	opts := shuffleOptions{}

	cmd := &cobra.Command{
		Use:   "shuffle FILE",
		Short: "Print random teams built from a roster file",
		Long: `Reads player names from a CSV/TSV, JSON or YAML file and prints
random teams, either of a fixed size (--size) or a fixed number of
teams (--count). Blank and non-text cells are skipped. Use - to read
from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := models.BySize(opts.size)
			if cmd.Flags().Changed("count") {
				policy = models.ByCount(opts.count)
			}
			return runShuffle(cmd, args[0], policy, opts)
		},
	}

	cmd.Flags().IntVar(&opts.size, "size", models.DefaultTeamSize, "players per team")
	cmd.Flags().IntVar(&opts.count, "count", models.DefaultTeamCount, "number of teams")
	cmd.Flags().StringVar(&opts.format, "format", "", "input format: csv, json or yaml (default: from extension)")
	cmd.Flags().Int64Var(&opts.maxBytes, "max-bytes", importer.DefaultMaxBytes, "largest file accepted")
	cmd.MarkFlagsMutuallyExclusive("size", "count")

	return cmd
}

func runShuffle(cmd *cobra.Command, path string, policy models.SizingPolicy, opts shuffleOptions) error {
	format, err := importer.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open roster file: %w", err)
		}
		defer f.Close()
		in = f
	}

	tokens, err := importer.New(opts.maxBytes).Parse(cmd.Context(), path, format, in)
	if err != nil {
		slog.Warn("Import failed, treating as empty", "file", path, "error", err)
	}

	r := roster.New(ids.UUID{})
	r.Import(tokens)
	slog.Info("Roster loaded", "file", path, "entrants", r.Len(), "tokens", len(tokens))

	out := cmd.OutOrStdout()
	groups, err := partition.New(ids.UUID{}).Partition(r.Entrants(), policy)
	if errors.Is(err, partition.ErrEmptyRoster) {
		fmt.Fprintln(out, "No players found.")
		return nil
	}
	if err != nil {
		return err
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, models.Label(i))
		for _, m := range g.Members {
			fmt.Fprintf(out, "  %s\n", m.Name)
		}
	}
	return nil
}
