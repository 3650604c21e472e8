// Package app is the composition root shared by the server binaries.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mmynk/teamrandomizer/internal/config"
	"github.com/mmynk/teamrandomizer/internal/ids"
	"github.com/mmynk/teamrandomizer/internal/importer"
	"github.com/mmynk/teamrandomizer/internal/metrics"
	"github.com/mmynk/teamrandomizer/internal/server"
	"github.com/mmynk/teamrandomizer/internal/service"
	"github.com/mmynk/teamrandomizer/internal/session"
	"github.com/mmynk/teamrandomizer/web"
)

const shutdownTimeout = 5 * time.Second

// NewServer wires a fresh session, the TeamService and the HTTP server
// from cfg.
func NewServer(cfg *config.Config) (*server.Server, error) {
	var observer metrics.Observer = metrics.Nop{}
	var gatherer prometheus.Gatherer
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		p, err := metrics.NewPrometheus(reg, "")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
		observer, gatherer = p, reg
	}

	store := session.New(ids.UUID{},
		session.WithDefaults(cfg.DefaultTeamSize, cfg.DefaultTeamCount),
		session.WithObserver(observer),
	)
	slog.Info("Session initialized",
		"team_size", cfg.DefaultTeamSize,
		"team_count", cfg.DefaultTeamCount,
		"metrics", cfg.MetricsEnabled,
	)

	static, err := staticFS(cfg.StaticPath)
	if err != nil {
		return nil, err
	}

	return server.New(server.Config{
		Addr:           cfg.Addr,
		Service:        service.NewTeamService(store, importer.New(cfg.MaxImportBytes)),
		Static:         static,
		Gatherer:       gatherer,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}), nil
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	srv, err := NewServer(cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}

func staticFS(staticPath string) (fs.FS, error) {
	if staticPath == "" {
		slog.Info("Serving embedded page")
		return web.Static(), nil
	}

	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	return os.DirFS(staticDir), nil
}
