// Package server assembles the HTTP surface: the Connect TeamService, the
// browser page, health and metrics endpoints.
package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/teamrandomizer/internal/middleware"
	"github.com/mmynk/teamrandomizer/pkg/api/apiconnect"
)

// Config holds server configuration
type Config struct {
	Addr           string
	Service        apiconnect.TeamServiceHandler
	Static         fs.FS               // page assets; nil disables the page
	Gatherer       prometheus.Gatherer // nil disables /metrics
	AllowedOrigins []string
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	addr   string
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		addr:   cfg.Addr,
	}

	s.setupMiddleware(cfg.AllowedOrigins)
	s.setupRoutes(cfg)

	s.server = &http.Server{
		Addr: cfg.Addr,
		// h2c for HTTP/2 without TLS (required for Connect)
		Handler:      h2c.NewHandler(s.router, &http2.Server{}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler without the h2c wrapper.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.RequestLogger)

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes(cfg Config) {
	s.router.Get("/health", handleHealth)

	if cfg.Gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	if cfg.Service != nil {
		rpcPath, rpcHandler := apiconnect.NewTeamServiceHandler(cfg.Service,
			connect.WithInterceptors(middleware.LoggingInterceptor()),
		)
		s.router.Handle(rpcPath+"*", rpcHandler)
	}

	if cfg.Static != nil {
		s.router.NotFound(staticHandler(cfg.Static))
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	slog.Info("Connect server starting", "address", s.addr, "url", "http://"+s.addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// staticHandler serves files from fsys. Unknown paths get index.html.
func staticHandler(fsys fs.FS) http.HandlerFunc {
	files := http.FileServerFS(fsys)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		// Connect procedures that are not registered
		if strings.HasPrefix(r.URL.Path, "/"+apiconnect.TeamServiceName) {
			http.NotFound(w, r)
			return
		}

		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "index.html"
		}
		if info, err := fs.Stat(fsys, name); err != nil || info.IsDir() {
			http.ServeFileFS(w, r, fsys, "index.html")
			return
		}
		files.ServeHTTP(w, r)
	}
}
