// Package server provides a preview HTTP server that binds content into pages
// on every page load.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonathan/content-binder/internal/binding"
	"github.com/jonathan/content-binder/internal/fetch"
	"github.com/jonathan/content-binder/internal/logger"
	"github.com/jonathan/content-binder/internal/server/ratelimit"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Server represents the preview HTTP server
type Server struct {
	httpServer *http.Server
	siteDir    string
	static     http.Handler
	content    string
	fetchOpts  *fetch.Options
	binderOpts []binding.Option
	limiter    *ratelimit.Limiter
	log        *logger.Logger
}

// Config holds server configuration
type Config struct {
	Port     int
	SiteDir  string
	Content  string // content document path or URL; empty means content.json next to each page
	Timeout  time.Duration
	Sanitize bool
	Logger   *logger.Logger

	// RateLimit throttles page renders per client; nil disables it.
	RateLimit *ratelimit.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	info, err := os.Stat(cfg.SiteDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open site directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site directory %s is not a directory", cfg.SiteDir)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.Timeout

	s := &Server{
		siteDir:   cfg.SiteDir,
		static:    http.FileServer(http.Dir(cfg.SiteDir)),
		content:   cfg.Content,
		fetchOpts: opts,
		log:       log,
	}
	if cfg.Sanitize {
		s.binderOpts = append(s.binderOpts, binding.WithSanitizer())
	}
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		s.limiter = ratelimit.NewLimiter(cfg.RateLimit)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID)
	router.Use(s.withLogging)
	router.Use(s.withRateLimit)

	router.Get("/health", s.handleHealth)
	router.Get("/*", s.handlePage)
	router.Head("/*", s.handlePage)

	return router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("addr", ln.Addr().String()).Str("site", s.siteDir).Msg("preview server starting")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if s.limiter != nil {
			s.limiter.Stop()
		}
		return nil
	})

	return g.Wait()
}
