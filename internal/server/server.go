// Package server assembles the API from configuration and runs it until
// the context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/kamilpajak/codecompanion/internal/api"
	"github.com/kamilpajak/codecompanion/internal/assistant"
	"github.com/kamilpajak/codecompanion/internal/auth"
	"github.com/kamilpajak/codecompanion/internal/config"
	"github.com/kamilpajak/codecompanion/internal/database"
	"github.com/kamilpajak/codecompanion/internal/logger"
)

const shutdownTimeout = 30 * time.Second

// Server owns the HTTP server and the resources behind it.
type Server struct {
	log    *logger.Logger
	db     *database.DB
	server *http.Server
}

// New connects the optional user store, picks the auth provider and builds
// the API handler. Call Close when done.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}

	provider, mock, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}

	apiCfg := api.Config{
		Assistant:  assistant.New(cfg.Delay, log),
		Auth:       provider,
		MockAuth:   mock,
		Logger:     log,
		RateLimit:  rate.Limit(cfg.RateLimitRPS),
		RateBurst:  cfg.RateLimitBurst,
		CORSOrigin: cfg.CORSOrigin,
	}

	s := &Server{log: log}
	if cfg.DatabaseURL != "" {
		log.Info("running database migrations")
		if err := database.Migrate(cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = db
		apiCfg.Users = db
	} else {
		log.Warn("DATABASE_URL not set, user profiles will not be stored")
	}

	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewServer(apiCfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Info("server configured", "auth_mode", cfg.AuthMode, "store", s.db != nil)
	return s, nil
}

func newProvider(cfg *config.Config) (auth.Provider, *auth.MockProvider, error) {
	switch cfg.AuthMode {
	case config.AuthFirebase:
		v, err := auth.NewFirebaseVerifier(cfg.FirebaseProjectID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create firebase verifier: %w", err)
		}
		return v, nil, nil
	case config.AuthMock:
		m, err := auth.NewMockProvider(cfg.SessionSecret, cfg.SessionTTL())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create mock auth provider: %w", err)
		}
		return m, m, nil
	default:
		return nil, nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}

// Handler returns the API handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln. When ctx is cancelled it shuts down
// gracefully, waiting for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()
	s.log.Info("server started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

// Close releases the database pool, if any.
func (s *Server) Close() {
	if s.db != nil {
		s.db.Close()
	}
}
