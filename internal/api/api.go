// Package api serves the study assistants over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/kamilpajak/codecompanion/internal/assistant"
	"github.com/kamilpajak/codecompanion/internal/auth"
	"github.com/kamilpajak/codecompanion/internal/logger"
)

// Server is the API server.
type Server struct {
	assistant  *assistant.Service
	provider   auth.Provider
	mockAuth   *auth.MockProvider
	users      UserStore
	log        *logger.Logger
	limiter    *clientLimiter
	corsOrigin string
	validate   *validator.Validate
	mux        *http.ServeMux
}

// Config holds API server configuration.
type Config struct {
	Assistant *assistant.Service
	Auth      auth.Provider
	// MockAuth enables POST /api/auth/login. Leave nil in production.
	MockAuth *auth.MockProvider
	// Users is optional. Without it profiles are derived from token claims only.
	Users  UserStore
	Logger *logger.Logger

	RateLimit  rate.Limit
	RateBurst  int
	CORSOrigin string
}

// NewServer creates a new API server.
func NewServer(cfg Config) *Server {
	s := &Server{
		assistant:  cfg.Assistant,
		provider:   cfg.Auth,
		mockAuth:   cfg.MockAuth,
		users:      cfg.Users,
		log:        cfg.Logger,
		corsOrigin: cfg.CORSOrigin,
		validate:   validator.New(),
		mux:        http.NewServeMux(),
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.corsOrigin == "" {
		s.corsOrigin = "*"
	}
	if cfg.RateLimit > 0 {
		s.limiter = newClientLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	authMiddleware := auth.Middleware(s.provider)

	// Public endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// Protected endpoints
	s.mux.HandleFunc("POST /api/auth/sync", s.withAuth(authMiddleware, s.handleAuthSync))
	s.mux.HandleFunc("GET /api/me", s.withAuth(authMiddleware, s.handleGetMe))

	s.mux.HandleFunc("POST /api/ai/notes/analyze", s.withAuth(authMiddleware, s.handleAnalyzeNotes))
	s.mux.HandleFunc("POST /api/ai/notes/extract", s.withAuth(authMiddleware, s.handleExtractNotes))
	s.mux.HandleFunc("POST /api/ai/code/analyze", s.withAuth(authMiddleware, s.handleAnalyzeCode))
	s.mux.HandleFunc("POST /api/ai/roadmap/generate", s.withAuth(authMiddleware, s.handleGenerateRoadmap))
	s.mux.HandleFunc("GET /api/ai/roadmap/topics", s.withAuth(authMiddleware, s.handleRoadmapTopics))
}

func (s *Server) withAuth(middleware func(http.Handler) http.Handler, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware(http.HandlerFunc(handler)).ServeHTTP(w, r)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	defer s.logRequest(sw, r)()

	// Add CORS headers
	sw.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
	sw.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	sw.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		sw.WriteHeader(http.StatusOK)
		return
	}

	if s.limiter != nil && r.URL.Path != "/health" && !s.limiter.allow(clientKey(r)) {
		sw.Header().Set("Retry-After", "1")
		writeError(sw, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	s.mux.ServeHTTP(sw, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
