package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/kamilpajak/codecompanion/internal/auth"
	"github.com/kamilpajak/codecompanion/internal/database"
	"github.com/kamilpajak/codecompanion/pkg/models"
)

// UserStore persists user profiles. *database.DB implements it.
type UserStore interface {
	UpsertUser(ctx context.Context, u models.User) (*database.User, error)
	GetUserByProviderID(ctx context.Context, providerID string) (*database.User, error)
}

type loginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// handleLogin signs a user in with the mock provider.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.mockAuth == nil {
		writeError(w, http.StatusNotFound, "password login is not enabled")
		return
	}

	var req auth.LoginRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := s.mockAuth.Login(req)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	s.log.Info("user logged in", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusOK, loginResponse{User: user, Token: token})
}

// handleAuthSync stores the authenticated user's profile.
// Clients call it right after signing in.
func (s *Server) handleAuthSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if s.users != nil {
		stored, err := s.users.UpsertUser(ctx, user)
		if err != nil {
			s.log.Error("user sync failed", "user_id", user.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to sync user")
			return
		}
		user = stored.Model()
	}

	writeJSON(w, http.StatusOK, user)
}

// handleGetMe returns the current user's profile, preferring the stored copy.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if s.users != nil {
		stored, err := s.users.GetUserByProviderID(ctx, user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		if stored != nil {
			user = stored.Model()
		}
	}

	writeJSON(w, http.StatusOK, user)
}
