package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/httputil"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type TokenResponse struct {
	TokenPair
	User UserProfile `json:"user"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func profileOf(user *entity.User) UserProfile {
	return UserProfile{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RegisterRequest
	if !decodeBody(w, r, logger, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	s.writeTokens(w, logger, http.StatusCreated, user)
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, logger, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	s.writeTokens(w, logger, http.StatusOK, user)
	logger.Info("successful login")
}

func (s *Server) writeTokens(w http.ResponseWriter, logger *slog.Logger, code int, user *entity.User) {
	pair, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.Error("generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, code, TokenResponse{
		TokenPair: *pair,
		User:      profileOf(user),
	})
}

// Refresh accepts the refresh token in the JSON body or as the
// refresh_token query parameter.
func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	token := r.URL.Query().Get("refresh_token")
	if token == "" {
		var req RefreshRequest
		if !decodeBody(w, r, logger, "refresh", &req) {
			return
		}
		token = req.RefreshToken
	}
	access, err := s.jwtService.Refresh(token)
	if err != nil {
		writeServiceError(w, logger, "refresh", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AccessTokenResponse{AccessToken: access, TokenType: "bearer"})
	logger.Info("access token refreshed")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get profile")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profileOf(user))
}

// Logout only acknowledges; tokens are dropped by the client.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if _, ok := authorized(w, r, logger, "logout"); !ok {
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Logged out successfully")
	logger.Info("logged out")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if !decodeBody(w, r, logger, "account deletion", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}
