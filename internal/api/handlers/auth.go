package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopstack/products-api/internal/api/httpx"
	"github.com/shopstack/products-api/internal/api/validate"
	"github.com/shopstack/products-api/internal/apperr"
	"github.com/shopstack/products-api/internal/auth"
	"github.com/shopstack/products-api/internal/metrics"
	"github.com/shopstack/products-api/internal/middleware"
	"github.com/shopstack/products-api/internal/models"
	"github.com/shopstack/products-api/internal/services"
)

type AuthHandler struct {
	users *services.UserService
	tm    *auth.TokenManager
}

func NewAuthHandler(users *services.UserService, tm *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tm: tm}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	u, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var verrs validate.Errs
		switch {
		case errors.Is(err, apperr.ErrDuplicate):
			metrics.AuthAttempts.WithLabelValues("signup", "failure").Inc()
			httpx.WriteMessage(w, http.StatusBadRequest, "Username or email already exists.")
		case errors.As(err, &verrs):
			metrics.AuthAttempts.WithLabelValues("signup", "failure").Inc()
			httpx.WriteMessage(w, http.StatusBadRequest, verrs.Error())
		default:
			slog.Error("signup", "err", err)
			httpx.WriteServerError(w, "Server error during registration.", err)
		}
		return
	}

	metrics.AuthAttempts.WithLabelValues("signup", "success").Inc()
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully.",
		"userId":  u.ID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid username or password.")
			return
		}
		slog.Error("login", "err", err)
		httpx.WriteServerError(w, "Server error during login.", err)
		return
	}

	token, err := h.tm.Issue(u.ID, u.Username)
	if err != nil {
		slog.Error("token issue", "err", err)
		httpx.WriteServerError(w, "Server error during login.", err)
		return
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful!",
		"token":   token,
	})
}

// Protected is the probe endpoint behind the auth middleware.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Authentication token missing.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "This is a protected resource!",
		"user": map[string]string{
			"userId":   claims.UserID,
			"username": claims.Username,
		},
		"accessTime": time.Now().Format(time.RFC3339),
	})
}
