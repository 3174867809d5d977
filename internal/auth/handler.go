// BlogHub | 2026
// handler.go

package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bloghub-dev/bloghub/internal/core"
)

type Handler struct {
	service      *Service
	validate     *validator.Validate
	refreshTTL   time.Duration
	secureCookie bool
}

func NewHandler(
	service *Service,
	refreshTTL time.Duration,
	secureCookie bool,
) *Handler {
	return &Handler{
		service:      service,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		refreshTTL:   refreshTTL,
		secureCookie: secureCookie,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/refresh-token", h.Refresh)
	})
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if _, err := h.service.Signup(r.Context(), req); err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, "signup success", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	access, refresh, err := h.service.Login(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.SetRefreshCookie(w, refresh, h.refreshTTL, h.secureCookie)
	core.OK(w, "login success", TokenResponse{AccessToken: access})
}

// Refresh reads the refresh token from its cookie: absent is 401,
// anything invalid is 403.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := core.ReadRefreshCookie(r)
	if err != nil {
		core.Unauthorized(w, "refresh token required")
		return
	}

	access, err := h.service.Refresh(r.Context(), refreshToken)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "token refreshed", TokenResponse{AccessToken: access})
}
