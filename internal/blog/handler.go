// BlogHub | 2026
// handler.go

package blog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/middleware"
	"github.com/bloghub-dev/bloghub/internal/user"
)

// IdentityVerifier checks token claims against the stored user before
// any mutation is allowed.
type IdentityVerifier interface {
	VerifyIdentity(
		ctx context.Context,
		claims *middleware.Claims,
	) (*user.User, error)
}

type Handler struct {
	service  *Service
	identity IdentityVerifier
	validate *validator.Validate
}

func NewHandler(service *Service, identity IdentityVerifier) *Handler {
	return &Handler{
		service:  service,
		identity: identity,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/blog/create", h.Create)
	r.Get("/blog/{subDomain}", h.Get)
	r.Patch("/blog/{subDomain}/update", h.Update)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		core.Unauthorized(w, "authentication required")
		return
	}

	u, err := h.identity.VerifyIdentity(r.Context(), claims)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.service.Create(r.Context(), u.ID, req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, "blog created", map[string]int64{"id": id})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	subDomain := chi.URLParam(r, "subDomain")
	if subDomain == "" {
		core.BadRequest(w, "subDomain is required")
		return
	}

	b, err := h.service.Get(r.Context(), subDomain)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "blog", b)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		core.Unauthorized(w, "authentication required")
		return
	}

	u, err := h.identity.VerifyIdentity(r.Context(), claims)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	subDomain := chi.URLParam(r, "subDomain")
	if subDomain == "" {
		core.BadRequest(w, "subDomain is required")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.Update(r.Context(), u.ID, subDomain, req); err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "blog updated", nil)
}
