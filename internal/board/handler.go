// BlogHub | 2026
// handler.go

package board

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/middleware"
	"github.com/bloghub-dev/bloghub/internal/user"
)

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
	r.Route("/blog/{subDomain}/board", func(r chi.Router) {
		r.Post("/create", h.Create)
		r.Get("/get-all", h.GetAll)
		r.Get("/get-one/{id}", h.GetOne)
		r.Patch("/update/{id}", h.Update)
		r.Patch("/soft-delete/{id}", h.SoftDelete)
		r.Delete("/hard-delete/{id}", h.HardDelete)
	})
}

// verifiedUser runs the identity steps shared by every mutation:
// claims present, then claims consistent with the stored user. A nil
// return means the response has already been written.
func (h *Handler) verifiedUser(
	w http.ResponseWriter,
	r *http.Request,
) *user.User {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		core.Unauthorized(w, "authentication required")
		return nil
	}

	u, err := h.identity.VerifyIdentity(r.Context(), claims)
	if err != nil {
		core.JSONError(w, err)
		return nil
	}

	return u
}

func boardID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		core.BadRequest(w, "invalid board id")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	u := h.verifiedUser(w, r)
	if u == nil {
		return
	}

	subDomain := chi.URLParam(r, "subDomain")
	if subDomain == "" {
		core.BadRequest(w, "subDomain is required")
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

	id, err := h.service.Create(r.Context(), u.ID, subDomain, req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, "board created", map[string]int64{"id": id})
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	subDomain := chi.URLParam(r, "subDomain")
	if subDomain == "" {
		core.BadRequest(w, "subDomain is required")
		return
	}

	boards, err := h.service.GetAll(r.Context(), subDomain)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "boards", boards)
}

func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	subDomain := chi.URLParam(r, "subDomain")
	if subDomain == "" {
		core.BadRequest(w, "subDomain is required")
		return
	}

	id, ok := boardID(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetOne(r.Context(), subDomain, id)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "board", b)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	u := h.verifiedUser(w, r)
	if u == nil {
		return
	}

	subDomain := chi.URLParam(r, "subDomain")
	if subDomain == "" {
		core.BadRequest(w, "subDomain is required")
		return
	}

	id, ok := boardID(w, r)
	if !ok {
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

	if err := h.service.Update(r.Context(), u.ID, subDomain, id, req); err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "board updated", nil)
}

func (h *Handler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	u := h.verifiedUser(w, r)
	if u == nil {
		return
	}

	subDomain := chi.URLParam(r, "subDomain")
	if subDomain == "" {
		core.BadRequest(w, "subDomain is required")
		return
	}

	id, ok := boardID(w, r)
	if !ok {
		return
	}

	if err := h.service.SoftDelete(r.Context(), u.ID, subDomain, id); err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "board soft-deleted", nil)
}

func (h *Handler) HardDelete(w http.ResponseWriter, r *http.Request) {
	u := h.verifiedUser(w, r)
	if u == nil {
		return
	}

	subDomain := chi.URLParam(r, "subDomain")
	if subDomain == "" {
		core.BadRequest(w, "subDomain is required")
		return
	}

	id, ok := boardID(w, r)
	if !ok {
		return
	}

	if err := h.service.HardDelete(r.Context(), u.ID, subDomain, id); err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "board deleted", nil)
}
