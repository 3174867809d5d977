// BlogHub | 2026
// handler.go

package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bloghub-dev/bloghub/internal/core"
)

type CreateRequest struct {
	PostID  int64  `json:"post_id" validate:"required,gt=0"`
	Author  string `json:"author" validate:"required,min=1,max=50"`
	Content string `json:"content" validate:"required,min=1"`
}

// Handler is the minimal comment surface: create and list by post.
type Handler struct {
	repo     *Repository
	validate *validator.Validate
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/comments", h.Create)
	r.Get("/comments", h.List)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.repo.Create(r.Context(), &Comment{
		PostID:  req.PostID,
		Author:  req.Author,
		Content: req.Content,
	})
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, "comment created", map[string]int64{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.URL.Query().Get("post_id"), 10, 64)
	if err != nil || postID <= 0 {
		core.BadRequest(w, "post_id is required")
		return
	}

	comments, err := h.repo.ListByPost(r.Context(), postID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, "comments", comments)
}
