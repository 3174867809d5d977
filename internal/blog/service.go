// BlogHub | 2026
// service.go

package blog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bloghub-dev/bloghub/internal/core"
)

type Store interface {
	Create(ctx context.Context, b *Blog) (int64, error)
	GetBySubDomain(ctx context.Context, subDomain string) (*BlogWithTemplate, error)
	ExistsBySubDomain(ctx context.Context, subDomain string) (bool, error)
	Update(ctx context.Context, id int64, builder *core.UpdateBuilder) error
}

type TemplateStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	store     Store
	templates TemplateStore
}

func NewService(store Store, templates TemplateStore) *Service {
	return &Service{store: store, templates: templates}
}

// Create opens a new blog under a free subdomain. The subdomain
// pre-check and the unique constraint map to the same 400; a missing
// template is 404.
func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreateRequest,
) (int64, error) {
	taken, err := s.store.ExistsBySubDomain(ctx, req.SubDomain)
	if err != nil {
		return 0, fmt.Errorf("create blog: %w", err)
	}
	if taken {
		return 0, core.NewAppError(
			http.StatusBadRequest,
			"subdomain already in use",
		)
	}

	exists, err := s.templates.Exists(ctx, req.TemplateID)
	if err != nil {
		return 0, fmt.Errorf("create blog: %w", err)
	}
	if !exists {
		return 0, core.NewAppError(http.StatusNotFound, "template not found")
	}

	id, err := s.store.Create(ctx, &Blog{
		Name:       req.Name,
		SubDomain:  req.SubDomain,
		UserID:     userID,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return 0, core.NewAppError(
				http.StatusBadRequest,
				"subdomain already in use",
			)
		}
		return 0, fmt.Errorf("create blog: %w", err)
	}

	return id, nil
}

// Get is the public lookup by subdomain, template included.
func (s *Service) Get(
	ctx context.Context,
	subDomain string,
) (*BlogWithTemplate, error) {
	b, err := s.store.GetBySubDomain(ctx, subDomain)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NewAppError(http.StatusNotFound, "blog not found")
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return b, nil
}

// Update changes name and/or template for the owner only.
func (s *Service) Update(
	ctx context.Context,
	userID int64,
	subDomain string,
	req UpdateRequest,
) error {
	b, err := s.store.GetBySubDomain(ctx, subDomain)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NewAppError(http.StatusNotFound, "blog not found")
		}
		return fmt.Errorf("update blog: %w", err)
	}

	if b.UserID != userID {
		return core.NewAppError(
			http.StatusForbidden,
			"not the blog owner",
		)
	}

	builder := core.NewUpdateBuilder("blogs")

	if req.Name != nil {
		builder.Set("name", *req.Name)
	}

	if req.TemplateID != nil {
		exists, err := s.templates.Exists(ctx, *req.TemplateID)
		if err != nil {
			return fmt.Errorf("update blog: %w", err)
		}
		if !exists {
			return core.NewAppError(http.StatusNotFound, "template not found")
		}
		builder.Set("template_id", *req.TemplateID)
	}

	if builder.Empty() {
		return core.ErrNoFields
	}

	if err := s.store.Update(ctx, b.ID, builder); err != nil {
		return fmt.Errorf("update blog: %w", err)
	}

	return nil
}
