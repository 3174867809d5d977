// BlogHub | 2026
// service.go

package template

import (
	"context"
	"fmt"
)

type Store interface {
	Create(ctx context.Context, t *Template) (int64, error)
	GetByID(ctx context.Context, id int64) (*Template, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListShared(ctx context.Context) ([]Template, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create stores a new template; share defaults to private.
func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreateRequest,
) (int64, error) {
	share := false
	if req.Share != nil {
		share = *req.Share
	}

	id, err := s.store.Create(ctx, &Template{
		Name:      req.Name,
		Thumbnail: req.Thumbnail,
		Code:      req.Code,
		Share:     share,
		UserID:    userID,
	})
	if err != nil {
		return 0, fmt.Errorf("create template: %w", err)
	}

	return id, nil
}

// ListShared returns every template published for reuse.
func (s *Service) ListShared(ctx context.Context) ([]Template, error) {
	templates, err := s.store.ListShared(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shared templates: %w", err)
	}
	return templates, nil
}

// Exists lets other services validate template references.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.store.Exists(ctx, id)
}
