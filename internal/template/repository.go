// BlogHub | 2026
// repository.go

package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bloghub-dev/bloghub/internal/core"
)

type Repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, t *Template) (int64, error) {
	query := `
		INSERT INTO templates (name, thumbnail, code, share, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.GetContext(
		ctx, &id, query,
		t.Name, t.Thumbnail, t.Code, t.Share, t.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert template: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Template, error) {
	query := `
		SELECT id, name, thumbnail, code, share, user_id,
		       deleted, deleted_at, created_at
		FROM templates
		WHERE id = $1 AND deleted = FALSE`

	var t Template
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("select template: %w", err)
	}

	return &t, nil
}

// Exists reports whether a live template row backs the given id; blog
// create and update check this before binding to it.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(
		ctx, &exists,
		`SELECT EXISTS (
			SELECT 1 FROM templates WHERE id = $1 AND deleted = FALSE
		)`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("check template exists: %w", err)
	}
	return exists, nil
}

// ListShared returns templates published for reuse.
func (r *Repository) ListShared(ctx context.Context) ([]Template, error) {
	query := `
		SELECT id, name, thumbnail, code, share, user_id,
		       deleted, deleted_at, created_at
		FROM templates
		WHERE share = TRUE AND deleted = FALSE
		ORDER BY created_at DESC`

	var templates []Template
	if err := r.db.SelectContext(ctx, &templates, query); err != nil {
		return nil, fmt.Errorf("select shared templates: %w", err)
	}

	if templates == nil {
		templates = []Template{}
	}

	return templates, nil
}
