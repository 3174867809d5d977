// BlogHub | 2026
// repository.go

package blog

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

func (r *Repository) Create(ctx context.Context, b *Blog) (int64, error) {
	query := `
		INSERT INTO blogs (name, subdomain, user_id, template_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.GetContext(
		ctx, &id, query,
		b.Name, b.SubDomain, b.UserID, b.TemplateID,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return 0, core.ErrDuplicateKey
		}
		return 0, fmt.Errorf("insert blog: %w", err)
	}

	return id, nil
}

// GetBySubDomain returns the blog joined with its template. Used both
// for the public lookup and as the ownership source for mutations.
func (r *Repository) GetBySubDomain(
	ctx context.Context,
	subDomain string,
) (*BlogWithTemplate, error) {
	query := `
		SELECT
			b.id, b.name, b.subdomain, b.user_id, b.template_id,
			b.deleted, b.deleted_at, b.created_at,
			t.name AS template_name,
			t.thumbnail AS template_thumbnail,
			t.code AS template_code
		FROM blogs b
		JOIN templates t ON t.id = b.template_id
		WHERE b.subdomain = $1 AND b.deleted = FALSE`

	var b BlogWithTemplate
	if err := r.db.GetContext(ctx, &b, query, subDomain); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("select blog by subdomain: %w", err)
	}

	return &b, nil
}

func (r *Repository) ExistsBySubDomain(
	ctx context.Context,
	subDomain string,
) (bool, error) {
	var exists bool
	err := r.db.GetContext(
		ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM blogs WHERE subdomain = $1)`,
		subDomain,
	)
	if err != nil {
		return false, fmt.Errorf("check subdomain exists: %w", err)
	}
	return exists, nil
}

func (r *Repository) Update(
	ctx context.Context,
	id int64,
	builder *core.UpdateBuilder,
) error {
	where := fmt.Sprintf(
		"id = %s AND deleted = FALSE",
		builder.WherePlaceholder(1),
	)

	query, args, err := builder.Build(where, id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return core.ErrDuplicateKey
		}
		return fmt.Errorf("update blog: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update blog rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}

	return nil
}
