// BlogHub | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bloghub-dev/bloghub/internal/core"
)

const selectColumns = `id, email, password, username, nickname,
	profile_image, subdomain, role, deleted, deleted_at, created_at`

type Repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns the generated id. A unique
// constraint hit on email, nickname or subdomain surfaces as
// core.ErrDuplicateKey.
func (r *Repository) Create(ctx context.Context, u *User) (int64, error) {
	query := `
		INSERT INTO users (
			email, password, username, nickname,
			profile_image, subdomain, role
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.GetContext(
		ctx, &id, query,
		u.Email, u.Password, u.Username, u.Nickname,
		u.ProfileImage, u.SubDomain, u.Role,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return 0, core.ErrDuplicateKey
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE id = $1 AND deleted = FALSE`,
		selectColumns,
	)

	var u User
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("select user by id: %w", err)
	}

	return &u, nil
}

func (r *Repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE email = $1 AND deleted = FALSE`,
		selectColumns,
	)

	var u User
	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}

	return &u, nil
}

func (r *Repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var exists bool
	err := r.db.GetContext(
		ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

func (r *Repository) ExistsByNickname(
	ctx context.Context,
	nickname string,
) (bool, error) {
	var exists bool
	err := r.db.GetContext(
		ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE nickname = $1)`,
		nickname,
	)
	if err != nil {
		return false, fmt.Errorf("check nickname exists: %w", err)
	}
	return exists, nil
}

// Update applies the accumulated partial update for one user. Returns
// core.ErrNoFields when the builder is empty and core.ErrNotFound when
// the row is gone.
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
		return fmt.Errorf("update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}

	return nil
}
