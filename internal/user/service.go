// BlogHub | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/middleware"
)

type Store interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	ExistsByNickname(ctx context.Context, nickname string) (bool, error)
	Update(ctx context.Context, id int64, builder *core.UpdateBuilder) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// VerifyIdentity re-fetches the user behind a set of token claims and
// checks the token against the stored row. The id is the identity: a
// missing row is 404, and a row whose email or role has moved on since
// the token was minted means the token is stale and the caller must
// re-authenticate.
func (s *Service) VerifyIdentity(
	ctx context.Context,
	claims *middleware.Claims,
) (*User, error) {
	u, err := s.store.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NewAppError(http.StatusNotFound, "user not found")
		}
		return nil, fmt.Errorf("verify identity: %w", err)
	}

	if u.Email != claims.Email || u.Role != claims.Role {
		return nil, fmt.Errorf("verify identity: %w", core.ErrStaleToken)
	}

	return u, nil
}

// Profile returns the acting user's own row.
func (s *Service) Profile(
	ctx context.Context,
	claims *middleware.Claims,
) (*User, error) {
	return s.VerifyIdentity(ctx, claims)
}

// UpdateProfile applies a partial profile update. Password rotation
// requires the current password; a wrong one is 403, not 401, because
// the identity itself already checked out.
func (s *Service) UpdateProfile(
	ctx context.Context,
	claims *middleware.Claims,
	req UpdateRequest,
) error {
	u, err := s.VerifyIdentity(ctx, claims)
	if err != nil {
		return err
	}

	builder := core.NewUpdateBuilder("users")

	if req.Nickname != nil && *req.Nickname != u.Nickname {
		taken, err := s.store.ExistsByNickname(ctx, *req.Nickname)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if taken {
			return core.NewAppError(
				http.StatusBadRequest,
				"nickname already in use",
			)
		}
		builder.Set("nickname", *req.Nickname)
	}

	if req.ProfileImage != nil {
		builder.Set("profile_image", *req.ProfileImage)
	}

	if req.Password != nil {
		ok, err := core.VerifyPassword(req.Password.Current, u.Password)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if !ok {
			return core.NewAppError(
				http.StatusForbidden,
				"current password does not match",
			)
		}

		hash, err := core.HashPassword(req.Password.Change)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		builder.Set("password", hash)
	}

	if builder.Empty() {
		return core.ErrNoFields
	}

	if err := s.store.Update(ctx, u.ID, builder); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return core.NewAppError(
				http.StatusBadRequest,
				"nickname already in use",
			)
		}
		return fmt.Errorf("update profile: %w", err)
	}

	return nil
}
