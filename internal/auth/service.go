// BlogHub | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/user"
)

type UserStore interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type TokenIssuer interface {
	CreateAccessToken(userID int64, email, role string) (string, error)
	CreateRefreshToken(userID int64) (string, error)
	VerifyRefreshToken(ctx context.Context, raw string) (int64, error)
}

type Service struct {
	users  UserStore
	tokens TokenIssuer
}

func NewService(users UserStore, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Signup registers a new general-role user. The existence pre-check is
// a fast path; the unique constraints on email, nickname and subdomain
// are the source of truth, so a constraint hit maps to the same 400.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (int64, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return 0, fmt.Errorf("signup: %w", err)
	}
	if exists {
		return 0, core.NewAppError(
			http.StatusBadRequest,
			"email already registered",
		)
	}

	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("signup: %w", err)
	}

	id, err := s.users.Create(ctx, &user.User{
		Email:        req.Email,
		Password:     hash,
		Username:     req.Username,
		Nickname:     req.Nickname,
		SubDomain:    req.SubDomain,
		ProfileImage: req.ProfileImage,
		Role:         user.RoleGeneral,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return 0, core.NewAppError(
				http.StatusBadRequest,
				"email already registered",
			)
		}
		return 0, fmt.Errorf("signup: %w", err)
	}

	return id, nil
}

// Login checks credentials and mints both token families. Unknown
// email is 404 and wrong password 401, matching the API's historical
// contract.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (access string, refresh string, err error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return "", "", core.NewAppError(
				http.StatusNotFound,
				"user not found",
			)
		}
		return "", "", fmt.Errorf("login: %w", err)
	}

	ok, err := core.VerifyPassword(req.Password, u.Password)
	if err != nil {
		return "", "", fmt.Errorf("login: %w", err)
	}
	if !ok {
		return "", "", core.NewAppError(
			http.StatusUnauthorized,
			"invalid password",
		)
	}

	access, err = s.tokens.CreateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return "", "", fmt.Errorf("login: %w", err)
	}

	refresh, err = s.tokens.CreateRefreshToken(u.ID)
	if err != nil {
		return "", "", fmt.Errorf("login: %w", err)
	}

	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
// Claims come from the current user row, not the old token, so a role
// or email change takes effect on the next refresh.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.VerifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", core.NewAppError(
			http.StatusForbidden,
			"invalid refresh token",
		)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return "", core.NewAppError(
				http.StatusForbidden,
				"invalid refresh token",
			)
		}
		return "", fmt.Errorf("refresh: %w", err)
	}

	access, err := s.tokens.CreateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}

	return access, nil
}
