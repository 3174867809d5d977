// BlogHub | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/bloghub-dev/bloghub/internal/config"
	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/middleware"
)

const (
	tokenTypeClaim   = "type"
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// JWTManager signs and verifies both token families with HS256 shared
// secrets. Access tokens carry the full identity; refresh tokens carry
// only the subject, so claims are re-fetched from the user row on
// refresh.
type JWTManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	audience      string
}

func NewJWTManager(cfg config.JWTConfig) *JWTManager {
	return &JWTManager{
		accessSecret:  []byte(cfg.Secret),
		refreshSecret: []byte(cfg.RefreshSigningSecret()),
		accessTTL:     cfg.AccessTokenExpire,
		refreshTTL:    cfg.RefreshTokenExpire,
		issuer:        cfg.Issuer,
		audience:      cfg.Audience,
	}
}

func (m *JWTManager) AccessTTL() time.Duration {
	return m.accessTTL
}

func (m *JWTManager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

func (m *JWTManager) CreateAccessToken(
	userID int64,
	email string,
	role string,
) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Issuer(m.issuer).
		Audience([]string{m.audience}).
		Subject(strconv.FormatInt(userID, 10)).
		IssuedAt(now).
		Expiration(now.Add(m.accessTTL)).
		Claim("email", email).
		Claim("role", role).
		Claim(tokenTypeClaim, tokenTypeAccess).
		Build()
	if err != nil {
		return "", fmt.Errorf("build access token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.accessSecret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return string(signed), nil
}

func (m *JWTManager) CreateRefreshToken(userID int64) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Issuer(m.issuer).
		Audience([]string{m.audience}).
		Subject(strconv.FormatInt(userID, 10)).
		IssuedAt(now).
		Expiration(now.Add(m.refreshTTL)).
		Claim(tokenTypeClaim, tokenTypeRefresh).
		Build()
	if err != nil {
		return "", fmt.Errorf("build refresh token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.refreshSecret))
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}

	return string(signed), nil
}

// VerifyAccessToken decodes an access token into claims. Signature
// failure, expiry and wrong token type all collapse into
// core.ErrTokenInvalid; callers do not distinguish.
func (m *JWTManager) VerifyAccessToken(
	ctx context.Context,
	raw string,
) (*middleware.Claims, error) {
	token, err := m.parse(ctx, raw, m.accessSecret, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := subjectID(token)
	if err != nil {
		return nil, err
	}

	var email, role string
	if err := token.Get("email", &email); err != nil {
		return nil, core.ErrTokenInvalid
	}
	if err := token.Get("role", &role); err != nil {
		return nil, core.ErrTokenInvalid
	}

	return &middleware.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}

// VerifyRefreshToken returns the subject user id of a valid refresh
// token.
func (m *JWTManager) VerifyRefreshToken(
	ctx context.Context,
	raw string,
) (int64, error) {
	token, err := m.parse(ctx, raw, m.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return 0, err
	}

	return subjectID(token)
}

func (m *JWTManager) parse(
	ctx context.Context,
	raw string,
	secret []byte,
	wantType string,
) (jwt.Token, error) {
	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithKey(jwa.HS256(), secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
	)
	if err != nil {
		return nil, core.ErrTokenInvalid
	}

	var tokenType string
	if err := token.Get(tokenTypeClaim, &tokenType); err != nil {
		return nil, core.ErrTokenInvalid
	}
	if tokenType != wantType {
		return nil, core.ErrTokenInvalid
	}

	return token, nil
}

func subjectID(token jwt.Token) (int64, error) {
	subject, ok := token.Subject()
	if !ok {
		return 0, core.ErrTokenInvalid
	}

	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, core.ErrTokenInvalid
	}

	return id, nil
}
