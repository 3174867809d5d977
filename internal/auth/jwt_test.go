// BlogHub | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghub-dev/bloghub/internal/config"
	"github.com/bloghub-dev/bloghub/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-at-least-32-bytes-long!",
		AccessTokenExpire:  15 * time.Minute,
		RefreshTokenExpire: 14 * 24 * time.Hour,
		Issuer:             "bloghub",
		Audience:           "bloghub-api",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	raw, err := m.CreateAccessToken(42, "a@example.com", "general")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := m.VerifyAccessToken(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "general", claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	raw, err := m.CreateRefreshToken(7)
	require.NoError(t, err)

	id, err := m.VerifyRefreshToken(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestTokenTypeCrossUseRejected(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	refresh, err := m.CreateRefreshToken(7)
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(context.Background(), refresh)
	require.ErrorIs(t, err, core.ErrTokenInvalid)

	access, err := m.CreateAccessToken(7, "a@example.com", "general")
	require.NoError(t, err)

	_, err = m.VerifyRefreshToken(context.Background(), access)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTamperedTokenRejected(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	raw, err := m.CreateAccessToken(1, "a@example.com", "general")
	require.NoError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	_, err = m.VerifyAccessToken(context.Background(), tampered)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	other := testJWTConfig()
	other.Secret = "a-completely-different-signing-key!!"
	m2 := NewJWTManager(other)

	raw, err := m.CreateAccessToken(1, "a@example.com", "general")
	require.NoError(t, err)

	_, err = m2.VerifyAccessToken(context.Background(), raw)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpire = -time.Minute
	m := NewJWTManager(cfg)

	raw, err := m.CreateAccessToken(1, "a@example.com", "general")
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(context.Background(), raw)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestRefreshSecretFallback(t *testing.T) {
	cfg := testJWTConfig()
	assert.Equal(t, cfg.Secret, cfg.RefreshSigningSecret())

	cfg.RefreshSecret = "dedicated-refresh-secret-32-bytes!!"
	assert.Equal(t, cfg.RefreshSecret, cfg.RefreshSigningSecret())
}
