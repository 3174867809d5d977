// BlogHub | 2026
// security_test.go

package core

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2hunter2", hash)
	assert.True(t, len(hash) > 50)

	// Salted: same input, different output.
	hash2, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	ok, err := VerifyPassword("correct-password", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRefreshCookieRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetRefreshCookie(rec, "token-value", 14*24*time.Hour, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, RefreshCookieName, c.Name)
	assert.Equal(t, "token-value", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, int((14 * 24 * time.Hour).Seconds()), c.MaxAge)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	req.AddCookie(c)

	got, err := ReadRefreshCookie(req)
	require.NoError(t, err)
	assert.Equal(t, "token-value", got)
}

func TestReadRefreshCookieMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)

	_, err := ReadRefreshCookie(req)
	require.ErrorIs(t, err, ErrUnauthorized)
}
