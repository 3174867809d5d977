// BlogHub | 2026
// security.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// HashPassword produces a salted bcrypt hash at cost 10.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
// A mismatch is not an error; anything else is.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("verify password: %w", err)
}

const RefreshCookieName = "refreshToken"

// SetRefreshCookie attaches the refresh token as an http cookie:
// strict same-site, secure outside development, max-age bound to the
// token lifetime.
func SetRefreshCookie(
	w http.ResponseWriter,
	token string,
	maxAge time.Duration,
	secure bool,
) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func ReadRefreshCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil {
		return "", fmt.Errorf("read refresh cookie: %w", ErrUnauthorized)
	}
	return cookie.Value, nil
}
