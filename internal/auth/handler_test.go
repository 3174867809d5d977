// BlogHub | 2026
// handler_test.go

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghub-dev/bloghub/internal/core"
)

func newTestRouter(
	t *testing.T,
	store *fakeUserStore,
) (*chi.Mux, *JWTManager) {
	t.Helper()

	tokens := NewJWTManager(testJWTConfig())
	handler := NewHandler(
		NewService(store, tokens),
		14*24*time.Hour,
		false,
	)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, tokens
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSignupMissingFields(t *testing.T) {
	r, _ := newTestRouter(t, newFakeUserStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/auth/signup",
		strings.NewReader(`{"email":"a@example.com"}`),
	)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Contains(t, body["message"], "missing required fields")
}

func TestSignupCreated(t *testing.T) {
	r, _ := newTestRouter(t, newFakeUserStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/auth/signup",
		strings.NewReader(`{
			"email": "a@example.com",
			"password": "password123",
			"username": "tester",
			"nickname": "tester"
		}`),
	)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLoginSetsRefreshCookie(t *testing.T) {
	store := newFakeUserStore()
	store.seed(t, "a@example.com", "password123")
	r, tokens := newTestRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/auth/login",
		strings.NewReader(
			`{"email":"a@example.com","password":"password123"}`,
		),
	)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)

	access, ok := data["accessToken"].(string)
	require.True(t, ok)

	claims, err := tokens.VerifyAccessToken(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, core.RefreshCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	_, err = tokens.VerifyRefreshToken(
		context.Background(),
		cookies[0].Value,
	)
	require.NoError(t, err)
}

func TestRefreshWithoutCookie(t *testing.T) {
	r, _ := newTestRouter(t, newFakeUserStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshWithTamperedCookie(t *testing.T) {
	store := newFakeUserStore()
	store.seed(t, "a@example.com", "password123")
	r, _ := newTestRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{
		Name:  core.RefreshCookieName,
		Value: "tampered.token.value",
	})
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRefreshWithValidCookie(t *testing.T) {
	store := newFakeUserStore()
	seeded := store.seed(t, "a@example.com", "password123")
	r, tokens := newTestRouter(t, store)

	refresh, err := tokens.CreateRefreshToken(seeded.ID)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", nil)
	req.AddCookie(&http.Cookie{
		Name:  core.RefreshCookieName,
		Value: refresh,
	})
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)

	access, ok := data["accessToken"].(string)
	require.True(t, ok)

	claims, err := tokens.VerifyAccessToken(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)
}
