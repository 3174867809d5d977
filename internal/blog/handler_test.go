// BlogHub | 2026
// handler_test.go

package blog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghub-dev/bloghub/internal/middleware"
	"github.com/bloghub-dev/bloghub/internal/user"
)

type fakeIdentity struct{}

func (fakeIdentity) VerifyIdentity(
	_ context.Context,
	claims *middleware.Claims,
) (*user.User, error) {
	return &user.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

func newTestRouter() (*chi.Mux, *fakeStore) {
	svc, store, _ := newTestService()
	handler := NewHandler(svc, fakeIdentity{})

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func authed(req *http.Request, userID int64) *http.Request {
	return req.WithContext(middleware.WithClaims(req.Context(), &middleware.Claims{
		UserID: userID,
		Email:  "a@example.com",
		Role:   user.RoleGeneral,
	}))
}

func TestCreateRequiresAuth(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/blog/create",
		strings.NewReader(`{"name":"b","subDomain":"b","templateId":1}`),
	)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAndGet(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(
		http.MethodPost,
		"/blog/create",
		strings.NewReader(
			`{"name":"my blog","subDomain":"myblog","templateId":1}`,
		),
	), 1)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/blog/myblog", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subDomain":"myblog"`)
}

func TestUpdateOtherUsersBlogForbidden(t *testing.T) {
	r, store := newTestRouter()
	seedBlog(store, "theirs", 1)

	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(
		http.MethodPatch,
		"/blog/theirs/update",
		strings.NewReader(`{"name":"hijacked"}`),
	), 2)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, store.updateCalled)
	assert.Equal(t, "seeded", store.blogs["theirs"].Name)
}

func TestUpdateNoFields(t *testing.T) {
	r, store := newTestRouter()
	seedBlog(store, "mine", 1)

	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(
		http.MethodPatch,
		"/blog/mine/update",
		strings.NewReader(`{}`),
	), 1)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownSubdomain(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blog/nowhere", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
