// BlogHub | 2026
// service_test.go

package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/user"
)

type fakeUserStore struct {
	users     map[int64]*user.User
	nextID    int64
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*user.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(
	_ context.Context,
	u *user.User,
) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	stored := *u
	stored.ID = id
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserStore) GetByID(
	_ context.Context,
	id int64,
) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(
	_ context.Context,
	email string,
) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUserStore) ExistsByEmail(
	_ context.Context,
	email string,
) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeUserStore) seed(t *testing.T, email, password string) *user.User {
	t.Helper()
	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	id, err := f.Create(context.Background(), &user.User{
		Email:    email,
		Password: hash,
		Username: "tester",
		Nickname: "tester",
		Role:     user.RoleGeneral,
	})
	require.NoError(t, err)
	return f.users[id]
}

func newTestService(store *fakeUserStore) *Service {
	return NewService(store, NewJWTManager(testJWTConfig()))
}

func TestSignupSuccess(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	id, err := svc.Signup(context.Background(), SignupRequest{
		Email:    "new@example.com",
		Password: "password123",
		Username: "newuser",
		Nickname: "newbie",
	})
	require.NoError(t, err)

	stored := store.users[id]
	require.NotNil(t, stored)
	assert.Equal(t, user.RoleGeneral, stored.Role)
	assert.NotEqual(t, "password123", stored.Password)

	ok, err := core.VerifyPassword("password123", stored.Password)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	store.seed(t, "taken@example.com", "password123")
	svc := newTestService(store)

	before := len(store.users)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:    "taken@example.com",
		Password: "password123",
		Username: "dup",
		Nickname: "dup",
	})
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Len(t, store.users, before)
}

func TestSignupUniqueConstraintRace(t *testing.T) {
	// The pre-check passed but the insert hit the constraint: same 400.
	store := newFakeUserStore()
	store.createErr = core.ErrDuplicateKey
	svc := newTestService(store)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:    "racer@example.com",
		Password: "password123",
		Username: "racer",
		Nickname: "racer",
	})
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserStore())

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	store.seed(t, "a@example.com", "right-password")
	svc := newTestService(store)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "a@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore()
	seeded := store.seed(t, "a@example.com", "right-password")
	tokens := NewJWTManager(testJWTConfig())
	svc := NewService(store, tokens)

	access, refresh, err := svc.Login(context.Background(), LoginRequest{
		Email:    "a@example.com",
		Password: "right-password",
	})
	require.NoError(t, err)

	claims, err := tokens.VerifyAccessToken(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, user.RoleGeneral, claims.Role)

	id, err := tokens.VerifyRefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, id)
}

func TestRefreshInvalidToken(t *testing.T) {
	svc := newTestService(newFakeUserStore())

	_, err := svc.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.Status)
}

func TestRefreshDeletedUser(t *testing.T) {
	store := newFakeUserStore()
	seeded := store.seed(t, "gone@example.com", "password123")
	tokens := NewJWTManager(testJWTConfig())
	svc := NewService(store, tokens)

	refresh, err := tokens.CreateRefreshToken(seeded.ID)
	require.NoError(t, err)

	delete(store.users, seeded.ID)

	_, err = svc.Refresh(context.Background(), refresh)
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.Status)
}

func TestRefreshUsesCurrentUserRow(t *testing.T) {
	store := newFakeUserStore()
	seeded := store.seed(t, "a@example.com", "password123")
	tokens := NewJWTManager(testJWTConfig())
	svc := NewService(store, tokens)

	refresh, err := tokens.CreateRefreshToken(seeded.ID)
	require.NoError(t, err)

	// Role changed after the refresh token was minted.
	seeded.Role = user.RoleAdmin

	access, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := tokens.VerifyAccessToken(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}
