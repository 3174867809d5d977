// BlogHub | 2026
// service_test.go

package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/middleware"
)

type fakeStore struct {
	users         map[int64]*User
	takenNicks    map[string]bool
	updateErr     error
	updateCalled  bool
	updatedUserID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      map[int64]*User{},
		takenNicks: map[string]bool{},
	}
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) ExistsByNickname(
	_ context.Context,
	nickname string,
) (bool, error) {
	return f.takenNicks[nickname], nil
}

func (f *fakeStore) Update(
	_ context.Context,
	id int64,
	_ *core.UpdateBuilder,
) error {
	f.updateCalled = true
	f.updatedUserID = id
	return f.updateErr
}

func seedUser(t *testing.T, store *fakeStore, password string) *User {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	u := &User{
		ID:       1,
		Email:    "a@example.com",
		Password: hash,
		Username: "tester",
		Nickname: "tester",
		Role:     RoleGeneral,
	}
	store.users[u.ID] = u
	return u
}

func claimsFor(u *User) *middleware.Claims {
	return &middleware.Claims{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func TestVerifyIdentityUserNotFound(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.VerifyIdentity(context.Background(), &middleware.Claims{
		UserID: 99,
		Email:  "ghost@example.com",
		Role:   RoleGeneral,
	})
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestVerifyIdentityStaleEmail(t *testing.T) {
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	svc := NewService(store)

	claims := claimsFor(u)
	claims.Email = "old@example.com"

	_, err := svc.VerifyIdentity(context.Background(), claims)
	require.ErrorIs(t, err, core.ErrStaleToken)
}

func TestVerifyIdentityStaleRole(t *testing.T) {
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	svc := NewService(store)

	claims := claimsFor(u)
	claims.Role = RoleAdmin

	_, err := svc.VerifyIdentity(context.Background(), claims)
	require.ErrorIs(t, err, core.ErrStaleToken)
}

func TestVerifyIdentityValid(t *testing.T) {
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	svc := NewService(store)

	got, err := svc.VerifyIdentity(context.Background(), claimsFor(u))
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUpdateProfileNoFields(t *testing.T) {
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	svc := NewService(store)

	err := svc.UpdateProfile(
		context.Background(),
		claimsFor(u),
		UpdateRequest{},
	)
	require.ErrorIs(t, err, core.ErrNoFields)
	assert.False(t, store.updateCalled)
}

func TestUpdateProfileUnchangedNicknameIsNoField(t *testing.T) {
	// Supplying the current nickname changes nothing, so the request
	// carries zero updatable fields.
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	svc := NewService(store)

	same := u.Nickname
	err := svc.UpdateProfile(
		context.Background(),
		claimsFor(u),
		UpdateRequest{Nickname: &same},
	)
	require.ErrorIs(t, err, core.ErrNoFields)
}

func TestUpdateProfileNicknameTaken(t *testing.T) {
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	store.takenNicks["wanted"] = true
	svc := NewService(store)

	nick := "wanted"
	err := svc.UpdateProfile(
		context.Background(),
		claimsFor(u),
		UpdateRequest{Nickname: &nick},
	)
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.False(t, store.updateCalled)
}

func TestUpdateProfileWrongCurrentPassword(t *testing.T) {
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	svc := NewService(store)

	err := svc.UpdateProfile(
		context.Background(),
		claimsFor(u),
		UpdateRequest{
			Password: &PasswordChange{
				Current: "not-the-password",
				Change:  "newpassword1",
			},
		},
	)
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.Status)
	assert.False(t, store.updateCalled)
}

func TestUpdateProfileSuccess(t *testing.T) {
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	svc := NewService(store)

	nick := "fresh"
	img := "https://img.example/me.png"
	err := svc.UpdateProfile(
		context.Background(),
		claimsFor(u),
		UpdateRequest{
			Nickname:     &nick,
			ProfileImage: &img,
			Password: &PasswordChange{
				Current: "password123",
				Change:  "newpassword1",
			},
		},
	)
	require.NoError(t, err)
	assert.True(t, store.updateCalled)
	assert.Equal(t, u.ID, store.updatedUserID)
}

func TestUpdateProfileDuplicateNicknameRace(t *testing.T) {
	store := newFakeStore()
	u := seedUser(t, store, "password123")
	store.updateErr = core.ErrDuplicateKey
	svc := NewService(store)

	nick := "fresh"
	err := svc.UpdateProfile(
		context.Background(),
		claimsFor(u),
		UpdateRequest{Nickname: &nick},
	)
	require.Error(t, err)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}
