package service

import (
	"testing"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	userID, err := svc.Register(&model.RegisterRequest{
		Username: "alice",
		Password: "s3cret-pass",
		Name:     "Alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, userID)

	resp, err := svc.Login("alice", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, model.RoleUser, resp.User.Role)

	// Password hash never leaves the store in clear text
	var stored model.User
	require.NoError(t, db.First(&stored, userID).Error)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.True(t, stored.CheckPassword("s3cret-pass"))
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Register(&model.RegisterRequest{
		Username: "bob", Password: "correct", Name: "Bob",
	})
	require.NoError(t, err)

	_, err = svc.Login("bob", "incorrect")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Login("ghost", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Register(&model.RegisterRequest{
		Username: "carol", Password: "pw123456", Name: "Carol",
	})
	require.NoError(t, err)

	_, err = svc.Register(&model.RegisterRequest{
		Username: "carol", Password: "other-pw", Name: "Other Carol",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	tests := []struct {
		name string
		req  model.RegisterRequest
	}{
		{"missing username", model.RegisterRequest{Password: "pw", Name: "X"}},
		{"missing password", model.RegisterRequest{Username: "x", Name: "X"}},
		{"missing name", model.RegisterRequest{Username: "x", Password: "pw"}},
		{"bad role", model.RegisterRequest{Username: "x", Password: "pw", Name: "X", Role: "root"}},
		{"bad email", model.RegisterRequest{Username: "x", Password: "pw", Name: "X", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(&tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	userID, err := svc.Register(&model.RegisterRequest{
		Username: "dave", Password: "pw123456", Name: "Dave", Role: model.RoleAdmin,
	})
	require.NoError(t, err)

	profile, err := svc.Profile(userID)
	require.NoError(t, err)
	assert.Equal(t, "dave", profile.Username)
	assert.Equal(t, model.RoleAdmin, profile.Role)

	_, err = svc.Profile(userID + 1)
	require.ErrorIs(t, err, ErrUserNotFound)
}
