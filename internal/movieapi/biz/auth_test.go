package biz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/internal/movieapi/store"
	"github.com/tscholl44/movie-api/pkg/auth/jwt"
	"github.com/tscholl44/movie-api/pkg/errors"
)

func newTestAuthService(t *testing.T) (*AuthService, *UserService) {
	t.Helper()

	tokenStore := jwt.NewMemoryStore()
	t.Cleanup(func() { _ = tokenStore.Close() })

	authn, err := jwt.New(
		jwt.WithKey("test-secret-key-at-least-32-chars!!"),
		jwt.WithExpired(time.Hour),
		jwt.WithStore(tokenStore),
	)
	require.NoError(t, err)

	factory := store.NewFakeFactory()
	return NewAuthService(authn, factory), NewUserService(factory)
}

func TestLogin(t *testing.T) {
	authSvc, userSvc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, userSvc.Create(ctx, newTestUser("alice1")))

	resp, err := authSvc.Login(ctx, &model.LoginRequest{Name: "alice1", Password: "plaintext"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice1", resp.User.Name)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	authSvc, userSvc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, userSvc.Create(ctx, newTestUser("alice1")))

	_, unknownErr := authSvc.Login(ctx, &model.LoginRequest{Name: "ghost", Password: "plaintext"})
	_, wrongErr := authSvc.Login(ctx, &model.LoginRequest{Name: "alice1", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, errors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, errors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogoutRevokesToken(t *testing.T) {
	authSvc, userSvc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, userSvc.Create(ctx, newTestUser("alice1")))

	resp, err := authSvc.Login(ctx, &model.LoginRequest{Name: "alice1", Password: "plaintext"})
	require.NoError(t, err)

	// Token verifies before logout.
	_, err = authSvc.authn.Verify(ctx, resp.Token)
	require.NoError(t, err)

	require.NoError(t, authSvc.Logout(ctx, resp.Token))

	_, err = authSvc.authn.Verify(ctx, resp.Token)
	assert.ErrorIs(t, err, errors.ErrTokenRevoked)
}
