package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/internal/movieapi/store"
	"github.com/tscholl44/movie-api/pkg/errors"
)

func newTestUser(name string) *model.User {
	return &model.User{
		Name:     name,
		Password: "plaintext",
		Email:    name + "@example.com",
	}
}

func TestUserCreateHashesPassword(t *testing.T) {
	factory := store.NewFakeFactory()
	svc := NewUserService(factory)
	ctx := context.Background()

	user := newTestUser("alice1")
	require.NoError(t, svc.Create(ctx, user))

	stored, err := factory.Users().Get(ctx, "alice1")
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext")))
	assert.NotNil(t, stored.FavoriteMovies)
}

func TestUserCreateDuplicate(t *testing.T) {
	svc := NewUserService(store.NewFakeFactory())
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newTestUser("alice1")))

	err := svc.Create(ctx, newTestUser("alice1"))
	assert.ErrorIs(t, err, errors.ErrUserExists)
}

func TestUserGetNotFound(t *testing.T) {
	svc := NewUserService(store.NewFakeFactory())

	_, err := svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestUserUpdateHashesNewPassword(t *testing.T) {
	factory := store.NewFakeFactory()
	svc := NewUserService(factory)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newTestUser("alice1")))

	newPassword := "changed"
	updated, err := svc.Update(ctx, "alice1", &model.UserUpdate{Password: &newPassword})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("changed")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("plaintext")))
}

func TestUserUpdatePartial(t *testing.T) {
	factory := store.NewFakeFactory()
	svc := NewUserService(factory)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newTestUser("alice1")))

	email := "new@example.com"
	updated, err := svc.Update(ctx, "alice1", &model.UserUpdate{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "alice1", updated.Name)

	// Untouched password still verifies.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("plaintext")))
}

func TestUserUpdateRenameConflict(t *testing.T) {
	factory := store.NewFakeFactory()
	svc := NewUserService(factory)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newTestUser("alice1")))
	require.NoError(t, svc.Create(ctx, newTestUser("bobby1")))

	taken := "bobby1"
	_, err := svc.Update(ctx, "alice1", &model.UserUpdate{Name: &taken})
	assert.ErrorIs(t, err, errors.ErrUserExists)
}

func TestUserDelete(t *testing.T) {
	factory := store.NewFakeFactory()
	svc := NewUserService(factory)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newTestUser("alice1")))
	require.NoError(t, svc.Delete(ctx, "alice1"))

	_, err := svc.Get(ctx, "alice1")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "alice1"), errors.ErrUserNotFound)
}

func TestFavoritesRoundTrip(t *testing.T) {
	factory := store.NewFakeFactory()
	svc := NewUserService(factory)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newTestUser("alice1")))
	movieID := primitive.NewObjectID()

	user, err := svc.AddFavorite(ctx, "alice1", movieID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{movieID}, user.FavoriteMovies)

	user, err = svc.RemoveFavorite(ctx, "alice1", movieID)
	require.NoError(t, err)
	assert.Empty(t, user.FavoriteMovies)
}

func TestFavoritesNoDedup(t *testing.T) {
	factory := store.NewFakeFactory()
	svc := NewUserService(factory)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newTestUser("alice1")))
	movieID := primitive.NewObjectID()

	_, err := svc.AddFavorite(ctx, "alice1", movieID)
	require.NoError(t, err)
	user, err := svc.AddFavorite(ctx, "alice1", movieID)
	require.NoError(t, err)
	assert.Len(t, user.FavoriteMovies, 2)

	// Remove pulls every occurrence.
	user, err = svc.RemoveFavorite(ctx, "alice1", movieID)
	require.NoError(t, err)
	assert.Empty(t, user.FavoriteMovies)
}

func TestFavoritesUnknownUser(t *testing.T) {
	svc := NewUserService(store.NewFakeFactory())

	_, err := svc.AddFavorite(context.Background(), "ghost", primitive.NewObjectID())
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}
