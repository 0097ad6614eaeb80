// Package biz contains the business services for movie-api.
package biz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/internal/movieapi/store"
	"github.com/tscholl44/movie-api/pkg/errors"
)

// UserService handles user business logic.
type UserService struct {
	store store.Factory
}

// NewUserService creates a new UserService.
func NewUserService(store store.Factory) *UserService {
	return &UserService{store: store}
}

// Create registers a new user with an encrypted password.
func (s *UserService) Create(ctx context.Context, user *model.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.ErrInternal.WithCause(err)
	}
	user.Password = string(hashedPassword)
	return s.store.Users().Create(ctx, user)
}

// Get retrieves a user by name.
func (s *UserService) Get(ctx context.Context, name string) (*model.User, error) {
	return s.store.Users().Get(ctx, name)
}

// List lists all users.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.store.Users().List(ctx)
}

// Update applies a partial profile update, hashing the password when
// one is supplied, and returns the updated user.
func (s *UserService) Update(ctx context.Context, name string, update *model.UserUpdate) (*model.User, error) {
	if update.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.ErrInternal.WithCause(err)
		}
		hashed := string(hashedPassword)
		update.Password = &hashed
	}
	return s.store.Users().Update(ctx, name, update)
}

// Delete deregisters a user.
func (s *UserService) Delete(ctx context.Context, name string) error {
	return s.store.Users().Delete(ctx, name)
}

// AddFavorite appends a movie reference to the user's favorites.
// Movie existence is intentionally not checked; favorites may carry
// references that no longer resolve.
func (s *UserService) AddFavorite(ctx context.Context, name string, movieID primitive.ObjectID) (*model.User, error) {
	return s.store.Users().AddFavorite(ctx, name, movieID)
}

// RemoveFavorite deletes all occurrences of a movie reference from the
// user's favorites.
func (s *UserService) RemoveFavorite(ctx context.Context, name string, movieID primitive.ObjectID) (*model.User, error) {
	return s.store.Users().RemoveFavorite(ctx, name, movieID)
}
