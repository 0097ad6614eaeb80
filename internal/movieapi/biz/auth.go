package biz

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/internal/movieapi/store"
	"github.com/tscholl44/movie-api/pkg/auth"
	"github.com/tscholl44/movie-api/pkg/errors"
)

// AuthService handles authentication business logic.
type AuthService struct {
	authn auth.Authenticator
	store store.Factory
}

// NewAuthService creates a new AuthService.
func NewAuthService(authn auth.Authenticator, store store.Factory) *AuthService {
	return &AuthService{
		authn: authn,
		store: store,
	}
}

// Login authenticates a user and returns a signed token. An unknown
// name and a wrong password produce the same error so the caller
// cannot probe for registered names.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.store.Users().Get(ctx, req.Name)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := s.authn.Sign(ctx, user.Name)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		User:      user,
		Token:     token.GetAccessToken(),
		ExpiresAt: token.GetExpiresAt(),
	}, nil
}

// Logout revokes the presented token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.authn.Revoke(ctx, token)
}
