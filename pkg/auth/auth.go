// Package auth defines the authentication abstractions used by movie-api.
// The concrete JWT implementation lives in the jwt subpackage.
package auth

import (
	"context"
	"time"
)

// Authenticator issues and verifies credentials.
type Authenticator interface {
	// Sign creates a new token for the given subject (the user name).
	Sign(ctx context.Context, subject string, opts ...SignOption) (Token, error)

	// Verify validates the token and returns the claims.
	// Returns an error if the token is invalid, expired, or revoked.
	Verify(ctx context.Context, tokenString string) (*Claims, error)

	// Revoke invalidates the given token.
	Revoke(ctx context.Context, tokenString string) error
}

// Token is an issued credential with metadata.
type Token interface {
	// GetAccessToken returns the access token string.
	GetAccessToken() string

	// GetTokenType returns the token type (e.g. "Bearer").
	GetTokenType() string

	// GetExpiresAt returns the token expiration timestamp (Unix seconds).
	GetExpiresAt() int64

	// GetExpiresIn returns the duration until expiration in seconds.
	GetExpiresIn() int64
}

// Claims are the verified contents of a token.
type Claims struct {
	// Subject is the principal the token was issued for (user name).
	Subject string `json:"sub"`

	// Issuer is the token issuer.
	Issuer string `json:"iss,omitempty"`

	// ExpiresAt is the expiration time (Unix seconds).
	ExpiresAt int64 `json:"exp,omitempty"`

	// IssuedAt is the issuance time (Unix seconds).
	IssuedAt int64 `json:"iat,omitempty"`

	// ID is the unique token identifier.
	ID string `json:"jti,omitempty"`

	// Extra contains additional claims.
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// SignOptions hold per-token overrides.
type SignOptions struct {
	// ExpiresAt overrides the default expiration time.
	ExpiresAt *time.Time

	// Extra contains additional claims to embed in the token.
	Extra map[string]interface{}

	// TokenID sets a custom token ID.
	TokenID string
}

// SignOption configures SignOptions.
type SignOption func(*SignOptions)

// WithExpiresAt overrides the expiration time.
func WithExpiresAt(t time.Time) SignOption {
	return func(o *SignOptions) {
		o.ExpiresAt = &t
	}
}

// WithExtra sets additional claims.
func WithExtra(extra map[string]interface{}) SignOption {
	return func(o *SignOptions) {
		o.Extra = extra
	}
}

// WithTokenID sets a custom token ID.
func WithTokenID(id string) SignOption {
	return func(o *SignOptions) {
		o.TokenID = id
	}
}

// BaseToken is the standard Token implementation.
type BaseToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetAccessToken returns the access token.
func (t *BaseToken) GetAccessToken() string {
	return t.AccessToken
}

// GetTokenType returns the token type.
func (t *BaseToken) GetTokenType() string {
	return t.TokenType
}

// GetExpiresAt returns the expiration timestamp.
func (t *BaseToken) GetExpiresAt() int64 {
	return t.ExpiresAt
}

// GetExpiresIn returns the seconds until expiration.
func (t *BaseToken) GetExpiresIn() int64 {
	return t.ExpiresIn
}
