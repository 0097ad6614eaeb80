package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tscholl44/movie-api/pkg/auth"
	"github.com/tscholl44/movie-api/pkg/errors"
)

const (
	testKey     = "test-secret-key-at-least-32-chars!!"
	testSubject = "alice1"
)

func newTestJWT(t *testing.T, opts ...Option) *JWT {
	t.Helper()

	defaultOpts := []Option{
		WithKey(testKey),
		WithSigningMethod("HS256"),
		WithExpired(time.Hour),
		WithIssuer("test-issuer"),
	}

	j, err := New(append(defaultOpts, opts...)...)
	require.NoError(t, err)
	return j
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "valid HS256",
			opts:    []Option{WithKey(testKey), WithSigningMethod("HS256")},
			wantErr: false,
		},
		{
			name:    "valid HS512",
			opts:    []Option{WithKey(testKey), WithSigningMethod("HS512")},
			wantErr: false,
		},
		{
			name:    "key too short",
			opts:    []Option{WithKey("short"), WithSigningMethod("HS256")},
			wantErr: true,
		},
		{
			name:    "asymmetric method rejected",
			opts:    []Option{WithKey(testKey), WithSigningMethod("RS256")},
			wantErr: true,
		},
		{
			name:    "negative lifetime rejected",
			opts:    []Option{WithKey(testKey), WithExpired(-time.Minute)},
			wantErr: true,
		},
		{
			name:    "unset lifetime takes default",
			opts:    []Option{WithOptions(&Options{Key: testKey})},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignAndVerify(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	token, err := j.Sign(ctx, testSubject)
	require.NoError(t, err)
	require.NotEmpty(t, token.GetAccessToken())
	assert.Equal(t, "Bearer", token.GetTokenType())

	claims, err := j.Verify(ctx, token.GetAccessToken())
	require.NoError(t, err)
	assert.Equal(t, testSubject, claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), claims.ExpiresAt, 5)
}

func TestSignUniqueTokenIDs(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	t1, err := j.Sign(ctx, testSubject)
	require.NoError(t, err)
	t2, err := j.Sign(ctx, testSubject)
	require.NoError(t, err)

	c1, err := j.Verify(ctx, t1.GetAccessToken())
	require.NoError(t, err)
	c2, err := j.Verify(ctx, t2.GetAccessToken())
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestVerifyExpired(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Minute)
	token, err := j.Sign(ctx, testSubject, auth.WithExpiresAt(past))
	require.NoError(t, err)

	_, err = j.Verify(ctx, token.GetAccessToken())
	assert.ErrorIs(t, err, errors.ErrTokenExpired)
}

func TestVerifyWrongKey(t *testing.T) {
	ctx := context.Background()
	j := newTestJWT(t)
	other := newTestJWT(t, WithKey("another-secret-key-at-least-32-chars"))

	token, err := j.Sign(ctx, testSubject)
	require.NoError(t, err)

	_, err = other.Verify(ctx, token.GetAccessToken())
	assert.ErrorIs(t, err, errors.ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	j := newTestJWT(t)
	ctx := context.Background()

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := j.Verify(ctx, raw)
		assert.Error(t, err, "token %q", raw)
	}
}

func TestRevoke(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	j := newTestJWT(t, WithStore(store))
	ctx := context.Background()

	token, err := j.Sign(ctx, testSubject)
	require.NoError(t, err)

	// Valid before revocation.
	_, err = j.Verify(ctx, token.GetAccessToken())
	require.NoError(t, err)

	require.NoError(t, j.Revoke(ctx, token.GetAccessToken()))

	_, err = j.Verify(ctx, token.GetAccessToken())
	assert.ErrorIs(t, err, errors.ErrTokenRevoked)
}

func TestRevokeExpiredIsNoop(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	j := newTestJWT(t, WithStore(store))
	ctx := context.Background()

	token, err := j.Sign(ctx, testSubject, auth.WithExpiresAt(time.Now().Add(-time.Minute)))
	require.NoError(t, err)

	assert.NoError(t, j.Revoke(ctx, token.GetAccessToken()))
	assert.Zero(t, store.Size())
}

func TestRevokeWithoutStore(t *testing.T) {
	j := newTestJWT(t)

	err := j.Revoke(context.Background(), "whatever")
	assert.Error(t, err)
}
