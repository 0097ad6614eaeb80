package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectAuth(t *testing.T) {
	claims := &Claims{Subject: "alice1", Issuer: "movie-api", ID: "tok-1"}
	ctx := InjectAuth(context.Background(), claims, "raw-token")

	assert.Equal(t, claims, ClaimsFromContext(ctx))
	assert.Equal(t, "alice1", SubjectFromContext(ctx))
	assert.Equal(t, "raw-token", TokenFromContext(ctx))
}

func TestInjectAuthNilClaims(t *testing.T) {
	ctx := InjectAuth(context.Background(), nil, "raw-token")

	assert.Nil(t, ClaimsFromContext(ctx))
	assert.Empty(t, SubjectFromContext(ctx))
	assert.Equal(t, "raw-token", TokenFromContext(ctx))
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, ClaimsFromContext(ctx))
	assert.Empty(t, SubjectFromContext(ctx))
	assert.Empty(t, TokenFromContext(ctx))
	assert.Nil(t, UserFromContext(ctx))
}

func TestContextWithUser(t *testing.T) {
	type record struct{ Name string }

	ctx := ContextWithUser(context.Background(), &record{Name: "alice1"})

	got, ok := UserFromContext(ctx).(*record)
	require.True(t, ok)
	assert.Equal(t, "alice1", got.Name)
}
