package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCode(t *testing.T) {
	tests := []struct {
		name     string
		service  int
		category int
		seq      int
		want     int
	}{
		{"common request", ServiceCommon, CategoryRequest, 1, 1001},
		{"common auth", ServiceCommon, CategoryAuth, 2, 2002},
		{"api resource", ServiceAPI, CategoryResource, 1, 1004001},
		{"api conflict", ServiceAPI, CategoryConflict, 1, 1005001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeCode(tt.service, tt.category, tt.seq))
		})
	}
}

func TestGetCategory(t *testing.T) {
	assert.Equal(t, CategoryResource, GetCategory(ErrUserNotFound.Code))
	assert.Equal(t, CategoryConflict, GetCategory(ErrUserExists.Code))
	assert.Equal(t, CategoryAuth, GetCategory(ErrInvalidCredentials.Code))
	assert.Equal(t, CategoryValidation, GetCategory(ErrValidation.Code))
}

func TestErrnoError(t *testing.T) {
	e := New(9099001, http.StatusTeapot, "teapot")
	assert.Equal(t, "errno 9099001: teapot", e.Error())

	withCause := e.WithCause(fmt.Errorf("boom"))
	assert.Contains(t, withCause.Error(), "boom")
	assert.Equal(t, "boom", withCause.Unwrap().Error())
}

func TestErrnoImmutability(t *testing.T) {
	original := ErrBadRequest
	modified := original.WithMessage("invalid movie id")

	assert.Equal(t, "bad request", original.Msg)
	assert.Equal(t, "invalid movie id", modified.Msg)
	assert.Equal(t, original.Code, modified.Code)
	assert.Equal(t, original.HTTPStatus(), modified.HTTPStatus())

	formatted := original.WithMessagef("field %q is required", "name")
	assert.Equal(t, `field "name" is required`, formatted.Msg)
	assert.Equal(t, "bad request", original.Msg)
}

func TestErrnoIs(t *testing.T) {
	err := ErrUserExists.WithMessage("name taken")
	assert.ErrorIs(t, err, ErrUserExists)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		errno *Errno
		want  int
	}{
		{ErrBadRequest, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrMovieNotFound, http.StatusNotFound},
		{ErrUserExists, http.StatusConflict},
		{ErrValidation, http.StatusUnprocessableEntity},
		{ErrDatabase, http.StatusInternalServerError},
		{ErrTimeout, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.errno.HTTPStatus(), "code %d", tt.errno.Code)
	}
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	// Errno passes through unchanged.
	assert.Same(t, ErrMovieNotFound, FromError(ErrMovieNotFound))

	// Arbitrary errors are wrapped and hidden behind a generic 500.
	raw := fmt.Errorf("connection reset")
	wrapped := FromError(raw)
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrInternal.Code, wrapped.Code)
	assert.Equal(t, "internal server error", wrapped.Msg)
	assert.ErrorIs(t, wrapped, ErrInternal)
	assert.Equal(t, raw, wrapped.Unwrap())

	// A blown context deadline is a gateway timeout, not a 500.
	timedOut := FromError(fmt.Errorf("find users: %w", context.DeadlineExceeded))
	require.NotNil(t, timedOut)
	assert.Equal(t, ErrTimeout.Code, timedOut.Code)
	assert.Equal(t, http.StatusGatewayTimeout, timedOut.HTTP)
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(ErrUserExists.Code)
	require.True(t, ok)
	assert.Same(t, ErrUserExists, e)

	_, ok = Lookup(9999999)
	assert.False(t, ok)
}
