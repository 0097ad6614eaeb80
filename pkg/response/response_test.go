package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tscholl44/movie-api/pkg/errors"
)

func TestSuccess(t *testing.T) {
	r := Success(map[string]string{"hello": "world"})
	defer Release(r)

	assert.Equal(t, 0, r.Code)
	assert.Equal(t, "success", r.Message)
	assert.True(t, r.IsSuccess())
	assert.Equal(t, http.StatusOK, r.HTTPStatus())
}

func TestSuccessWithStatus(t *testing.T) {
	r := SuccessWithStatus(http.StatusCreated, nil)
	defer Release(r)

	assert.True(t, r.IsSuccess())
	assert.Equal(t, http.StatusCreated, r.HTTPStatus())
}

func TestErr(t *testing.T) {
	r := Err(errors.ErrUserExists)
	defer Release(r)

	assert.Equal(t, errors.ErrUserExists.Code, r.Code)
	assert.Equal(t, "user already exists", r.Message)
	assert.False(t, r.IsSuccess())
	assert.Equal(t, http.StatusConflict, r.HTTPStatus())
	assert.Nil(t, r.Data)
}

func TestErrNil(t *testing.T) {
	r := Err(nil)
	defer Release(r)

	assert.True(t, r.IsSuccess())
}

func TestErrWithData(t *testing.T) {
	detail := []map[string]string{{"field": "email", "message": "email must be a valid email address"}}
	r := ErrWithData(errors.ErrValidation, detail)
	defer Release(r)

	assert.Equal(t, errors.ErrValidation.Code, r.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, r.HTTPStatus())
	assert.Equal(t, detail, r.Data)
}

func TestWithRequestID(t *testing.T) {
	r := Success(nil).WithRequestID("01HXAMPLE")
	defer Release(r)

	assert.Equal(t, "01HXAMPLE", r.RequestID)
}

func TestHTTPStatusCategoryFallback(t *testing.T) {
	// A code that is not registered falls back to its category mapping.
	r := Acquire()
	defer Release(r)
	r.Code = errors.MakeCode(99, errors.CategoryPermission, 500)

	assert.Equal(t, http.StatusForbidden, r.HTTPStatus())
}

func TestReleaseResets(t *testing.T) {
	r := Success("data").WithRequestID("id")
	Release(r)

	fresh := Acquire()
	defer Release(fresh)
	assert.Equal(t, 0, fresh.Code)
	assert.Empty(t, fresh.Message)
	assert.Nil(t, fresh.Data)
	assert.Empty(t, fresh.RequestID)
}
