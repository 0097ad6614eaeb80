// Package httputils provides HTTP helper functions shared by handlers.
package httputils

import (
	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/tscholl44/movie-api/pkg/errors"
	"github.com/tscholl44/movie-api/pkg/middleware"
	"github.com/tscholl44/movie-api/pkg/response"
)

// WriteResponse writes a unified response to the client. Any non-Errno
// error is mapped to a generic 500; the underlying detail is logged and
// never leaks into the client body.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		errno := errors.FromError(err)
		if errno.HTTPStatus() >= 500 {
			logger.Errorw("request failed",
				"path", c.Request.URL.Path,
				"request_id", middleware.GetRequestID(c),
				"error", err,
			)
		}
		resp := response.Err(errno).WithRequestID(middleware.GetRequestID(c))
		defer response.Release(resp)
		c.JSON(resp.HTTPStatus(), resp)
		return
	}

	resp := response.Success(data).WithRequestID(middleware.GetRequestID(c))
	defer response.Release(resp)
	c.JSON(resp.HTTPStatus(), resp)
}

// WriteCreated writes a 201 response for successful resource creation.
func WriteCreated(c *gin.Context, data interface{}) {
	resp := response.SuccessWithStatus(201, data).WithRequestID(middleware.GetRequestID(c))
	defer response.Release(resp)
	c.JSON(resp.HTTPStatus(), resp)
}

// WriteValidationError writes a 422 response carrying field-level
// validation detail.
func WriteValidationError(c *gin.Context, fields interface{}) {
	resp := response.ErrWithData(errors.ErrValidation, fields).WithRequestID(middleware.GetRequestID(c))
	defer response.Release(resp)
	c.JSON(resp.HTTPStatus(), resp)
}
