package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/tscholl44/movie-api/pkg/errors"
	"github.com/tscholl44/movie-api/pkg/response"
)

// Recovery returns a middleware that recovers from panics, logs the
// stack trace, and returns a 500 envelope. The panic value never
// reaches the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("panic recovered",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"panic", r,
					"stack", string(debug.Stack()),
				)

				resp := response.Err(errors.ErrInternal).WithRequestID(GetRequestID(c))
				defer response.Release(resp)
				c.AbortWithStatusJSON(resp.HTTPStatus(), resp)
			}
		}()

		c.Next()
	}
}
