package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/tscholl44/movie-api/pkg/auth"
	"github.com/tscholl44/movie-api/pkg/errors"
	"github.com/tscholl44/movie-api/pkg/response"
)

// SubjectResolver resolves the token subject to a live principal, e.g.
// by loading the user record from the store. Returning an error rejects
// the request with 401.
type SubjectResolver func(c *gin.Context, subject string) (interface{}, error)

// AuthOptions defines authentication middleware options.
type AuthOptions struct {
	// Authenticator verifies bearer tokens.
	Authenticator auth.Authenticator

	// AuthScheme is the authorization scheme.
	// Default: "Bearer"
	AuthScheme string

	// Resolver, when set, re-fetches the principal named by the token
	// subject on every request. A token whose subject no longer exists
	// is rejected.
	Resolver SubjectResolver
}

// AuthOption is a functional option for auth middleware.
type AuthOption func(*AuthOptions)

// NewAuthOptions creates default auth options.
func NewAuthOptions() *AuthOptions {
	return &AuthOptions{
		AuthScheme: "Bearer",
	}
}

// AuthWithAuthenticator sets the authenticator.
func AuthWithAuthenticator(a auth.Authenticator) AuthOption {
	return func(o *AuthOptions) {
		o.Authenticator = a
	}
}

// AuthWithAuthScheme sets the authorization scheme.
func AuthWithAuthScheme(scheme string) AuthOption {
	return func(o *AuthOptions) {
		o.AuthScheme = scheme
	}
}

// AuthWithResolver sets the subject resolver.
func AuthWithResolver(resolver SubjectResolver) AuthOption {
	return func(o *AuthOptions) {
		o.Resolver = resolver
	}
}

// Auth creates an authentication middleware. Every failure mode —
// missing header, malformed scheme, invalid signature, expiry,
// revocation, unknown subject — produces the same 401 response; the
// specific cause is only logged.
func Auth(opts ...AuthOption) gin.HandlerFunc {
	options := NewAuthOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Authenticator == nil {
		panic("middleware: Auth requires an authenticator")
	}

	return func(c *gin.Context) {
		tokenString, err := extractBearerToken(c, options.AuthScheme)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		claims, err := options.Authenticator.Verify(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		ctx := auth.InjectAuth(c.Request.Context(), claims, tokenString)

		if options.Resolver != nil {
			principal, err := options.Resolver(c, claims.Subject)
			if err != nil {
				abortUnauthorized(c, err)
				return
			}
			ctx = auth.ContextWithUser(ctx, principal)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractBearerToken pulls the raw token out of the Authorization header.
func extractBearerToken(c *gin.Context, scheme string) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.ErrUnauthorized
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) || parts[1] == "" {
		return "", errors.ErrInvalidToken
	}
	return parts[1], nil
}

// abortUnauthorized writes a 401 envelope and stops the chain.
func abortUnauthorized(c *gin.Context, err error) {
	logger.Warnw("authentication failed",
		"path", c.Request.URL.Path,
		"client_ip", c.ClientIP(),
		"request_id", GetRequestID(c),
		"error", err,
	)

	errno := errors.FromError(err)
	if errno.HTTPStatus() != 401 {
		errno = errors.ErrInvalidToken
	}

	resp := response.Err(errno).WithRequestID(GetRequestID(c))
	defer response.Release(resp)
	c.AbortWithStatusJSON(resp.HTTPStatus(), resp)
}
