package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tscholl44/movie-api/pkg/auth"
	"github.com/tscholl44/movie-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthenticator verifies a single known token.
type fakeAuthenticator struct {
	validToken string
	subject    string
	verifyErr  error
}

func (f *fakeAuthenticator) Sign(ctx context.Context, subject string, opts ...auth.SignOption) (auth.Token, error) {
	return &auth.BaseToken{AccessToken: f.validToken, TokenType: "Bearer"}, nil
}

func (f *fakeAuthenticator) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	if tokenString != f.validToken {
		return nil, errors.ErrInvalidToken
	}
	return &auth.Claims{Subject: f.subject, ID: "tok-1"}, nil
}

func (f *fakeAuthenticator) Revoke(ctx context.Context, tokenString string) error {
	return nil
}

func TestRequestIDGenerated(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderXRequestID))
	assert.Equal(t, w.Header().Get(HeaderXRequestID), w.Body.String())
}

func TestRequestIDPropagated(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderXRequestID, "caller-supplied-id")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied-id", w.Header().Get(HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery())
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestTimeoutContextDeadline(t *testing.T) {
	engine := gin.New()
	engine.Use(Timeout(50 * time.Millisecond))
	engine.GET("/slow", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 20*time.Millisecond)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func newAuthEngine(authn auth.Authenticator, resolver SubjectResolver) *gin.Engine {
	engine := gin.New()
	opts := []AuthOption{AuthWithAuthenticator(authn)}
	if resolver != nil {
		opts = append(opts, AuthWithResolver(resolver))
	}
	engine.GET("/protected", Auth(opts...), func(c *gin.Context) {
		c.String(http.StatusOK, auth.SubjectFromContext(c.Request.Context()))
	})
	return engine
}

func TestAuthAcceptsValidToken(t *testing.T) {
	engine := newAuthEngine(&fakeAuthenticator{validToken: "good", subject: "alice1"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice1", w.Body.String())
}

func TestAuthRejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good"},
		{"no token", "Bearer "},
		{"unknown token", "Bearer bad"},
		{"bare token", "good"},
	}

	engine := newAuthEngine(&fakeAuthenticator{validToken: "good", subject: "alice1"}, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthResolverFailureIs401(t *testing.T) {
	resolver := func(c *gin.Context, subject string) (interface{}, error) {
		return nil, errors.ErrUserNotFound
	}
	engine := newAuthEngine(&fakeAuthenticator{validToken: "good", subject: "ghost"}, resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	engine.ServeHTTP(w, req)

	// The subject no longer resolves; the response must not leak that.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "user not found")
}

func TestAuthResolverInjectsUser(t *testing.T) {
	type account struct{ Name string }

	resolver := func(c *gin.Context, subject string) (interface{}, error) {
		return &account{Name: subject}, nil
	}

	engine := gin.New()
	engine.GET("/protected",
		Auth(
			AuthWithAuthenticator(&fakeAuthenticator{validToken: "good", subject: "alice1"}),
			AuthWithResolver(resolver),
		),
		func(c *gin.Context) {
			user, ok := auth.UserFromContext(c.Request.Context()).(*account)
			require.True(t, ok)
			c.String(http.StatusOK, user.Name)
		},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice1", w.Body.String())
}
