package movieapi

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/tscholl44/movie-api/internal/movieapi/biz"
	"github.com/tscholl44/movie-api/internal/movieapi/handler"
	"github.com/tscholl44/movie-api/internal/movieapi/router"
	"github.com/tscholl44/movie-api/pkg/auth"
	"github.com/tscholl44/movie-api/pkg/middleware"
)

// serverHandlers groups the handlers the router needs.
type serverHandlers struct {
	auth   *handler.AuthHandler
	user   *handler.UserHandler
	movie  *handler.MovieHandler
	health *handler.HealthHandler
}

// server wraps the HTTP server and its lifecycle.
type server struct {
	opts *Options
	srv  *http.Server
}

// newServer builds the gin engine, installs the middleware chain and
// routes, and wraps everything in an http.Server.
func newServer(opts *Options, handlers serverHandlers, authn auth.Authenticator, users *biz.UserService) *server {
	gin.SetMode(opts.HTTP.Mode)

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Timeout(opts.HTTP.RequestTimeout),
	)

	// Tokens name a subject; the live record is re-fetched on every
	// request so deleted or renamed accounts stop authenticating
	// immediately.
	resolver := func(c *gin.Context, subject string) (interface{}, error) {
		return users.Get(c.Request.Context(), subject)
	}

	router.Register(engine, router.Config{
		Auth:   handlers.auth,
		User:   handlers.user,
		Movie:  handlers.movie,
		Health: handlers.health,
		AuthMiddleware: middleware.Auth(
			middleware.AuthWithAuthenticator(authn),
			middleware.AuthWithResolver(resolver),
		),
	})

	return &server{
		opts: opts,
		srv: &http.Server{
			Addr:         opts.HTTP.Addr,
			Handler:      engine,
			ReadTimeout:  opts.HTTP.ReadTimeout,
			WriteTimeout: opts.HTTP.WriteTimeout,
			IdleTimeout:  opts.HTTP.IdleTimeout,
		},
	}
}

// Run starts the server and blocks until shutdown completes.
func (s *server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		logger.Infow("HTTP server listening", "addr", s.opts.HTTP.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Infow("Shutting down server...", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.HTTP.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("Server exited")
	return nil
}
