// Package movieapi assembles and runs the movie API service.
package movieapi

import (
	"context"
	"fmt"
	"time"

	"github.com/kart-io/logger"

	"github.com/tscholl44/movie-api/internal/movieapi/biz"
	"github.com/tscholl44/movie-api/internal/movieapi/handler"
	"github.com/tscholl44/movie-api/internal/movieapi/store"
	"github.com/tscholl44/movie-api/pkg/app"
	"github.com/tscholl44/movie-api/pkg/auth/jwt"
	"github.com/tscholl44/movie-api/pkg/component/mongodb"
	"github.com/tscholl44/movie-api/pkg/component/redis"
)

const (
	appName        = "movie-api"
	appDescription = `Movie API Service

A movie-catalog REST API with user accounts, favorite lists,
JWT authentication, and MongoDB persistence.

This server provides:
  - Movie catalog browsing
  - User registration, login and profile management
  - Favorite movie lists`
)

// NewApp creates a new application instance.
func NewApp() *app.App {
	opts := NewOptions()

	return app.NewApp(
		app.WithName(appName),
		app.WithShortDescription("Movie API Service"),
		app.WithDescription(appDescription),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return Run(opts)
		}),
	)
}

// Run runs the movie API service with the given options.
func Run(opts *Options) error {
	// 1. Initialize logging
	opts.Log.AddInitialField("service.name", appName)
	if err := opts.Log.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Starting movie-api service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 2. Connect to MongoDB and ensure indexes
	mongoClient, err := mongodb.NewWithContext(ctx, opts.Mongo)
	if err != nil {
		return fmt.Errorf("failed to initialize mongodb: %w", err)
	}
	if err := store.EnsureIndexes(ctx, mongoClient); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}
	logger.Infow("MongoDB initialized", "database", opts.Mongo.Database)

	// 3. Token revocation store (Redis when enabled, memory otherwise)
	var tokenStore jwt.Store
	var redisClient *redis.Client
	if opts.Redis.Enabled {
		redisClient, err = redis.NewWithContext(ctx, opts.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		tokenStore = jwt.NewRedisStore(redisClient, "")
		logger.Info("Redis token store initialized")
	} else {
		tokenStore = jwt.NewMemoryStore()
		logger.Info("In-memory token store initialized")
	}

	// 4. JWT authenticator
	jwtAuth, err := jwt.New(jwt.WithOptions(opts.JWT), jwt.WithStore(tokenStore))
	if err != nil {
		return fmt.Errorf("failed to initialize jwt: %w", err)
	}

	// 5. Store, biz and handler layers
	factory := store.NewFactory(mongoClient)

	userService := biz.NewUserService(factory)
	movieService := biz.NewMovieService(factory)
	authService := biz.NewAuthService(jwtAuth, factory)

	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(mongoClient)

	// 6. HTTP server
	srv := newServer(opts, serverHandlers{
		auth:   authHandler,
		user:   userHandler,
		movie:  movieHandler,
		health: healthHandler,
	}, jwtAuth, userService)

	err = srv.Run()

	// 7. Tear down backing components
	if cerr := tokenStore.Close(); cerr != nil {
		logger.Warnw("failed to close token store", "error", cerr)
	}
	if redisClient != nil {
		if cerr := redisClient.Close(); cerr != nil {
			logger.Warnw("failed to close redis client", "error", cerr)
		}
	}
	if cerr := mongoClient.Close(); cerr != nil {
		logger.Warnw("failed to close mongodb client", "error", cerr)
	}

	return err
}
