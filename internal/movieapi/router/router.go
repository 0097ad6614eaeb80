// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/tscholl44/movie-api/internal/movieapi/handler"
)

// Config carries everything route registration needs.
type Config struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Movie  *handler.MovieHandler
	Health *handler.HealthHandler

	// AuthMiddleware guards every route below except login,
	// registration and the health probe.
	AuthMiddleware gin.HandlerFunc
}

// Register installs all routes on the engine.
func Register(engine *gin.Engine, cfg Config) {
	engine.GET("/healthz", cfg.Health.Check)

	// Public routes.
	engine.POST("/login", cfg.Auth.Login)
	engine.POST("/users", cfg.User.Create)

	// Everything else requires a valid bearer token.
	authed := engine.Group("/", cfg.AuthMiddleware)
	{
		authed.POST("/logout", cfg.Auth.Logout)

		authed.GET("/movies", cfg.Movie.List)
		authed.GET("/movies/:title", cfg.Movie.GetByTitle)
		authed.GET("/genre/:name", cfg.Movie.GetGenre)
		authed.GET("/director/:name", cfg.Movie.GetDirector)

		authed.GET("/users", cfg.User.List)
		authed.GET("/users/:name", cfg.User.Get)
		authed.PUT("/users/:name", cfg.User.Update)
		authed.DELETE("/users/:name", cfg.User.Delete)
		authed.POST("/users/:name/favoriteMovies/:id", cfg.User.AddFavorite)
		authed.DELETE("/users/:name/favoriteMovies/:id", cfg.User.RemoveFavorite)
	}
}
