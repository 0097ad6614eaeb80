package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tscholl44/movie-api/internal/movieapi/biz"
	"github.com/tscholl44/movie-api/internal/pkg/httputils"
)

// MovieHandler handles read-only movie catalog requests.
type MovieHandler struct {
	svc *biz.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *biz.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// List returns all movies.
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, movies)
}

// GetByTitle returns the movie with the given title.
func (h *MovieHandler) GetByTitle(c *gin.Context) {
	movie, err := h.svc.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, movie)
}

// GetGenre returns the genre object of the first movie whose genre
// name matches.
func (h *MovieHandler) GetGenre(c *gin.Context) {
	genre, err := h.svc.GetGenre(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, genre)
}

// GetDirector returns the director object of the first movie whose
// director name matches.
func (h *MovieHandler) GetDirector(c *gin.Context) {
	director, err := h.svc.GetDirector(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, director)
}
