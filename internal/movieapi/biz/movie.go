package biz

import (
	"context"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/internal/movieapi/store"
)

// MovieService handles catalog reads.
type MovieService struct {
	store store.Factory
}

// NewMovieService creates a new MovieService.
func NewMovieService(store store.Factory) *MovieService {
	return &MovieService{store: store}
}

// List returns all movies.
func (s *MovieService) List(ctx context.Context) ([]*model.Movie, error) {
	return s.store.Movies().List(ctx)
}

// GetByTitle returns the movie with the given title.
func (s *MovieService) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	return s.store.Movies().GetByTitle(ctx, title)
}

// GetGenre returns the genre of the first movie carrying the given
// genre name. Lookup is case-sensitive and first-match by the
// collection's natural order, not an aggregate.
func (s *MovieService) GetGenre(ctx context.Context, genreName string) (*model.Genre, error) {
	movie, err := s.store.Movies().GetByGenre(ctx, genreName)
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

// GetDirector returns the director of the first movie carrying the
// given director name.
func (s *MovieService) GetDirector(ctx context.Context, directorName string) (*model.Director, error) {
	movie, err := s.store.Movies().GetByDirector(ctx, directorName)
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}
