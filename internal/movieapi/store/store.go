// Package store defines the persistence interfaces for movie-api and
// their MongoDB implementations. Handlers and business services depend
// only on the interfaces, which keeps them testable without a live
// database.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tscholl44/movie-api/internal/model"
)

// Factory defines the factory interface for creating stores.
type Factory interface {
	Users() UserStore
	Movies() MovieStore
	Close() error
}

// UserStore defines the user storage interface.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, name string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, name string, update *model.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, name string) error
	AddFavorite(ctx context.Context, name string, movieID primitive.ObjectID) (*model.User, error)
	RemoveFavorite(ctx context.Context, name string, movieID primitive.ObjectID) (*model.User, error)
}

// MovieStore defines the movie storage interface. The catalog is
// read-only from the API's perspective.
type MovieStore interface {
	List(ctx context.Context) ([]*model.Movie, error)
	GetByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetByGenre(ctx context.Context, genreName string) (*model.Movie, error)
	GetByDirector(ctx context.Context, directorName string) (*model.Movie, error)
}
