package store

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/pkg/errors"
)

type movies struct {
	coll *mongo.Collection
}

func newMovies(coll *mongo.Collection) *movies {
	return &movies{coll: coll}
}

// List returns all movies in the catalog.
func (m *movies) List(ctx context.Context) ([]*model.Movie, error) {
	cursor, err := m.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeError(err)
	}
	defer cursor.Close(ctx)

	var list []*model.Movie
	if err := cursor.All(ctx, &list); err != nil {
		return nil, storeError(err)
	}
	return list, nil
}

// GetByTitle retrieves a movie by its exact title.
func (m *movies) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	return m.findOne(ctx, bson.M{"title": title})
}

// GetByGenre returns the first movie whose genre name matches exactly,
// in the collection's natural order.
func (m *movies) GetByGenre(ctx context.Context, genreName string) (*model.Movie, error) {
	return m.findOne(ctx, bson.M{"genre.name": genreName})
}

// GetByDirector returns the first movie whose director name matches
// exactly, in the collection's natural order.
func (m *movies) GetByDirector(ctx context.Context, directorName string) (*model.Movie, error) {
	return m.findOne(ctx, bson.M{"director.name": directorName})
}

func (m *movies) findOne(ctx context.Context, filter bson.M) (*model.Movie, error) {
	var movie model.Movie
	err := m.coll.FindOne(ctx, filter).Decode(&movie)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrMovieNotFound
		}
		return nil, storeError(err)
	}
	return &movie, nil
}
