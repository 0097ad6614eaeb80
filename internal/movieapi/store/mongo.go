package store

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/pkg/component/mongodb"
	"github.com/tscholl44/movie-api/pkg/errors"
)

// datastore is the MongoDB-backed Factory.
type datastore struct {
	client *mongodb.Client
	users  *users
	movies *movies
}

var _ Factory = (*datastore)(nil)

// NewFactory creates a MongoDB-backed store factory.
func NewFactory(client *mongodb.Client) Factory {
	return &datastore{
		client: client,
		users:  newUsers(client.Collection(model.CollectionUsers)),
		movies: newMovies(client.Collection(model.CollectionMovies)),
	}
}

// Users returns the user store.
func (ds *datastore) Users() UserStore {
	return ds.users
}

// Movies returns the movie store.
func (ds *datastore) Movies() MovieStore {
	return ds.movies
}

// Close closes the underlying MongoDB connection.
func (ds *datastore) Close() error {
	return ds.client.Close()
}

// storeError maps a driver error to its sentinel. A call that ran out
// of context budget is a timeout, not a database failure.
func storeError(err error) *errors.Errno {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrTimeout.WithCause(err)
	}
	return errors.ErrDatabase.WithCause(err)
}

// EnsureIndexes creates the unique indexes the data model relies on:
// users.name and movies.title.
func EnsureIndexes(ctx context.Context, client *mongodb.Client) error {
	unique := mongoopts.Index().SetUnique(true)

	_, err := client.Collection(model.CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return storeError(err).WithMessage("failed to create users index")
	}

	_, err = client.Collection(model.CollectionMovies).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return storeError(err).WithMessage("failed to create movies index")
	}

	return nil
}
