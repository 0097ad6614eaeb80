package store

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/pkg/errors"
)

type users struct {
	coll *mongo.Collection
}

func newUsers(coll *mongo.Collection) *users {
	return &users{coll: coll}
}

// Create inserts a new user. A duplicate name violates the unique
// index and maps to ErrUserExists.
func (u *users) Create(ctx context.Context, user *model.User) error {
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []primitive.ObjectID{}
	}
	res, err := u.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.ErrUserExists
		}
		return storeError(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// Get retrieves a user by name.
func (u *users) Get(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := u.coll.FindOne(ctx, bson.M{"name": name}).Decode(&user)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrUserNotFound
		}
		return nil, storeError(err)
	}
	return &user, nil
}

// List returns all users.
func (u *users) List(ctx context.Context) ([]*model.User, error) {
	cursor, err := u.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeError(err)
	}
	defer cursor.Close(ctx)

	var list []*model.User
	if err := cursor.All(ctx, &list); err != nil {
		return nil, storeError(err)
	}
	return list, nil
}

// Update applies a partial profile update and returns the post-update
// document. The update is a single atomic findOneAndUpdate.
func (u *users) Update(ctx context.Context, name string, update *model.UserUpdate) (*model.User, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Birthday != nil {
		set["birthday"] = *update.Birthday
	}
	if len(set) == 0 {
		return u.Get(ctx, name)
	}

	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)

	var user model.User
	err := u.coll.FindOneAndUpdate(ctx, bson.M{"name": name}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.ErrUserExists
		}
		return nil, storeError(err)
	}
	return &user, nil
}

// Delete removes a user by name.
func (u *users) Delete(ctx context.Context, name string) error {
	err := u.coll.FindOneAndDelete(ctx, bson.M{"name": name}).Err()
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return errors.ErrUserNotFound
		}
		return storeError(err)
	}
	return nil
}

// AddFavorite appends a movie reference to the user's favorites and
// returns the post-update document. Duplicates are not collapsed:
// repeated adds of the same reference produce repeated entries.
func (u *users) AddFavorite(ctx context.Context, name string, movieID primitive.ObjectID) (*model.User, error) {
	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)

	var user model.User
	err := u.coll.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$push": bson.M{"favoriteMovies": movieID}},
		opts,
	).Decode(&user)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrUserNotFound
		}
		return nil, storeError(err)
	}
	return &user, nil
}

// RemoveFavorite deletes every occurrence of the movie reference from
// the user's favorites and returns the post-update document.
func (u *users) RemoveFavorite(ctx context.Context, name string, movieID primitive.ObjectID) (*model.User, error) {
	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)

	var user model.User
	err := u.coll.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$pull": bson.M{"favoriteMovies": movieID}},
		opts,
	).Decode(&user)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrUserNotFound
		}
		return nil, storeError(err)
	}
	return &user, nil
}
