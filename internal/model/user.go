package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user document in the users collection.
// The password holds a bcrypt digest and is never serialized to JSON.
type User struct {
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name"`
	Password       string               `json:"-" bson:"password"`
	Email          string               `json:"email" bson:"email"`
	Birthday       *time.Time           `json:"birthday,omitempty" bson:"birthday,omitempty"`
	FavoriteMovies []primitive.ObjectID `json:"favoriteMovies" bson:"favoriteMovies"`
}

// UserUpdate describes a partial profile update. Nil fields are left
// untouched. Password, when set, must already be hashed by the caller.
type UserUpdate struct {
	Name     *string    `bson:"name,omitempty"`
	Password *string    `bson:"password,omitempty"`
	Email    *string    `bson:"email,omitempty"`
	Birthday *time.Time `bson:"birthday,omitempty"`
}

// CollectionUsers is the MongoDB collection name for users.
const CollectionUsers = "users"
