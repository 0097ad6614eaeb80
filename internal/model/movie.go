package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genre is the genre subdocument embedded in a movie.
type Genre struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

// Director is the director subdocument embedded in a movie.
type Director struct {
	Name string `json:"name" bson:"name"`
	Bio  string `json:"bio" bson:"bio"`
}

// Movie represents a movie document in the movies collection.
// Movies are read-only through the API; the catalog is maintained
// out of band.
type Movie struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Genre       Genre              `json:"genre" bson:"genre"`
	Director    Director           `json:"director" bson:"director"`
	Actors      []string           `json:"actors" bson:"actors"`
	ImagePath   string             `json:"imagePath,omitempty" bson:"imagePath,omitempty"`
	Featured    bool               `json:"featured" bson:"featured,omitempty"`
}

// CollectionMovies is the MongoDB collection name for movies.
const CollectionMovies = "movies"
