package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/pkg/errors"
)

// FakeFactory is an in-memory Factory mirroring the MongoDB
// implementation's error semantics. It backs service and handler tests
// that should not need a live database.
type FakeFactory struct {
	users  *fakeUserStore
	movies *fakeMovieStore
}

// NewFakeFactory creates an empty in-memory factory.
func NewFakeFactory() *FakeFactory {
	return &FakeFactory{
		users:  &fakeUserStore{byName: make(map[string]*model.User)},
		movies: &fakeMovieStore{},
	}
}

// SeedMovies replaces the movie catalog. Order is preserved; genre and
// director lookups return the first match.
func (f *FakeFactory) SeedMovies(movies []*model.Movie) {
	f.movies.movies = movies
}

// Users returns the user store.
func (f *FakeFactory) Users() UserStore { return f.users }

// Movies returns the movie store.
func (f *FakeFactory) Movies() MovieStore { return f.movies }

// Close is a no-op.
func (f *FakeFactory) Close() error { return nil }

type fakeUserStore struct {
	mu     sync.Mutex
	byName map[string]*model.User
}

func (s *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[user.Name]; exists {
		return errors.ErrUserExists
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []primitive.ObjectID{}
	}
	clone := *user
	s.byName[user.Name] = &clone
	return nil
}

func (s *fakeUserStore) Get(ctx context.Context, name string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byName[name]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *fakeUserStore) List(ctx context.Context) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]*model.User, 0, len(s.byName))
	for _, u := range s.byName {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

func (s *fakeUserStore) Update(ctx context.Context, name string, update *model.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byName[name]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	if update.Name != nil && *update.Name != name {
		if _, exists := s.byName[*update.Name]; exists {
			return nil, errors.ErrUserExists
		}
		delete(s.byName, name)
		user.Name = *update.Name
		s.byName[user.Name] = user
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Birthday != nil {
		user.Birthday = update.Birthday
	}
	clone := *user
	return &clone, nil
}

func (s *fakeUserStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byName[name]; !ok {
		return errors.ErrUserNotFound
	}
	delete(s.byName, name)
	return nil
}

func (s *fakeUserStore) AddFavorite(ctx context.Context, name string, movieID primitive.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byName[name]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	clone := *user
	return &clone, nil
}

func (s *fakeUserStore) RemoveFavorite(ctx context.Context, name string, movieID primitive.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byName[name]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	kept := user.FavoriteMovies[:0]
	for _, id := range user.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.FavoriteMovies = kept
	clone := *user
	return &clone, nil
}

type fakeMovieStore struct {
	movies []*model.Movie
}

func (s *fakeMovieStore) List(ctx context.Context) ([]*model.Movie, error) {
	return s.movies, nil
}

func (s *fakeMovieStore) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	for _, m := range s.movies {
		if m.Title == title {
			return m, nil
		}
	}
	return nil, errors.ErrMovieNotFound
}

func (s *fakeMovieStore) GetByGenre(ctx context.Context, genreName string) (*model.Movie, error) {
	for _, m := range s.movies {
		if m.Genre.Name == genreName {
			return m, nil
		}
	}
	return nil, errors.ErrMovieNotFound
}

func (s *fakeMovieStore) GetByDirector(ctx context.Context, directorName string) (*model.Movie, error) {
	for _, m := range s.movies {
		if m.Director.Name == directorName {
			return m, nil
		}
	}
	return nil, errors.ErrMovieNotFound
}
