// Package handler contains the HTTP handlers for the movie API.
package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/internal/movieapi/biz"
	"github.com/tscholl44/movie-api/internal/pkg/httputils"
	"github.com/tscholl44/movie-api/internal/pkg/validation"
	"github.com/tscholl44/movie-api/pkg/auth"
	"github.com/tscholl44/movie-api/pkg/errors"
)

// birthdayLayout is the accepted date format for the birthday field.
const birthdayLayout = "2006-01-02"

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	svc *biz.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *biz.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the request body for registration.
type CreateUserRequest struct {
	// Name must be at least 5 alphanumeric characters
	Name string `json:"name" validate:"required,username"`
	// Password must be non-empty; hashed before storage
	Password string `json:"password" validate:"required"`
	// Email must be valid email format
	Email string `json:"email" validate:"required,email"`
	// Birthday is optional, format 2006-01-02
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateUserRequest is the request body for a profile update.
// Omitted fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,username"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Birthday *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// Create handles user registration. This is the only user route that
// does not require authentication.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBadRequest.WithMessage("invalid request body"), nil)
		return
	}
	if verrs := validation.Struct(&req); verrs != nil {
		httputils.WriteValidationError(c, verrs)
		return
	}

	user := &model.User{
		Name:     req.Name,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Birthday != "" {
		birthday, err := time.Parse(birthdayLayout, req.Birthday)
		if err != nil {
			httputils.WriteResponse(c, errors.ErrBadRequest.WithMessage("invalid birthday"), nil)
			return
		}
		user.Birthday = &birthday
	}

	if err := h.svc.Create(c.Request.Context(), user); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteCreated(c, user)
}

// Get returns a single user. Owner-only.
func (h *UserHandler) Get(c *gin.Context) {
	name := c.Param("name")
	if err := requireOwner(c, name); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	user, err := h.svc.Get(c.Request.Context(), name)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, user)
}

// List returns all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, users)
}

// Update handles profile updates. Only the account owner may update.
func (h *UserHandler) Update(c *gin.Context) {
	name := c.Param("name")
	if err := requireOwner(c, name); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBadRequest.WithMessage("invalid request body"), nil)
		return
	}
	if verrs := validation.Struct(&req); verrs != nil {
		httputils.WriteValidationError(c, verrs)
		return
	}

	update := &model.UserUpdate{
		Name:     req.Name,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Birthday != nil {
		birthday, err := time.Parse(birthdayLayout, *req.Birthday)
		if err != nil {
			httputils.WriteResponse(c, errors.ErrBadRequest.WithMessage("invalid birthday"), nil)
			return
		}
		update.Birthday = &birthday
	}

	user, err := h.svc.Update(c.Request.Context(), name, update)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, user)
}

// Delete removes a user account. Owner-only.
func (h *UserHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := requireOwner(c, name); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), name); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, gin.H{"deleted": name})
}

// AddFavorite appends a movie id to the user's favorites. Owner-only.
// The same id may appear more than once; the list is not deduplicated.
func (h *UserHandler) AddFavorite(c *gin.Context) {
	name := c.Param("name")
	if err := requireOwner(c, name); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	movieID, err := parseMovieID(c.Param("id"))
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	user, err := h.svc.AddFavorite(c.Request.Context(), name, movieID)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, user)
}

// RemoveFavorite removes all occurrences of a movie id from the user's
// favorites. Owner-only.
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	name := c.Param("name")
	if err := requireOwner(c, name); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	movieID, err := parseMovieID(c.Param("id"))
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	user, err := h.svc.RemoveFavorite(c.Request.Context(), name, movieID)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, user)
}

// requireOwner rejects requests whose authenticated subject does not
// match the :name path parameter.
func requireOwner(c *gin.Context, name string) error {
	subject := auth.SubjectFromContext(c.Request.Context())
	if subject == "" || subject != name {
		return errors.ErrForbidden
	}
	return nil
}

// parseMovieID parses the :id path parameter as an ObjectID.
func parseMovieID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errors.ErrBadRequest.WithMessage("invalid movie id")
	}
	return id, nil
}
