package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tscholl44/movie-api/internal/model"
	"github.com/tscholl44/movie-api/internal/movieapi/biz"
	"github.com/tscholl44/movie-api/internal/pkg/httputils"
	"github.com/tscholl44/movie-api/internal/pkg/validation"
	"github.com/tscholl44/movie-api/pkg/auth"
	"github.com/tscholl44/movie-api/pkg/errors"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	svc *biz.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *biz.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a user and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBadRequest.WithMessage("invalid request body"), nil)
		return
	}
	if verrs := validation.Struct(&req); verrs != nil {
		httputils.WriteValidationError(c, verrs)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &model.LoginRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, resp)
}

// Logout revokes the bearer token the request was authenticated with.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := auth.TokenFromContext(c.Request.Context())
	if token == "" {
		httputils.WriteResponse(c, errors.ErrUnauthorized, nil)
		return
	}

	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteResponse(c, nil, gin.H{"logout": true})
}
