package errors

import "net/http"

// Service codes (AA).
const (
	ServiceCommon = 0  // shared errors
	ServiceAPI    = 10 // movie-api service
)

// Category codes (BB). Each category maps to one HTTP status class.
const (
	CategoryRequest    = 1  // 400
	CategoryAuth       = 2  // 401
	CategoryPermission = 3  // 403
	CategoryResource   = 4  // 404
	CategoryConflict   = 5  // 409
	CategoryValidation = 6  // 422
	CategoryInternal   = 7  // 500
	CategoryDatabase   = 8  // 500
	CategoryTimeout    = 11 // 504
)

// MakeCode builds an error code from service, category and sequence parts.
func MakeCode(service, category, seq int) int {
	return service*100000 + category*1000 + seq
}

// GetCategory extracts the category code from an error code.
func GetCategory(code int) int {
	return (code / 1000) % 100
}

// Predefined common errors.
var (
	ErrBadRequest = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryRequest, 1),
		HTTP: http.StatusBadRequest,
		Msg:  "bad request",
	})

	ErrUnauthorized = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryAuth, 1),
		HTTP: http.StatusUnauthorized,
		Msg:  "unauthorized",
	})

	ErrInvalidToken = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryAuth, 2),
		HTTP: http.StatusUnauthorized,
		Msg:  "invalid token",
	})

	ErrTokenExpired = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryAuth, 3),
		HTTP: http.StatusUnauthorized,
		Msg:  "token expired",
	})

	ErrTokenRevoked = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryAuth, 4),
		HTTP: http.StatusUnauthorized,
		Msg:  "token revoked",
	})

	ErrForbidden = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryPermission, 1),
		HTTP: http.StatusForbidden,
		Msg:  "forbidden",
	})

	ErrNotFound = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryResource, 1),
		HTTP: http.StatusNotFound,
		Msg:  "resource not found",
	})

	ErrConflict = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryConflict, 1),
		HTTP: http.StatusConflict,
		Msg:  "resource conflict",
	})

	ErrValidation = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryValidation, 1),
		HTTP: http.StatusUnprocessableEntity,
		Msg:  "validation failed",
	})

	ErrInternal = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryInternal, 1),
		HTTP: http.StatusInternalServerError,
		Msg:  "internal server error",
	})

	ErrDatabase = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryDatabase, 1),
		HTTP: http.StatusInternalServerError,
		Msg:  "database error",
	})

	ErrTimeout = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryTimeout, 1),
		HTTP: http.StatusGatewayTimeout,
		Msg:  "request timed out",
	})

	ErrNotImplemented = register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryInternal, 2),
		HTTP: http.StatusNotImplemented,
		Msg:  "not implemented",
	})
)

// Predefined movie-api service errors.
var (
	ErrUserNotFound = register(&Errno{
		Code: MakeCode(ServiceAPI, CategoryResource, 1),
		HTTP: http.StatusNotFound,
		Msg:  "user not found",
	})

	ErrMovieNotFound = register(&Errno{
		Code: MakeCode(ServiceAPI, CategoryResource, 2),
		HTTP: http.StatusNotFound,
		Msg:  "movie not found",
	})

	ErrUserExists = register(&Errno{
		Code: MakeCode(ServiceAPI, CategoryConflict, 1),
		HTTP: http.StatusConflict,
		Msg:  "user already exists",
	})

	ErrInvalidCredentials = register(&Errno{
		Code: MakeCode(ServiceAPI, CategoryAuth, 1),
		HTTP: http.StatusUnauthorized,
		Msg:  "invalid name or password",
	})
)
