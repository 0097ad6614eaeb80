// Package response provides the unified API response envelope.
// All endpoints return this structure so clients can rely on a single
// format for both success and error cases.
package response

import (
	"net/http"
	"sync"

	"github.com/tscholl44/movie-api/pkg/errors"
)

// Response is the unified API response structure.
type Response struct {
	// Code is the business error code (0 = success).
	Code int `json:"code"`

	// Message is a human-readable message.
	Message string `json:"message"`

	// Data contains the response payload (nil for errors, unless the
	// error carries structured detail such as field validation errors).
	Data interface{} `json:"data,omitempty"`

	// RequestID is the unique request identifier for tracing.
	RequestID string `json:"request_id,omitempty"`

	httpCode int
}

// responsePool reuses Response values across requests.
var responsePool = sync.Pool{
	New: func() interface{} {
		return &Response{}
	},
}

// Acquire retrieves a zeroed Response from the pool.
func Acquire() *Response {
	return responsePool.Get().(*Response)
}

// Release resets the Response and returns it to the pool.
// The Response must not be used after Release.
func Release(r *Response) {
	if r == nil {
		return
	}
	r.Code = 0
	r.Message = ""
	r.Data = nil
	r.RequestID = ""
	r.httpCode = 0
	responsePool.Put(r)
}

// Success creates a successful response with data.
func Success(data interface{}) *Response {
	r := Acquire()
	r.Code = 0
	r.Message = "success"
	r.Data = data
	r.httpCode = http.StatusOK
	return r
}

// SuccessWithStatus creates a successful response with a specific HTTP
// status, e.g. 201 for resource creation.
func SuccessWithStatus(status int, data interface{}) *Response {
	r := Success(data)
	r.httpCode = status
	return r
}

// Err creates an error response from an Errno.
func Err(e *errors.Errno) *Response {
	if e == nil {
		return Success(nil)
	}
	r := Acquire()
	r.Code = e.Code
	r.Message = e.Msg
	r.httpCode = e.HTTPStatus()
	return r
}

// ErrWithData creates an error response carrying structured detail,
// such as per-field validation errors.
func ErrWithData(e *errors.Errno, data interface{}) *Response {
	r := Err(e)
	r.Data = data
	return r
}

// WithRequestID adds the request ID to the response.
func (r *Response) WithRequestID(requestID string) *Response {
	r.RequestID = requestID
	return r
}

// IsSuccess returns true if the response indicates success.
func (r *Response) IsSuccess() bool {
	return r.Code == 0
}

// HTTPStatus returns the HTTP status code for this response.
func (r *Response) HTTPStatus() int {
	if r.httpCode != 0 {
		return r.httpCode
	}
	if r.Code == 0 {
		return http.StatusOK
	}
	if e, ok := errors.Lookup(r.Code); ok {
		return e.HTTPStatus()
	}
	switch errors.GetCategory(r.Code) {
	case errors.CategoryRequest:
		return http.StatusBadRequest
	case errors.CategoryAuth:
		return http.StatusUnauthorized
	case errors.CategoryPermission:
		return http.StatusForbidden
	case errors.CategoryResource:
		return http.StatusNotFound
	case errors.CategoryConflict:
		return http.StatusConflict
	case errors.CategoryValidation:
		return http.StatusUnprocessableEntity
	case errors.CategoryTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
