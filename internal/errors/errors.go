package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput is returned when a request carries malformed or missing fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTourNotFound is returned when a tour is not found.
	ErrTourNotFound = errors.New("tour not found")
	// ErrCartLineNotFound is returned when a cart line is not found.
	ErrCartLineNotFound = errors.New("cart line not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrRecordNotFound is returned when a reference record (city, hotel, client) is not found.
	ErrRecordNotFound = errors.New("record not found")
	// ErrForbidden is returned on a role or ownership violation.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned when no valid session accompanies a request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrDuplicateUsername is returned when registering a username that is taken.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidCredentials is returned on login failure. Unknown-user and
	// wrong-password deliberately share it so usernames cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrReferenced is returned when deleting a record other rows still point at.
	ErrReferenced = errors.New("record is referenced by other records")
	// ErrStorage is returned on transient storage failure.
	ErrStorage = errors.New("storage error")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrTourNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TOUR_NOT_FOUND")
	case errors.Is(err, ErrCartLineNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_LINE_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECORD_NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrDuplicateUsername):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USERNAME")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrReferenced):
		return NewHTTPError(http.StatusConflict, err.Error(), "RECORD_REFERENCED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
