package errors

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"

	"github.com/go-sql-driver/mysql"

	"investpro/internal/validation"
)

var (
	// ErrUserNotFound is returned when no user exists for the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when a unique field (email, phone or
	// CPF) is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on login failures. Missing user and
	// wrong password map to the same error on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNothingToUpdate is returned when an update payload carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")
	// ErrLanguageNotFound is returned for an unknown translation language.
	ErrLanguageNotFound = errors.New("language not found")
	// ErrStoreUnavailable is returned when a backing store is unreachable.
	ErrStoreUnavailable = errors.New("service temporarily unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ValidationErrorResponse carries per-field details alongside the generic
// error envelope.
type ValidationErrorResponse struct {
	Error   string                  `json:"error"`
	Code    string                  `json:"code"`
	Details []validation.FieldError `json:"details"`
}

// NewValidationErrorResponse builds the 400 payload for a failed validation
// pass.
func NewValidationErrorResponse(details validation.FieldErrors) ValidationErrorResponse {
	return ValidationErrorResponse{
		Error:   "validation error",
		Code:    "VALIDATION_ERROR",
		Details: details,
	}
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

// MapErrorToHTTP maps domain errors to HTTP errors. Unclassified errors are
// reported generically without leaking internals.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrUserAlreadyExists.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNothingToUpdate):
		return NewHTTPError(http.StatusBadRequest, ErrNothingToUpdate.Error(), "NOTHING_TO_UPDATE")
	case errors.Is(err, ErrLanguageNotFound):
		return NewHTTPError(http.StatusNotFound, ErrLanguageNotFound.Error(), "LANGUAGE_NOT_FOUND")
	case errors.Is(err, ErrStoreUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrStoreUnavailable.Error(), "SERVICE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// IsDuplicateEntry reports whether err is a MySQL unique constraint
// violation (error 1062).
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// IsUnavailable reports whether err indicates the storage layer could not be
// reached at all, as opposed to rejecting the statement.
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
