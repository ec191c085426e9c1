package errs

import (
	"fmt"
	"net/http"

	"brana/internal/pkg/logx"
)

// CustomError is the error structure used throughout the application.
// It implements the error interface and carries a business code plus the
// HTTP status the API responds with.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Message is the client-facing error description.
	Message string

	// Status is the HTTP status code corresponding to this error.
	Status int
}

// Error implements the standard error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError constructs a *CustomError from a predefined error code.
// An unknown code falls back to ErrUnknown. If an underlying error is
// supplied it is logged server-side but never reaches the client payload.
func NewError(code int, cause ...error) *CustomError {
	templateErr, ok := errorMap[code]
	if !ok {
		logx.Error(
			fmt.Errorf("unknown error code %d requested", code),
			"Unknown error code, falling back to ErrUnknown",
		)
		templateErr = errorMap[ErrUnknown]
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusInternalServerError
	}

	if len(cause) > 0 && cause[0] != nil {
		logx.Error(cause[0], "Handling error", "code", customErr.Code)
	}

	return &customErr
}
