package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// Messages never leak internal detail; statuses are the real HTTP statuses
// the API contract promises (400/401/404/409/422/429/500).
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Malformed request body", Status: http.StatusBadRequest},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data", Status: http.StatusBadRequest},
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process uploaded data", Status: http.StatusBadRequest},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later", Status: http.StatusTooManyRequests},

	// 2xxx: Book Catalog Errors
	ErrBookNotFound:      {Code: ErrBookNotFound, Message: "Book not found", Status: http.StatusNotFound},
	ErrBookFieldsMissing: {Code: ErrBookFieldsMissing, Message: "Title and Author are required", Status: http.StatusUnprocessableEntity},
	ErrCoverNotFound:     {Code: ErrCoverNotFound, Message: "Cover not found", Status: http.StatusNotFound},

	// 3xxx: Authentication Errors
	ErrMissingFields:      {Code: ErrMissingFields, Message: "Missing fields", Status: http.StatusBadRequest},
	ErrUsernameTaken:      {Code: ErrUsernameTaken, Message: "User already exists", Status: http.StatusConflict},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Invalid credentials", Status: http.StatusUnauthorized},
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Unauthorized", Status: http.StatusUnauthorized},

	// 5xxx: Internal System Errors
	ErrUnknown:       {Code: ErrUnknown, Message: "Server error", Status: http.StatusInternalServerError},
	ErrStorageFailed: {Code: ErrStorageFailed, Message: "File storage failed", Status: http.StatusInternalServerError},
}
