/*
Package errs provides custom error types and application-level error code constants.

These codes identify specific business or system errors both internally
and in responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body is not valid JSON.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after the JSON document.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse multipart form data.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge indicates that the request body exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Book Catalog Errors
const (
	// ErrBookNotFound indicates that no book exists with the requested id.
	ErrBookNotFound = 2101

	// ErrBookFieldsMissing indicates that a required book field (title or author) is absent.
	ErrBookFieldsMissing = 2102

	// ErrCoverNotFound indicates that the book has no stored cover image.
	ErrCoverNotFound = 2103
)

// 3xxx: Authentication Errors
const (
	// ErrMissingFields indicates that username or password is absent from the request.
	ErrMissingFields = 3001

	// ErrUsernameTaken indicates that the requested username is already registered.
	ErrUsernameTaken = 3002

	// ErrInvalidCredentials covers both unknown username and wrong password.
	// The two cases are deliberately indistinguishable to prevent user enumeration.
	ErrInvalidCredentials = 3003

	// ErrUnauthorized indicates a missing, expired, or invalid bearer token.
	ErrUnauthorized = 3004
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal server error.
	ErrUnknown = 5000

	// ErrStorageFailed indicates that the object storage backend failed or is not configured.
	ErrStorageFailed = 5001
)
