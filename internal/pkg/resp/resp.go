/*
Package resp provides helpers for writing HTTP JSON responses.

Success payloads are written flat (no envelope) because the API contract
predates this server: clients read {token, username}, {exists}, and book
records directly from the body. Errors carry the business code alongside
a client-facing message.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"brana/internal/pkg/errs"
	"brana/internal/pkg/logx"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	// Code is the business error code (see the errs package).
	Code int `json:"code"`

	// Error is the client-facing error message.
	Error string `json:"error"`
}

// RespondJSON sets the response headers and writes payload as JSON with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "Error encoding JSON response", "http_status", httpStatus)
		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondError writes an error response using the status carried by the CustomError.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, ErrorBody{
		Code:  customErr.Code,
		Error: customErr.Message,
	})
}
