/*
Package req provides helpers for HTTP request parsing and data binding.

It covers strict JSON body binding and multipart form setup for the cover
image upload path, mapping parse failures onto the errs taxonomy.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"brana/internal/pkg/errs"
)

const (
	// MaxFormMemory is the memory budget for non-file multipart fields.
	MaxFormMemory int64 = 8 << 20 // 8 MB

	// MaxRequestFileSize caps the whole multipart request body, enforced
	// via http.MaxBytesReader. Cover images are small; 10 MB is generous.
	MaxRequestFileSize int64 = 10 << 20 // 10 MB
)

// BindJSON binds the JSON request body to dst. Unknown fields and trailing
// content are rejected so malformed clients fail loudly.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// SetupMultipart limits and parses a multipart form request body.
func SetupMultipart(w http.ResponseWriter, r *http.Request) *errs.CustomError {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestFileSize)

	if err := r.ParseMultipartForm(MaxFormMemory); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}

		return errs.NewError(errs.ErrFormParseFailed)
	}

	return nil
}
