package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brana/internal/app/book"
	"brana/internal/pkg/errs"
	"brana/internal/pkg/logx"
	"brana/internal/pkg/req"
	"brana/internal/pkg/resp"
)

// coverDownloadExpiry bounds how long a presigned cover URL stays usable.
const coverDownloadExpiry = 15 * time.Minute

// HandleUploadCover stores a cover image for a book. The image travels as a
// multipart form field named "cover"; the stored object key is recorded on
// the book record.
func HandleUploadCover(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Storage == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed))
			return
		}

		id := chi.URLParam(r, "id")
		if _, err := deps.Books.Get(r.Context(), id); err != nil {
			if errors.Is(err, book.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrBookNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		if customErr := req.SetupMultipart(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		file, header, err := r.FormFile("cover")
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrFormParseFailed))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := fmt.Sprintf("covers/%s/%s", id, uuid.NewString())

		if err := deps.Storage.Upload(r.Context(), key, contentType, file); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed, err))
			return
		}

		if err := deps.Books.SetCoverKey(r.Context(), id, key); err != nil {
			logx.Error(err, "Failed to record cover key", "book_id", id, "key", key)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]string{"key": key})
	}
}

// HandleGetCover returns a short-lived presigned URL for a book's cover image.
func HandleGetCover(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Storage == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed))
			return
		}

		b, err := deps.Books.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, book.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrBookNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		if b.CoverKey == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrCoverNotFound))
			return
		}

		url, err := deps.Storage.PresignDownload(r.Context(), b.CoverKey, coverDownloadExpiry)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed, err))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]string{"url": url})
	}
}
