package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"brana/internal/app/book"
	"brana/internal/pkg/errs"
	"brana/internal/pkg/req"
	"brana/internal/pkg/resp"
)

// bindBookFields parses and validates the book fields of a create/update body.
func bindBookFields(r *http.Request) (book.Fields, *errs.CustomError) {
	var fields book.Fields
	if customErr := req.BindJSON(r, &fields); customErr != nil {
		return fields, customErr
	}

	if strings.TrimSpace(fields.Title) == "" || strings.TrimSpace(fields.Author) == "" {
		return fields, errs.NewError(errs.ErrBookFieldsMissing)
	}

	return fields, nil
}

// HandleListBooks returns every book in the catalog.
func HandleListBooks(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := deps.Books.List(r.Context())
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, books)
	}
}

// HandleGetBook returns a single book by id.
func HandleGetBook(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := deps.Books.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, book.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrBookNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, b)
	}
}

// HandleCreateBook adds a book to the catalog.
func HandleCreateBook(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, customErr := bindBookFields(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		b, err := deps.Books.Create(r.Context(), fields)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondJSON(w, r, http.StatusCreated, b)
	}
}

// HandleUpdateBook overwrites a book's fields and returns the updated record.
func HandleUpdateBook(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, customErr := bindBookFields(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		b, err := deps.Books.Update(r.Context(), chi.URLParam(r, "id"), fields)
		if err != nil {
			if errors.Is(err, book.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrBookNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, b)
	}
}

// HandleDeleteBook removes a book from the catalog.
func HandleDeleteBook(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Books.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			if errors.Is(err, book.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrBookNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]string{
			"message": "Book deleted successfully",
		})
	}
}
