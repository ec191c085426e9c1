package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookCols = []string{"id", "title", "author", "genre", "published_year", "cover_key", "created_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock pool")
	t.Cleanup(mock.Close)
	return mock
}

func TestPostgresStore_List(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("two books", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, title, author, genre, published_year, cover_key, created_at FROM books ORDER BY created_at DESC`).
			WillReturnRows(pgxmock.NewRows(bookCols).
				AddRow("b1", "Dune", "Frank Herbert", "sci-fi", 1965, "", now).
				AddRow("b2", "Beloved", "Toni Morrison", "fiction", 1987, "covers/b2/x", now))

		store := NewPostgresStore(mock)
		books, err := store.List(context.Background())
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "covers/b2/x", books[1].CoverKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty catalog yields empty slice", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, title, author, genre, published_year, cover_key, created_at FROM books`).
			WillReturnRows(pgxmock.NewRows(bookCols))

		store := NewPostgresStore(mock)
		books, err := store.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, books, "clients expect a JSON array, not null")
		assert.Empty(t, books)
	})
}

func TestPostgresStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, title, author, genre, published_year, cover_key, created_at FROM books WHERE id = \$1`).
			WithArgs("b1").
			WillReturnRows(pgxmock.NewRows(bookCols).
				AddRow("b1", "Dune", "Frank Herbert", "sci-fi", 1965, "", time.Now()))

		store := NewPostgresStore(mock)
		b, err := store.Get(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
		assert.Equal(t, 1965, b.PublishedYear)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, title, author, genre, published_year, cover_key, created_at FROM books WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(pgxmock.NewRows(bookCols))

		store := NewPostgresStore(mock)
		b, err := store.Get(context.Background(), "missing")
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresStore_Create(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	createdAt := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs(pgxmock.AnyArg(), "Dune", "Frank Herbert", "sci-fi", 1965).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	store := NewPostgresStore(mock)
	b, err := store.Create(context.Background(), Fields{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "sci-fi",
		PublishedYear: 1965,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, createdAt, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Update(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`UPDATE books`).
			WithArgs("b1", "Dune", "Frank Herbert", "science fiction", 1965).
			WillReturnRows(pgxmock.NewRows(bookCols).
				AddRow("b1", "Dune", "Frank Herbert", "science fiction", 1965, "", time.Now()))

		store := NewPostgresStore(mock)
		b, err := store.Update(context.Background(), "b1", Fields{
			Title:         "Dune",
			Author:        "Frank Herbert",
			Genre:         "science fiction",
			PublishedYear: 1965,
		})
		require.NoError(t, err)
		assert.Equal(t, "science fiction", b.Genre)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`UPDATE books`).
			WithArgs("missing", "T", "A", "", 0).
			WillReturnRows(pgxmock.NewRows(bookCols))

		store := NewPostgresStore(mock)
		_, err := store.Update(context.Background(), "missing", Fields{Title: "T", Author: "A"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresStore_Delete(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
			WithArgs("b1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		store := NewPostgresStore(mock)
		assert.NoError(t, store.Delete(context.Background(), "b1"))
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		store := NewPostgresStore(mock)
		assert.ErrorIs(t, store.Delete(context.Background(), "missing"), ErrNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`DELETE FROM books WHERE id = \$1`).
			WithArgs("b1").
			WillReturnError(errors.New("connection lost"))

		store := NewPostgresStore(mock)
		err := store.Delete(context.Background(), "b1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresStore_SetCoverKey(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectExec(`UPDATE books SET cover_key = \$2 WHERE id = \$1`).
		WithArgs("b1", "covers/b1/abc").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	store := NewPostgresStore(mock)
	assert.NoError(t, store.SetCoverKey(context.Background(), "b1", "covers/b1/abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
