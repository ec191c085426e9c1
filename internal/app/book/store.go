package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"brana/internal/app/db"
)

// ErrNotFound is returned when no book exists with the requested id.
var ErrNotFound = errors.New("book not found")

// Fields are the caller-supplied book attributes.
type Fields struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
}

// Store is the persistence contract for book records.
type Store interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id string) (*Book, error)
	Create(ctx context.Context, fields Fields) (*Book, error)
	Update(ctx context.Context, id string, fields Fields) (*Book, error)
	Delete(ctx context.Context, id string) error
	SetCoverKey(ctx context.Context, id, key string) error
}

// PostgresStore implements Store on top of a pgx pool.
type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{db: q}
}

const bookColumns = `id, title, author, genre, published_year, cover_key, created_at`

func scanBook(row pgx.Row, b *Book) error {
	return row.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.PublishedYear, &b.CoverKey, &b.CreatedAt)
}

// List returns every book, newest first.
func (s *PostgresStore) List(ctx context.Context) ([]Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

// Get returns the book with the given id, or ErrNotFound.
func (s *PostgresStore) Get(ctx context.Context, id string) (*Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b := &Book{}
	if err := scanBook(s.db.QueryRow(ctx, query, id), b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	return b, nil
}

// Create inserts a new book record.
func (s *PostgresStore) Create(ctx context.Context, fields Fields) (*Book, error) {
	query := `INSERT INTO books (id, title, author, genre, published_year)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`

	b := &Book{
		ID:            uuid.NewString(),
		Title:         fields.Title,
		Author:        fields.Author,
		Genre:         fields.Genre,
		PublishedYear: fields.PublishedYear,
	}

	err := s.db.QueryRow(ctx, query, b.ID, b.Title, b.Author, b.Genre, b.PublishedYear).
		Scan(&b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return b, nil
}

// Update overwrites the caller-supplied fields of a book and returns the
// updated record, or ErrNotFound.
func (s *PostgresStore) Update(ctx context.Context, id string, fields Fields) (*Book, error) {
	query := `UPDATE books
	          SET title = $2, author = $3, genre = $4, published_year = $5
	          WHERE id = $1
	          RETURNING ` + bookColumns

	b := &Book{}
	row := s.db.QueryRow(ctx, query, id, fields.Title, fields.Author, fields.Genre, fields.PublishedYear)
	if err := scanBook(row, b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update book: %w", err)
	}

	return b, nil
}

// Delete removes the book with the given id, or returns ErrNotFound.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// SetCoverKey records the storage key of a book's uploaded cover image.
func (s *PostgresStore) SetCoverKey(ctx context.Context, id, key string) error {
	tag, err := s.db.Exec(ctx, `UPDATE books SET cover_key = $2 WHERE id = $1`, id, key)
	if err != nil {
		return fmt.Errorf("set cover key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
