package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"brana/internal/app/db"
)

var (
	// ErrNotFound is returned when no user exists with the given username.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when an insert loses the uniqueness
	// race. The unique index, not the advisory Exists check, decides.
	ErrDuplicateUsername = errors.New("username already exists")
)

// Store is the persistence contract for user records.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// PostgresStore implements Store on top of a pgx pool.
type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{db: q}
}

// FindByUsername returns the user record for username, or ErrNotFound.
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`

	u := &User{}
	err := s.db.QueryRow(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return u, nil
}

// Create inserts a new user record. A unique index violation on username
// maps to ErrDuplicateUsername.
func (s *PostgresStore) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	query := `INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3) RETURNING created_at`

	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := s.db.QueryRow(ctx, query, u.ID, u.Username, u.PasswordHash).Scan(&u.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

// Exists reports whether a user with username is registered. Advisory only.
func (s *PostgresStore) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}

	return exists, nil
}
