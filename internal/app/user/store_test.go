package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock pool")
	t.Cleanup(mock.Close)
	return mock
}

func TestPostgresStore_FindByUsername(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, username, password_hash, created_at FROM users WHERE username = \$1`).
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
				AddRow("id-1", "alice", "$2a$10$hash", createdAt))

		store := NewPostgresStore(mock)
		u, err := store.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "id-1", u.ID)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "$2a$10$hash", u.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, username, password_hash, created_at FROM users WHERE username = \$1`).
			WithArgs("ghost").
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

		store := NewPostgresStore(mock)
		u, err := store.FindByUsername(context.Background(), "ghost")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT id, username, password_hash, created_at FROM users`).
			WithArgs("alice").
			WillReturnError(errors.New("connection refused"))

		store := NewPostgresStore(mock)
		_, err := store.FindByUsername(context.Background(), "alice")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresStore_Create(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		createdAt := time.Now().UTC()
		mock.ExpectQuery(`INSERT INTO users \(id, username, password_hash\) VALUES \(\$1, \$2, \$3\) RETURNING created_at`).
			WithArgs(pgxmock.AnyArg(), "bob", "hashed-pw").
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

		store := NewPostgresStore(mock)
		u, err := store.Create(context.Background(), "bob", "hashed-pw")
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "bob", u.Username)
		assert.Equal(t, createdAt, u.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), "bob", "hashed-pw").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		store := NewPostgresStore(mock)
		u, err := store.Create(context.Background(), "bob", "hashed-pw")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrDuplicateUsername)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), "bob", "hashed-pw").
			WillReturnError(errors.New("connection lost"))

		store := NewPostgresStore(mock)
		_, err := store.Create(context.Background(), "bob", "hashed-pw")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicateUsername)
	})
}

func TestPostgresStore_Exists(t *testing.T) {
	t.Parallel()

	for _, exists := range []bool{true, false} {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE username = \$1\)`).
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(exists))

		store := NewPostgresStore(mock)
		got, err := store.Exists(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, exists, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}
