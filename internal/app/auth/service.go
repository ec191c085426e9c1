package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"brana/internal/app/user"
	"brana/internal/pkg/auth/jwt"
	"brana/internal/pkg/errs"
	"brana/internal/pkg/logx"
)

// Service orchestrates registration and login over the credential store,
// the password hasher, and the token issuer. It translates store and hasher
// failures into the errs taxonomy; raw driver errors never cross its boundary.
type Service struct {
	users     user.Store
	hasher    *PasswordHasher
	jwtSecret string
	tokenTTL  time.Duration
}

// NewService constructs the auth service.
func NewService(users user.Store, hasher *PasswordHasher, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		users:     users,
		hasher:    hasher,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new credential record. The Exists pre-check gives fast
// feedback, but the insert-time unique violation is the authority: a
// concurrent duplicate surfaces ErrUsernameTaken from the store either way.
func (s *Service) Register(ctx context.Context, username, password string) (*user.User, *errs.CustomError) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, errs.NewError(errs.ErrMissingFields)
	}

	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		return nil, errs.NewError(errs.ErrUnknown, err)
	}
	if exists {
		return nil, errs.NewError(errs.ErrUsernameTaken)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errs.NewError(errs.ErrUnknown, err)
	}

	u, err := s.users.Create(ctx, username, passwordHash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			logx.Warn("Registration conflict: username already exists", "username", username)
			return nil, errs.NewError(errs.ErrUsernameTaken)
		}
		return nil, errs.NewError(errs.ErrUnknown, err)
	}

	return u, nil
}

// CheckUsernameAvailable reports whether username is free to register.
// Advisory only: registration must still tolerate losing the race.
func (s *Service) CheckUsernameAvailable(ctx context.Context, username string) (bool, *errs.CustomError) {
	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		return false, errs.NewError(errs.ErrUnknown, err)
	}

	return !exists, nil
}

// Login verifies credentials and mints a bearer token carrying the user's
// identity claims. Unknown username and wrong password both return the same
// ErrInvalidCredentials so the response cannot be used for user enumeration.
func (s *Service) Login(ctx context.Context, username, password string) (string, *user.User, *errs.CustomError) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", nil, errs.NewError(errs.ErrMissingFields)
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", nil, errs.NewError(errs.ErrInvalidCredentials)
		}
		return "", nil, errs.NewError(errs.ErrUnknown, err)
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		logx.Warn("Login: password mismatch", "username", username)
		return "", nil, errs.NewError(errs.ErrInvalidCredentials)
	}

	token, err := jwt.Issue(u.ID, u.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, errs.NewError(errs.ErrUnknown, err)
	}

	return token, u, nil
}
