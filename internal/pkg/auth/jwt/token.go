/*
Package jwt issues and verifies the bearer tokens guarding protected routes.

Tokens are stateless HS256 JWTs. There is no server-side session table and no
revocation list: a client-side logout only clears local state, and an issued
token stays valid until its natural expiry.
*/
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenIssuer identifies the issuer of the token.
const TokenIssuer = "brana-server"

var (
	// ErrTokenExpired means the token was well-formed but past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed means the token string is not a parseable JWT.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrSignatureInvalid means the signature does not match the server secret.
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrTokenInvalid covers any other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// Issue creates and signs a token carrying the user's identity claims,
// expiring after ttl.
func Issue(userID, username, secretKey string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    TokenIssuer,
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretKey))
}

// Parse validates tokenString against secretKey and returns its claims.
// Failures map onto the typed errors above so callers can distinguish an
// expired token from a forged or garbled one.
func Parse(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrTokenMalformed
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrTokenExpired
			case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				return nil, ErrSignatureInvalid
			}
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
