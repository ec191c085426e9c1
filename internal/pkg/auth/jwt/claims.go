package jwt

import "github.com/golang-jwt/jwt"

// Claims defines the JWT claims minted at login.
// A token's claims always reflect the user authenticated at mint time;
// verification rejects any token whose signature or expiry fails.
type Claims struct {
	// StandardClaims carries exp, iat, and iss, used for validity checks.
	jwt.StandardClaims

	// UserID is the registered user's unique identifier.
	UserID string `json:"userId"`

	// Username is a display label. It is never used for authorization
	// decisions on its own; UserID is the identity.
	Username string `json:"username"`
}
