/*
Package user is the credential store: it persists user identity records and
enforces username uniqueness.
*/
package user

import "time"

// User is an identity record. The password hash never leaves the server;
// the original plaintext is discarded immediately after hashing.
type User struct {
	// ID is assigned at creation and immutable.
	ID string `json:"id"`

	// Username is a case-sensitive exact-match unique key.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
