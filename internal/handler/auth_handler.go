/*
Package handler provides the HTTP handlers and routing setup for the Brana
book catalog server.
*/
package handler

import (
	"net/http"

	"brana/internal/pkg/errs"
	"brana/internal/pkg/req"
	"brana/internal/pkg/resp"
)

// CredentialsInput is the request body for both registration and login.
type CredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister creates a new user account from a username and password.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CredentialsInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if _, customErr := deps.Auth.Register(r.Context(), input.Username, input.Password); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondJSON(w, r, http.StatusCreated, map[string]string{
			"message": "User created successfully",
		})
	}
}

// HandleCheckUsername answers the advisory availability check for a username.
// The response is not a registration guarantee; the insert-time uniqueness
// constraint remains the authority.
func HandleCheckUsername(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		available, customErr := deps.Auth.CheckUsernameAvailable(r.Context(), username)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]bool{
			"exists": !available,
		})
	}
}

// HandleLogin verifies credentials and returns a bearer token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CredentialsInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		token, u, customErr := deps.Auth.Login(r.Context(), input.Username, input.Password)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]string{
			"token":    token,
			"username": u.Username,
		})
	}
}
