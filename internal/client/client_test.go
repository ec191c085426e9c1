package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brana/internal/app/book"
	"brana/internal/client/session"
)

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(session.NewFileStorage(t.TempDir()))
	require.NoError(t, err)
	return store
}

func TestLogin_PersistsSessionAndSignsRequests(t *testing.T) {
	t.Parallel()

	var authHeaderSeen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a token")
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-abc", "username": "alice"})
		case "/books":
			authHeaderSeen = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]book.Book{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	sess := newSessionStore(t)
	c := New(Config{BaseURL: server.URL}, sess)
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, "alice", "pw1"))
	assert.Equal(t, session.State{Username: "alice", Token: "tok-abc"}, sess.State())

	_, err := c.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", authHeaderSeen)
}

func TestUnauthorizedResponse_ClearsSessionAndFiresHook(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"code": 3004, "error": "Unauthorized"})
	}))
	defer server.Close()

	sess := newSessionStore(t)
	require.NoError(t, sess.Login("alice", "expired-token"))

	redirected := false
	c := New(Config{BaseURL: server.URL, OnUnauthorized: func() { redirected = true }}, sess)

	_, err := c.ListBooks(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, sess.Authenticated(), "session must be torn down on 401")
	assert.True(t, redirected, "the unauthorized hook must fire")
}

func TestRegister_ConflictSurfacesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"code": 3002, "error": "User already exists"})
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, newSessionStore(t))

	err := c.Register(context.Background(), "bob", "pw1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, 3002, apiErr.Code)
	assert.Equal(t, "User already exists", apiErr.Message)
}

func TestCheckUsername(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/username", r.URL.Path)
		exists := r.URL.Query().Get("username") == "taken"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"exists": exists})
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, newSessionStore(t))
	ctx := context.Background()

	exists, err := c.CheckUsername(ctx, "taken")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = c.CheckUsername(ctx, "free")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBookRoundTrips(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/books":
			var fields book.Fields
			require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(book.Book{
				ID:     "b1",
				Title:  fields.Title,
				Author: fields.Author,
			})
		case r.Method == http.MethodPut && r.URL.Path == "/books/b1":
			json.NewEncoder(w).Encode(book.Book{ID: "b1", Title: "Dune (revised)", Author: "Frank Herbert"})
		case r.Method == http.MethodDelete && r.URL.Path == "/books/b1":
			json.NewEncoder(w).Encode(map[string]string{"message": "Book deleted successfully"})
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	sess := newSessionStore(t)
	require.NoError(t, sess.Login("alice", "tok"))
	c := New(Config{BaseURL: server.URL}, sess)
	ctx := context.Background()

	created, err := c.CreateBook(ctx, book.Fields{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)

	updated, err := c.UpdateBook(ctx, "b1", book.Fields{Title: "Dune (revised)", Author: "Frank Herbert"})
	require.NoError(t, err)
	assert.Equal(t, "Dune (revised)", updated.Title)

	require.NoError(t, c.DeleteBook(ctx, "b1"))
}
