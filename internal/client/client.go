/*
Package client is the Go API client for the Brana server.

It signs every outgoing request with the session store's bearer token and
reacts to an authentication rejection (HTTP 401) by clearing the session and
firing the configured OnUnauthorized hook, so stale tokens self-heal instead
of leaving the caller in a stuck authenticated state. Failed calls surface
their error once; retry decisions stay with the caller.
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"brana/internal/app/book"
	"brana/internal/client/session"
)

// ErrUnauthorized is returned when the server rejects the request's
// authentication. By the time the caller sees it, the session has already
// been cleared and the OnUnauthorized hook has run.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-401 error response from the server.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (HTTP %d, code %d): %s", e.Status, e.Code, e.Message)
}

// Config configures a Client.
type Config struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	BaseURL string

	// HTTPClient is optional; its transport is wrapped by the request signer.
	HTTPClient *http.Client

	// OnUnauthorized runs after a 401 clears the session. A UI would
	// redirect to its login entry point here.
	OnUnauthorized func()
}

// Client issues API calls signed with the current session token.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	session        *session.Store
	onUnauthorized func()
}

// New constructs a Client bound to the given session store.
func New(cfg Config, sess *session.Store) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	inner := httpClient.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	httpClient.Transport = &signingTransport{inner: inner, session: sess}

	return &Client{
		baseURL:        cfg.BaseURL,
		httpClient:     httpClient,
		session:        sess,
		onUnauthorized: cfg.OnUnauthorized,
	}
}

// signingTransport attaches the session's bearer token to every request.
type signingTransport struct {
	inner   http.RoundTripper
	session *session.Store
}

func (t *signingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.session.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return t.inner.RoundTrip(req)
}

// Session returns the underlying session store.
func (c *Client) Session() *session.Store {
	return c.session
}

// errorBody mirrors the server's error response shape.
type errorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// handleResponse maps a response onto out or an error. Any 401 tears down
// the local session first.
func (c *Client) handleResponse(res *http.Response, out any) error {
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		if err := c.session.Logout(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	if res.StatusCode >= 400 {
		var body errorBody
		_ = json.NewDecoder(res.Body).Decode(&body)
		return &APIError{Status: res.StatusCode, Code: body.Code, Message: body.Error}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return c.handleResponse(res, out)
}

// credentials is the request body for register and login.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", credentials{username, password}, nil)
}

// CheckUsername asks the server whether username is already registered.
// Advisory: registration may still fail with a conflict.
func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}

	path := "/auth/username?username=" + url.QueryEscape(username)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, err
	}

	return out.Exists, nil
}

// Login authenticates and persists the returned identity in the session
// store, from which every subsequent request is signed.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}

	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{username, password}, &out); err != nil {
		return err
	}

	return c.session.Login(out.Username, out.Token)
}

// Logout clears the local session. The server keeps no session state, so the
// old token stays valid until its expiry.
func (c *Client) Logout() error {
	return c.session.Logout()
}

// ListBooks returns the full catalog.
func (c *Client) ListBooks(ctx context.Context) ([]book.Book, error) {
	var books []book.Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches a single book by id.
func (c *Client) GetBook(ctx context.Context, id string) (*book.Book, error) {
	b := &book.Book{}
	if err := c.do(ctx, http.MethodGet, "/books/"+id, nil, b); err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBook adds a book to the catalog.
func (c *Client) CreateBook(ctx context.Context, fields book.Fields) (*book.Book, error) {
	b := &book.Book{}
	if err := c.do(ctx, http.MethodPost, "/books", fields, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBook overwrites a book's fields.
func (c *Client) UpdateBook(ctx context.Context, id string, fields book.Fields) (*book.Book, error) {
	b := &book.Book{}
	if err := c.do(ctx, http.MethodPut, "/books/"+id, fields, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBook removes a book from the catalog.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/books/"+id, nil, nil)
}

// UploadCover uploads a cover image for a book and returns the storage key.
func (c *Client) UploadCover(ctx context.Context, id, filename, contentType string, cover io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cover"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, cover); err != nil {
		return "", fmt.Errorf("copy cover data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/books/"+id+"/cover", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload cover: %w", err)
	}

	var out struct {
		Key string `json:"key"`
	}
	if err := c.handleResponse(res, &out); err != nil {
		return "", err
	}

	return out.Key, nil
}
