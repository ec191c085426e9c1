/*
Package session holds the client-side authentication state: the logged-in
username and bearer token.

The store is explicitly constructed and passed to whatever issues
authenticated requests; there is no package-level singleton. Every mutation
is written through to durable storage under a fixed namespace, so a new
process (the moral equivalent of a page reload) restores the prior session.
Readers observe changes via Subscribe.
*/
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StorageNamespace is the fixed name of the persisted session entry.
const StorageNamespace = "auth-storage.json"

// State is the persisted session snapshot. A non-empty Token means the
// holder is treated as authenticated; Username is a display label only and
// never drives authorization decisions.
type State struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Storage persists session state across process restarts.
type Storage interface {
	Load() (State, error)
	Save(State) error
}

// FileStorage keeps the session state in a JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage stores the session under dir using the fixed namespace.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, StorageNamespace)}
}

// Load reads the persisted state. A missing file is an empty session, not an error.
func (f *FileStorage) Load() (State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("read session file: %w", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode session file: %w", err)
	}

	return s, nil
}

// Save overwrites the persisted state.
func (f *FileStorage) Save(s State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Store is the process-wide session state container.
type Store struct {
	mu      sync.RWMutex
	state   State
	storage Storage
	subs    map[int]func(State)
	nextSub int
}

// NewStore constructs a Store, restoring the initial state from storage.
func NewStore(storage Storage) (*Store, error) {
	state, err := storage.Load()
	if err != nil {
		return nil, err
	}

	return &Store{
		state:   state,
		storage: storage,
		subs:    make(map[int]func(State)),
	}, nil
}

// Login records the authenticated identity and persists it. The mutation and
// its durable write are one step from the caller's perspective.
func (s *Store) Login(username, token string) error {
	return s.set(State{Username: username, Token: token})
}

// Logout clears the session locally and persists the empty state.
// The server holds no session: an already-issued token remains valid until
// its natural expiry, there is no revocation list.
func (s *Store) Logout() error {
	return s.set(State{})
}

func (s *Store) set(state State) error {
	s.mu.Lock()
	s.state = state
	err := s.storage.Save(state)
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	// Notify outside the lock so a subscriber may read the store.
	for _, fn := range subs {
		fn(state)
	}

	return err
}

// State returns the current session snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the current bearer token, empty when logged out.
func (s *Store) Token() string {
	return s.State().Token
}

// Authenticated reports whether a token is held.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
