// Package session holds the client's record of the currently authenticated user.
// The state is persisted as a single JSON blob of the form {"state":{"user":{...}}}
// under a fixed file path and survives process restarts. A corrupt blob is treated
// as an absent session, never as a fatal error.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"swapcli/internal/models"
	"swapcli/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// State is the session state visible to consumers. User is nil when no
// session is active; User.Token is present iff the session is authenticated.
type State struct {
	User *models.User `json:"user"`
}

// persisted mirrors the on-disk blob layout.
type persisted struct {
	State State `json:"state"`
}

// AuthAPI is the slice of the backend API the store needs to establish sessions.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

// Store is the process-wide session store. Reads are selector-based so that
// consumers depend only on the slice of state they need; mutation happens only
// through Login, Register, and Logout with last-write-wins semantics.
type Store struct {
	path string
	auth AuthAPI
	log  *logger.Logger

	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// NewStore creates a session store persisted at path. Existing persisted state
// is restored; malformed persisted data is logged and treated as no session.
func NewStore(path string, auth AuthAPI, log *logger.Logger) *Store {
	store := &Store{path: path, auth: auth, log: log, listeners: make(map[int]func(State))}

	state, err := Load(path)
	if err != nil {
		log.Warn("failed to restore session, treating as logged out", zap.Error(err))
	}
	store.state = state
	return store
}

// Load reads and parses the persisted session blob at path. An absent file
// yields an empty state and no error; a malformed blob yields an error.
func Load(path string) (State, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("session: read %s: %w", path, err)
	}

	var blob persisted
	if err := json.Unmarshal(raw, &blob); err != nil {
		return State{}, fmt.Errorf("session: parse %s: %w", path, err)
	}
	return blob.State, nil
}

// GetState returns a snapshot of the current session state.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Select applies a selector to the current state and returns its result.
func Select[T any](s *Store, selector func(State) T) T {
	return selector(s.GetState())
}

// Subscribe registers a listener invoked after every state change.
// The returned function removes the subscription.
func (s *Store) Subscribe(listener func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Login authenticates against the backend and persists the resulting session.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (State, error) {
	user, err := s.auth.Login(ctx, creds)
	if err != nil {
		return s.GetState(), err
	}
	return s.setUser(user)
}

// Register creates an account against the backend and persists the resulting session.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (State, error) {
	user, err := s.auth.Register(ctx, req)
	if err != nil {
		return s.GetState(), err
	}
	return s.setUser(user)
}

// Logout clears both the in-memory state and the persisted blob.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.state = State{}
	listeners, state := s.snapshotListeners(), s.state
	s.mu.Unlock()

	notify(listeners, state)

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: clear %s: %w", s.path, err)
	}
	return nil
}

// TokenExpiresAt reports the expiry claim of the current session token.
// The token is decoded without signature verification; the client holds no
// signing key and the backend remains the authority on token validity.
func (s *Store) TokenExpiresAt() (time.Time, bool) {
	state := s.GetState()
	if state.User == nil || state.User.Token == "" {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(state.User.Token, &claims); err != nil {
		s.log.Warn("failed to decode session token", zap.Error(err))
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the current session token carries an expiry claim
// that has already passed.
func (s *Store) Expired() bool {
	expiresAt, ok := s.TokenExpiresAt()
	return ok && time.Now().After(expiresAt)
}

func (s *Store) setUser(user *models.User) (State, error) {
	s.mu.Lock()
	s.state = State{User: user}
	listeners, state := s.snapshotListeners(), s.state
	s.mu.Unlock()

	notify(listeners, state)

	if err := s.persist(state); err != nil {
		return state, err
	}
	return state, nil
}

func (s *Store) persist(state State) error {
	raw, err := json.Marshal(persisted{State: state})
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}

// snapshotListeners must be called with the mutex held.
func (s *Store) snapshotListeners() []func(State) {
	listeners := make([]func(State), 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	return listeners
}

func notify(listeners []func(State), state State) {
	for _, listener := range listeners {
		listener(state)
	}
}
