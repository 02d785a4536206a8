// Package session holds the authenticated admin user and persists it
// across runs, so every command after login can attach the bearer
// token without signing in again.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
)

// Authenticator is the sign-in call the store delegates to.
// *exhibition.AuthService satisfies it.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*exhibition.User, error)
}

// Store is the process-wide session. Either a fully populated user with
// both tokens is held, or none is; there is no partial state.
type Store struct {
	mu   sync.Mutex
	path string
	auth Authenticator
	user *exhibition.User
}

// New opens the store backed by the JSON file at path and restores any
// previously persisted session. A corrupt or incomplete file is purged
// and treated as logged-out; that never surfaces as an error.
func New(path string, auth Authenticator) *Store {
	s := &Store{path: path, auth: auth}
	s.restore()
	return s
}

func (s *Store) restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var user exhibition.User
	if err := json.Unmarshal(data, &user); err != nil || !complete(&user) {
		// Self-heal: a bad session file is equivalent to no session.
		os.Remove(s.path)
		return
	}
	s.user = &user
}

// complete reports whether the stored record is a usable session.
func complete(u *exhibition.User) bool {
	return u.ID > 0 && u.Email != "" && u.AccessToken != "" && u.RefreshToken != ""
}

// Login signs in and persists the resulting user. On any failure the
// prior session, if one exists, is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	user, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	if err := s.persist(user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (s *Store) persist(user *exhibition.User) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Logout clears the session and removes the persisted copy. It never
// contacts the server and is a no-op when already logged out.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Current returns the logged-in user, or nil.
func (s *Store) Current() *exhibition.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether a session is present.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// AccessToken implements exhibition.TokenSource.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.AccessToken
}
