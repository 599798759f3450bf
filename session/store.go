// Package session holds the durable client-side auth state: the bearer token
// plus the handful of profile fields the UI needs before the user query
// resolves. One writer (StoreAuthData / Logout); everything else reads.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
)

const (
	KeyToken       = "token"
	KeyUsername    = "username"
	KeyUserID      = "userId"
	KeyAccountType = "accountType"
	KeyAvatar      = "pfp"
)

var sessionKeys = []string{KeyToken, KeyUsername, KeyUserID, KeyAccountType, KeyAvatar}

// ErrVerifyFailed means a write could not be confirmed by reading it back.
// The store refuses to pretend such a session exists.
var ErrVerifyFailed = errors.New("session write verification failed")

// Store keeps each session key in its own file under dir, mirroring a
// key-value browser store. Values are plain strings, no schema versioning.
type Store struct {
	dir string
	mu  sync.Mutex
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get returns the stored value, or "" when the key is absent.
func (s *Store) Get(key string) string {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return ""
	}
	return string(data)
}

// Set persists the value and verifies it by reading it back.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write session key %q: %w", key, err)
	}
	readBack, err := os.ReadFile(s.path(key))
	if err != nil || string(readBack) != value {
		return fmt.Errorf("%w: key %q", ErrVerifyFailed, key)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session key %q: %w", key, err)
	}
	return nil
}

// Clear removes every session key, collecting failures so one bad key does
// not leave the rest behind.
func (s *Store) Clear() error {
	var result *multierror.Error
	for _, key := range sessionKeys {
		if err := s.Delete(key); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Token returns the trimmed bearer token, "" when anonymous.
func (s *Store) Token() string {
	return strings.TrimSpace(s.Get(KeyToken))
}

// LoggedIn reports whether a session token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}
