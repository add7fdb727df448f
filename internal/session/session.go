// Package session holds the process-wide state shared by the reconciliation
// components: the current user and the startup flag.
//
// A State is created at startup, mutated only through its named operations and
// lives for the whole session.
package session

import (
	"errors"
	"sync"
)

// ErrUserAlreadySet is returned when the current user is assigned twice.
var ErrUserAlreadySet = errors.New("current user already set")

// State is safe for concurrent use.
type State struct {
	mu           sync.RWMutex
	username     string
	userSet      bool
	initializing bool
}

// New returns a State in the initializing phase with no known user.
func New() *State {
	return &State{initializing: true}
}

// SetUsername records the session owner. Only the first call takes effect.
func (s *State) SetUsername(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userSet {
		return ErrUserAlreadySet
	}

	s.username = username
	s.userSet = true
	return nil
}

// Username returns the session owner, or "" while unknown.
func (s *State) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.username
}

// Initializing reports whether the startup refresh has not settled yet.
func (s *State) Initializing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.initializing
}

// FinishInitialization clears the startup flag. It returns true only for the
// call that actually cleared it.
func (s *State) FinishInitialization() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initializing {
		return false
	}

	s.initializing = false
	return true
}
