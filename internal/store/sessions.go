package store

import (
	"sync"
	"time"

	"github.com/tripoli-karting/tentdesk/internal/domain"
)

// SessionStore holds the single operator session for this desk. A new code
// request replaces any previous pending one.
type SessionStore struct {
	mu      sync.Mutex
	session domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SetPending installs a new pending code, binding it to the phone number.
func (s *SessionStore) SetPending(phone, codeHash string, expiry time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.PhoneNumber = phone
	s.session.PendingCodeHash = codeHash
	s.session.CodeExpiry = expiry
}

// Get returns a copy of the current session.
func (s *SessionStore) Get() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// ClearPending drops the pending code and expiry together. Used when an
// expired code is detected on verify.
func (s *SessionStore) ClearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ClearPending()
}

// MarkAuthenticated flips the session to authenticated and consumes the
// pending code.
func (s *SessionStore) MarkAuthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Authenticated = true
	s.session.ClearPending()
}

// Reset returns every field to the initial unauthenticated state.
func (s *SessionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
}
