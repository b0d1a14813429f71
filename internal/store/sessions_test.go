package store

import (
	"testing"
	"time"
)

func TestSessionPendingLifecycle(t *testing.T) {
	s := NewSessionStore()

	fresh := s.Get()
	if fresh.HasPendingCode() {
		t.Fatal("fresh store should have no pending code")
	}

	expiry := time.Now().Add(2 * time.Minute)
	s.SetPending("5550100", "hash", expiry)

	session := s.Get()
	if !session.HasPendingCode() || session.PhoneNumber != "5550100" {
		t.Error("pending code not installed")
	}
	if !session.CodeExpiry.Equal(expiry) {
		t.Error("expiry not bound with the code")
	}

	s.ClearPending()
	session = s.Get()
	if session.HasPendingCode() || !session.CodeExpiry.IsZero() {
		t.Error("ClearPending must drop code and expiry together")
	}
	if session.PhoneNumber != "5550100" {
		t.Error("ClearPending should not touch the phone number")
	}
}

func TestMarkAuthenticatedConsumesCode(t *testing.T) {
	s := NewSessionStore()
	s.SetPending("5550100", "hash", time.Now().Add(time.Minute))

	s.MarkAuthenticated()

	session := s.Get()
	if !session.Authenticated {
		t.Error("session not authenticated")
	}
	if session.HasPendingCode() {
		t.Error("pending code must be consumed on authentication")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := NewSessionStore()
	s.SetPending("5550100", "hash", time.Now().Add(time.Minute))
	s.MarkAuthenticated()

	s.Reset()

	session := s.Get()
	if session.Authenticated || session.HasPendingCode() || session.PhoneNumber != "" {
		t.Errorf("reset left residual state: %+v", session)
	}
}
