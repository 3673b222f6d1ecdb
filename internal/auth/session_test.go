package auth

import (
	"testing"
	"time"
)

func TestSessionIssueAndValidate(t *testing.T) {
	store := NewMemorySessions()

	token, s, err := store.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(token))
	}
	if s.Username != "admin" {
		t.Errorf("username = %q, want %q", s.Username, "admin")
	}
	if got := s.ExpiresAt.Sub(s.CreatedAt); got != SessionTTL {
		t.Errorf("session lifetime = %v, want %v", got, SessionTTL)
	}

	got, ok := store.Validate(token)
	if !ok {
		t.Fatal("expected token to validate")
	}
	if got.Username != "admin" {
		t.Errorf("validated username = %q, want %q", got.Username, "admin")
	}
}

func TestSessionValidateUnknownToken(t *testing.T) {
	store := NewMemorySessions()

	if _, ok := store.Validate("bogus-token"); ok {
		t.Fatal("expected unknown token to be rejected")
	}
	if _, ok := store.Validate(""); ok {
		t.Fatal("expected empty token to be rejected")
	}
}

func TestSessionExpiryBoundary(t *testing.T) {
	store := NewMemorySessions()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	token, s, err := store.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Valid at the expiry instant itself.
	now = s.ExpiresAt
	if _, ok := store.Validate(token); !ok {
		t.Fatal("token should be valid at the expiry instant")
	}

	// One nanosecond later it is rejected and evicted.
	now = s.ExpiresAt.Add(time.Nanosecond)
	if _, ok := store.Validate(token); ok {
		t.Fatal("token should be rejected after expiry")
	}
	if store.Len() != 0 {
		t.Errorf("expired session not evicted, %d entries remain", store.Len())
	}

	// A second lookup of the evicted token also fails.
	if _, ok := store.Validate(token); ok {
		t.Fatal("evicted token should stay rejected")
	}
}

func TestSessionRevoke(t *testing.T) {
	store := NewMemorySessions()

	token, _, err := store.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	store.Revoke(token)
	if _, ok := store.Validate(token); ok {
		t.Fatal("revoked token should be rejected")
	}

	// Revoking twice is harmless.
	store.Revoke(token)
}

func TestSessionTokensAreUnique(t *testing.T) {
	store := NewMemorySessions()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, _, err := store.Issue("admin")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token issued: %s", token)
		}
		seen[token] = true
	}
}
