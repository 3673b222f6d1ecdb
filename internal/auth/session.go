package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// SessionTTL is how long an issued token stays valid.
const SessionTTL = 8 * time.Hour

// Session is the server-side state behind a bearer token.
type Session struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Sessions issues and validates bearer tokens. The backing implementation
// may be swapped (in-memory table, external cache) without changing the
// handler contract.
type Sessions interface {
	// Issue creates a session for username and returns its opaque token.
	Issue(username string) (string, Session, error)
	// Validate returns the session behind token, or false when the token
	// is unknown or expired. Expired sessions are evicted on lookup.
	Validate(token string) (Session, bool)
	// Revoke drops the session behind token, if any.
	Revoke(token string)
}

// MemorySessions is a mutex-guarded in-memory session table. Restarting the
// process invalidates every session.
type MemorySessions struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	byToken map[string]Session
}

// NewMemorySessions creates a session table with the default TTL.
func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		ttl:     SessionTTL,
		now:     time.Now,
		byToken: make(map[string]Session),
	}
}

// Issue implements Sessions.
func (m *MemorySessions) Issue(username string) (string, Session, error) {
	token, err := generateToken()
	if err != nil {
		return "", Session{}, fmt.Errorf("generating session token: %w", err)
	}

	now := m.now()
	s := Session{
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.byToken[token] = s
	m.mu.Unlock()

	return token, s, nil
}

// Validate implements Sessions. A session is valid up to and including its
// expiry instant; anything after is evicted.
func (m *MemorySessions) Validate(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byToken[token]
	if !ok {
		return Session{}, false
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.byToken, token)
		return Session{}, false
	}
	return s, true
}

// Revoke implements Sessions.
func (m *MemorySessions) Revoke(token string) {
	m.mu.Lock()
	delete(m.byToken, token)
	m.mu.Unlock()
}

// Len reports the number of live entries, counting expired ones not yet
// evicted by lookup.
func (m *MemorySessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byToken)
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
