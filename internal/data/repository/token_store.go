package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"flight-booking/pkg/utils"
)

type tokenEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// TokenStore holds opaque session tokens in process memory. Tokens are
// evicted lazily on lookup; a restart invalidates every session.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]tokenEntry
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{
		tokens: make(map[string]tokenEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a fresh token for the user. Earlier tokens stay valid until
// they expire, so logging in on a second device does not kick the first.
func (s *TokenStore) Issue(userID uuid.UUID) (string, error) {
	token, err := utils.GenerateToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[token] = tokenEntry{userID: userID, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return token, nil
}

// Resolve returns the owning user id when the token exists and has not
// expired. Expired tokens are removed on the spot.
func (s *TokenStore) Resolve(token string) (uuid.UUID, bool) {
	s.mu.RLock()
	entry, ok := s.tokens[token]
	s.mu.RUnlock()

	if !ok {
		return uuid.Nil, false
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
		return uuid.Nil, false
	}
	return entry.userID, true
}

// Revoke drops a token immediately. Revoking an unknown token is a no-op.
func (s *TokenStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
