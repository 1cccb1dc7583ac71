package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newSessionOnlyAuthService(ttl time.Duration) *AuthService {
	return NewAuthService(nil, ttl)
}

func TestAuthService_ValidateUnknownToken(t *testing.T) {
	s := newSessionOnlyAuthService(time.Hour)
	assert.False(t, s.Validate(""))
	assert.False(t, s.Validate(uuid.NewString()))
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	s := newSessionOnlyAuthService(time.Hour)

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()

	assert.True(t, s.Validate(token))
	assert.True(t, s.Validate(token), "validation is repeatable")

	s.Logout(token)
	assert.False(t, s.Validate(token))

	// Logging out twice is a no-op.
	s.Logout(token)
	assert.False(t, s.Validate(token))
}

func TestAuthService_ExpiredSessionIsPruned(t *testing.T) {
	s := newSessionOnlyAuthService(time.Hour)

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	assert.False(t, s.Validate(token))

	s.mu.Lock()
	_, stillThere := s.sessions[token]
	s.mu.Unlock()
	assert.False(t, stillThere, "expired sessions are removed on validation")
}
