package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. Callers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies admin credentials against the store and manages
// opaque session tokens in memory. A restart invalidates all sessions.
type AuthService struct {
	users *repository.UserRepository
	ttl   time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
}

func NewAuthService(users *repository.UserRepository, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		ttl:      ttl,
		sessions: make(map[string]time.Time),
	}
}

// SeedAdmin creates the initial admin user from configuration when the
// collection is empty. Existing users are never overwritten.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}
	return s.users.CreateUser(ctx, &models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
}

// Login verifies the credentials and issues a fresh session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return token, nil
}

// Validate reports whether token names a live session, pruning it when
// expired.
func (s *AuthService) Validate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Logout revokes the session token. Revoking an unknown token is a no-op.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
