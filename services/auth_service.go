package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

// sessionTTL is how long an auth session stays active
const sessionTTL = 24 * time.Hour

// SessionStore keeps the auth collaborator's active sessions
type SessionStore interface {
	Put(ctx context.Context, token string, user models.User, ttl time.Duration) error
	// Get returns (nil, nil) when the token has no active session
	Get(ctx context.Context, token string) (*models.User, error)
	Delete(ctx context.Context, token string) error
}

var loginEmailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validPassword applies the login form's password policy: at least 8
// characters with an upper-case letter, a lower-case letter, a digit and a
// special character
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("#?!@$%^&*-", r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Login validates the credential shape and opens a session. There is no
// real credential verification behind this; the collaborator only has to
// answer "is a session active" and "who is the current user".
func Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if !loginEmailRe.MatchString(email) || !validPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	user := models.User{
		ID:    uuid.NewString(),
		Email: email,
	}
	token := uuid.NewString()

	if err := sessionStore.Put(ctx, token, user, sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to open session: %w", err)
	}
	return token, &user, nil
}

// IsSessionActive reports whether the token belongs to an active session
func IsSessionActive(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	user, err := sessionStore.Get(ctx, token)
	return err == nil && user != nil
}

// CurrentUser returns the identified user for the token, or
// ErrNoActiveSession
func CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNoActiveSession
	}
	user, err := sessionStore.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoActiveSession
	}
	return user, nil
}

// Logout closes the session for the token
func Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return sessionStore.Delete(ctx, token)
}

// RedisSessionStore keeps auth sessions in Redis under session:<token>
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates the Redis-backed session store
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) Put(ctx context.Context, token string, user models.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*models.User, error) {
	payload, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &user, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// MemorySessionStore is an in-process session store for tests and local runs
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.User
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.User)}
}

func (s *MemorySessionStore) Put(_ context.Context, token string, user models.User, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = user
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
