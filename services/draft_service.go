package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

// draftTTL bounds how long an abandoned draft survives
const draftTTL = 7 * 24 * time.Hour

// DraftStore is the pending-draft slot: at most one draft per form session,
// overwritten on every auth-gated submit, never merged
type DraftStore interface {
	Save(ctx context.Context, sessionID string, draft *models.PendingDraft) error
	// Load returns (nil, nil) when no draft is stored
	Load(ctx context.Context, sessionID string) (*models.PendingDraft, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisDraftStore keeps drafts in Redis under pending_booking:<session id>
type RedisDraftStore struct {
	client *redis.Client
}

// NewRedisDraftStore creates the Redis-backed draft slot
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client}
}

func draftKey(sessionID string) string {
	return "pending_booking:" + sessionID
}

// Save overwrites the draft slot for the session
func (s *RedisDraftStore) Save(ctx context.Context, sessionID string, draft *models.PendingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(sessionID), payload, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Load fetches the draft for the session, or nil when the slot is empty
func (s *RedisDraftStore) Load(ctx context.Context, sessionID string) (*models.PendingDraft, error) {
	payload, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	var draft models.PendingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}
	return &draft, nil
}

// Clear empties the draft slot for the session
func (s *RedisDraftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

// MemoryDraftStore is an in-process draft slot for tests and local runs
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]models.PendingDraft
}

// NewMemoryDraftStore creates an empty in-memory draft slot
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]models.PendingDraft)}
}

func (s *MemoryDraftStore) Save(_ context.Context, sessionID string, draft *models.PendingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = *draft
	return nil
}

func (s *MemoryDraftStore) Load(_ context.Context, sessionID string) (*models.PendingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, nil
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}
