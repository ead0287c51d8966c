package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const draftKeyPrefix = "draft:"

// DraftStore keeps in-progress submission drafts per session with a TTL, so
// a draft survives a page reload but not a long absence. It satisfies the
// wizard's Store contract.
type DraftStore struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

func NewDraftStore(r *Redis, ttl time.Duration) *DraftStore {
	return &DraftStore{
		client: r.Client(),
		logger: r.logger,
		ttl:    ttl,
	}
}

func (s *DraftStore) Save(ctx context.Context, sessionID string, data []byte) error {
	if err := s.client.Set(ctx, draftKeyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to save draft", zap.String("session", sessionID), zap.Error(err))
		return fmt.Errorf("draft save error: %w", err)
	}
	return nil
}

// Load returns nil, nil when the session has no stored draft.
func (s *DraftStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to load draft", zap.String("session", sessionID), zap.Error(err))
		return nil, fmt.Errorf("draft load error: %w", err)
	}
	return data, nil
}

func (s *DraftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+sessionID).Err(); err != nil {
		s.logger.Error("Failed to clear draft", zap.String("session", sessionID), zap.Error(err))
		return fmt.Errorf("draft clear error: %w", err)
	}
	return nil
}
