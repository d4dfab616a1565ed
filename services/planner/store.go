package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tembea/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists in-progress wizard sessions. Each session is
// owned by exactly one wizard instance; concurrent mutation within a
// session is not expected.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.JourneySession, error)
	Put(ctx context.Context, session *models.JourneySession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs with a TTL, so an
// abandoned wizard expires on its own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

const sessionKeyPrefix = "journey:session:"

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.JourneySession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load journey session: %w", err)
	}
	var session models.JourneySession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse journey session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, session *models.JourneySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal journey session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store journey session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
