package override

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/evanyans/focus/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "override:"
	sessionIndexKey  = "overrides:by_start"
)

// Config holds configuration for the Redis override repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed override repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession persists an override session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	// Marshal the session to JSON
	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the session
	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	// Index by start time so listings come back most recent first
	pipe.ZAdd(ctx, sessionIndexKey, redis.Z{
		Score:  float64(input.Session.StartTime.UnixNano()),
		Member: input.Session.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// ListSessions retrieves all override sessions ordered by start time, most recent first
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	sessionIDs, err := r.client.ZRevRange(ctx, sessionIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs: %w", err)
	}

	if len(sessionIDs) == 0 {
		return &ListSessionsOutput{
			Sessions: []*models.OverrideSession{},
		}, nil
	}

	sessions := make([]*models.OverrideSession, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, id)
		sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", id, err)
		}

		var session models.OverrideSession
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
		}

		sessions = append(sessions, &session)
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// DeleteAllSessions removes the entire override history
func (r *redisRepository) DeleteAllSessions(ctx context.Context, input *DeleteAllSessionsInput) error {
	sessionIDs, err := r.client.ZRange(ctx, sessionIndexKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get session IDs: %w", err)
	}

	pipe := r.client.Pipeline()

	for _, id := range sessionIDs {
		sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, id)
		pipe.Del(ctx, sessionKey)
	}
	pipe.Del(ctx, sessionIndexKey)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	return nil
}
