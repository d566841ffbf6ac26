package usage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/evanyans/focus/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	attemptKeyPrefix = "usage:"
	attemptIndexKey  = "usage:by_time"
)

// Config holds configuration for the Redis usage repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed usage repository
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

// LogAttempt records an attempt to open a blocked app
func (r *redisRepository) LogAttempt(ctx context.Context, input *LogAttemptInput) error {
	if input == nil || input.Attempt == nil {
		return errors.New("input and attempt cannot be nil")
	}

	if input.Attempt.ID == "" {
		return errors.New("attempt ID cannot be empty")
	}

	// Marshal the attempt to JSON
	attemptJSON, err := json.Marshal(input.Attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the attempt
	attemptKey := fmt.Sprintf("%s%s", attemptKeyPrefix, input.Attempt.ID)
	pipe.Set(ctx, attemptKey, attemptJSON, 0)

	// Index by timestamp for range queries
	pipe.ZAdd(ctx, attemptIndexKey, redis.Z{
		Score:  float64(input.Attempt.Timestamp.UnixNano()),
		Member: input.Attempt.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to log attempt: %w", err)
	}

	return nil
}

// ListAttemptsSince retrieves attempts at or after the cutoff, most recent first
func (r *redisRepository) ListAttemptsSince(ctx context.Context, input *ListAttemptsSinceInput) (*ListAttemptsSinceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	attemptIDs, err := r.client.ZRevRangeByScore(ctx, attemptIndexKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(input.Since.UnixNano(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt IDs: %w", err)
	}

	if len(attemptIDs) == 0 {
		return &ListAttemptsSinceOutput{
			Attempts: []*models.UsageAttempt{},
		}, nil
	}

	attempts := make([]*models.UsageAttempt, 0, len(attemptIDs))
	for _, id := range attemptIDs {
		attemptKey := fmt.Sprintf("%s%s", attemptKeyPrefix, id)
		attemptJSON, err := r.client.Get(ctx, attemptKey).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get attempt %s: %w", id, err)
		}

		var attempt models.UsageAttempt
		if err := json.Unmarshal([]byte(attemptJSON), &attempt); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attempt %s: %w", id, err)
		}

		attempts = append(attempts, &attempt)
	}

	return &ListAttemptsSinceOutput{
		Attempts: attempts,
	}, nil
}

// ListAttemptsToday retrieves attempts since midnight of the given instant's
// day, most recent first
func (r *redisRepository) ListAttemptsToday(ctx context.Context, input *ListAttemptsTodayInput) (*ListAttemptsTodayOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	now := input.Now
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out, err := r.ListAttemptsSince(ctx, &ListAttemptsSinceInput{Since: midnight})
	if err != nil {
		return nil, err
	}

	return &ListAttemptsTodayOutput{
		Attempts: out.Attempts,
	}, nil
}
