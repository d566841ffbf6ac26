package schedule

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
	scheduleKeyPrefix = "schedule:"
	scheduleIndexKey  = "schedules:by_created"
)

// ErrScheduleNotFound is returned when a schedule is not found
var ErrScheduleNotFound = errors.New("schedule not found")

// Config holds configuration for the Redis schedule repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed schedule repository
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

// SaveSchedule persists a schedule to Redis
func (r *redisRepository) SaveSchedule(ctx context.Context, input *SaveScheduleInput) error {
	if input == nil || input.Schedule == nil {
		return errors.New("input and schedule cannot be nil")
	}

	if input.Schedule.ID == "" {
		return errors.New("schedule ID cannot be empty")
	}

	// Marshal the schedule to JSON
	scheduleJSON, err := json.Marshal(input.Schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the schedule
	scheduleKey := fmt.Sprintf("%s%s", scheduleKeyPrefix, input.Schedule.ID)
	pipe.Set(ctx, scheduleKey, scheduleJSON, 0)

	// Index by creation time so listings come back in creation order
	pipe.ZAdd(ctx, scheduleIndexKey, redis.Z{
		Score:  float64(input.Schedule.CreatedAt.UnixNano()),
		Member: input.Schedule.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}

	return nil
}

// GetSchedule retrieves a schedule by ID from Redis
func (r *redisRepository) GetSchedule(ctx context.Context, input *GetScheduleInput) (*models.Schedule, error) {
	if input == nil || input.ScheduleID == "" {
		return nil, errors.New("input and schedule ID cannot be empty")
	}

	scheduleKey := fmt.Sprintf("%s%s", scheduleKeyPrefix, input.ScheduleID)
	scheduleJSON, err := r.client.Get(ctx, scheduleKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	var schedule models.Schedule
	if err := json.Unmarshal([]byte(scheduleJSON), &schedule); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule: %w", err)
	}

	return &schedule, nil
}

// DeleteSchedule removes a schedule from Redis
func (r *redisRepository) DeleteSchedule(ctx context.Context, input *DeleteScheduleInput) error {
	if input == nil || input.ScheduleID == "" {
		return errors.New("input and schedule ID cannot be empty")
	}

	pipe := r.client.Pipeline()

	scheduleKey := fmt.Sprintf("%s%s", scheduleKeyPrefix, input.ScheduleID)
	pipe.Del(ctx, scheduleKey)
	pipe.ZRem(ctx, scheduleIndexKey, input.ScheduleID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	return nil
}

// ListSchedules retrieves all schedules ordered by creation time, oldest first
func (r *redisRepository) ListSchedules(ctx context.Context, input *ListSchedulesInput) (*ListSchedulesOutput, error) {
	schedules, err := r.listByIndex(ctx)
	if err != nil {
		return nil, err
	}

	return &ListSchedulesOutput{
		Schedules: schedules,
	}, nil
}

// ListEnabledSchedules retrieves enabled schedules ordered by creation time, oldest first
func (r *redisRepository) ListEnabledSchedules(ctx context.Context, input *ListEnabledSchedulesInput) (*ListEnabledSchedulesOutput, error) {
	schedules, err := r.listByIndex(ctx)
	if err != nil {
		return nil, err
	}

	enabled := make([]*models.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.Enabled {
			enabled = append(enabled, schedule)
		}
	}

	return &ListEnabledSchedulesOutput{
		Schedules: enabled,
	}, nil
}

// listByIndex fetches every schedule referenced by the creation-time index,
// in index order. Index entries whose schedule key is missing are skipped.
func (r *redisRepository) listByIndex(ctx context.Context) ([]*models.Schedule, error) {
	scheduleIDs, err := r.client.ZRange(ctx, scheduleIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule IDs: %w", err)
	}

	if len(scheduleIDs) == 0 {
		return []*models.Schedule{}, nil
	}

	schedules := make([]*models.Schedule, 0, len(scheduleIDs))
	for _, id := range scheduleIDs {
		scheduleKey := fmt.Sprintf("%s%s", scheduleKeyPrefix, id)
		scheduleJSON, err := r.client.Get(ctx, scheduleKey).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get schedule %s: %w", id, err)
		}

		var schedule models.Schedule
		if err := json.Unmarshal([]byte(scheduleJSON), &schedule); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schedule %s: %w", id, err)
		}

		schedules = append(schedules, &schedule)
	}

	return schedules, nil
}
