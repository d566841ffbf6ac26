package settings

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
	// Keys for Redis
	selectionKey  = "settings:selection"
	durationKey   = "settings:override_duration"
	focusKey      = "settings:focus_duration"
	onboardingKey = "settings:onboarding_completed"

	// DefaultOverrideDuration is the grant given for a solved challenge when
	// the user has not configured one
	DefaultOverrideDuration = 5 * time.Minute

	// DefaultFocusDuration is the focus session length when the user has not
	// configured one
	DefaultFocusDuration = 25 * time.Minute
)

// Config holds configuration for the Redis settings service
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisService implements the Service interface using Redis
type redisService struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings service
func NewRedis(cfg *Config) (*redisService, error) {
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

	return &redisService{
		client: cfg.RedisClient,
	}, nil
}

// GetSelection retrieves the apps the user has chosen to restrict.
// A never-saved selection comes back empty, not as an error.
func (s *redisService) GetSelection(ctx context.Context) (*models.AppSelection, error) {
	selectionJSON, err := s.client.Get(ctx, selectionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.AppSelection{}, nil
		}
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}

	var selection models.AppSelection
	if err := json.Unmarshal([]byte(selectionJSON), &selection); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selection: %w", err)
	}

	return &selection, nil
}

// SaveSelection stores the apps the user has chosen to restrict
func (s *redisService) SaveSelection(ctx context.Context, input *SaveSelectionInput) error {
	if input == nil || input.Selection == nil {
		return errors.New("input and selection cannot be nil")
	}

	selectionJSON, err := json.Marshal(input.Selection)
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	if err := s.client.Set(ctx, selectionKey, selectionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}

	return nil
}

// HasSelectedApps reports whether any apps or categories are selected
func (s *redisService) HasSelectedApps(ctx context.Context) (bool, error) {
	selection, err := s.GetSelection(ctx)
	if err != nil {
		return false, err
	}
	return !selection.IsEmpty(), nil
}

// GetOverrideDuration retrieves the grant duration for solved challenges
func (s *redisService) GetOverrideDuration(ctx context.Context) (time.Duration, error) {
	value, err := s.client.Get(ctx, durationKey).Result()
	if err != nil {
		if err == redis.Nil {
			return DefaultOverrideDuration, nil
		}
		return 0, fmt.Errorf("failed to get override duration: %w", err)
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse override duration: %w", err)
	}

	return time.Duration(seconds) * time.Second, nil
}

// SetOverrideDuration stores the grant duration for solved challenges
func (s *redisService) SetOverrideDuration(ctx context.Context, input *SetOverrideDurationInput) error {
	if input == nil || input.Duration <= 0 {
		return errors.New("input and duration must be positive")
	}

	seconds := int64(input.Duration / time.Second)
	if err := s.client.Set(ctx, durationKey, strconv.FormatInt(seconds, 10), 0).Err(); err != nil {
		return fmt.Errorf("failed to set override duration: %w", err)
	}

	return nil
}

// GetFocusDuration retrieves the preferred focus session length
func (s *redisService) GetFocusDuration(ctx context.Context) (time.Duration, error) {
	value, err := s.client.Get(ctx, focusKey).Result()
	if err != nil {
		if err == redis.Nil {
			return DefaultFocusDuration, nil
		}
		return 0, fmt.Errorf("failed to get focus duration: %w", err)
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse focus duration: %w", err)
	}

	return time.Duration(seconds) * time.Second, nil
}

// SetFocusDuration stores the preferred focus session length
func (s *redisService) SetFocusDuration(ctx context.Context, input *SetFocusDurationInput) error {
	if input == nil || input.Duration <= 0 {
		return errors.New("input and duration must be positive")
	}

	seconds := int64(input.Duration / time.Second)
	if err := s.client.Set(ctx, focusKey, strconv.FormatInt(seconds, 10), 0).Err(); err != nil {
		return fmt.Errorf("failed to set focus duration: %w", err)
	}

	return nil
}

// HasCompletedOnboarding reports whether the user finished onboarding
func (s *redisService) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	value, err := s.client.Get(ctx, onboardingKey).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get onboarding flag: %w", err)
	}

	return value == "1", nil
}

// SetOnboardingCompleted stores the onboarding-completed flag
func (s *redisService) SetOnboardingCompleted(ctx context.Context, input *SetOnboardingCompletedInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	value := "0"
	if input.Completed {
		value = "1"
	}

	if err := s.client.Set(ctx, onboardingKey, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set onboarding flag: %w", err)
	}

	return nil
}
