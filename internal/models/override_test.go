package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverrideSessionIsActive(t *testing.T) {
	start := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	session := &OverrideSession{
		ID:        "override-1",
		StartTime: start,
		EndTime:   start.Add(5 * time.Minute),
	}

	assert.True(t, session.IsActive(start))
	assert.True(t, session.IsActive(start.Add(4*time.Minute)))
	assert.False(t, session.IsActive(start.Add(5*time.Minute)))
	assert.False(t, session.IsActive(start.Add(time.Hour)))
}

func TestOverrideSessionRemaining(t *testing.T) {
	start := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	session := &OverrideSession{
		ID:        "override-1",
		StartTime: start,
		EndTime:   start.Add(5 * time.Minute),
	}

	assert.Equal(t, 5*time.Minute, session.Remaining(start))
	assert.Equal(t, 2*time.Minute, session.Remaining(start.Add(3*time.Minute)))

	// Remaining floors at zero after expiry
	assert.Equal(t, time.Duration(0), session.Remaining(start.Add(10*time.Minute)))
}

func TestOverrideSessionRemainingNonIncreasing(t *testing.T) {
	start := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	session := &OverrideSession{
		StartTime: start,
		EndTime:   start.Add(5 * time.Minute),
	}

	previous := session.Remaining(start)
	for i := 1; i <= 10; i++ {
		now := start.Add(time.Duration(i) * time.Minute)
		remaining := session.Remaining(now)
		assert.LessOrEqual(t, remaining, previous)
		previous = remaining
	}
}

func TestOverrideSessionDurationMinutes(t *testing.T) {
	start := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	session := &OverrideSession{StartTime: start, EndTime: start.Add(5 * time.Minute)}
	assert.Equal(t, 5, session.DurationMinutes())

	// Partial minutes floor
	session = &OverrideSession{StartTime: start, EndTime: start.Add(90 * time.Second)}
	assert.Equal(t, 1, session.DurationMinutes())

	session = &OverrideSession{StartTime: start, EndTime: start}
	assert.Equal(t, 0, session.DurationMinutes())
}
