package models

import (
	"time"
)

// OverrideSession represents a temporary suspension of blocking, granted when
// the user completes a challenge
type OverrideSession struct {
	// ID is the unique identifier for the session
	ID string

	// StartTime is when the override was granted
	StartTime time.Time

	// EndTime is when the override expires
	EndTime time.Time

	// ChallengeType is the kind of challenge that was solved, e.g. "math"
	ChallengeType string

	// WasUsed indicates whether the user actually opened blocked apps during
	// the override, as opposed to solving the challenge and walking away
	WasUsed bool
}

// IsActive reports whether the override is still in effect at the given instant
func (o *OverrideSession) IsActive(now time.Time) bool {
	return now.Before(o.EndTime)
}

// Remaining returns the time left on the override, floored at zero
func (o *OverrideSession) Remaining(now time.Time) time.Duration {
	remaining := o.EndTime.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DurationMinutes returns the granted duration in whole minutes
func (o *OverrideSession) DurationMinutes() int {
	return int(o.EndTime.Sub(o.StartTime) / time.Minute)
}
