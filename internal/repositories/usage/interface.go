package usage

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/evanyans/focus/internal/repositories/usage Repository

import (
	"context"
)

// Repository defines the interface for usage attempt persistence
type Repository interface {
	// LogAttempt records an attempt to open a blocked app
	LogAttempt(ctx context.Context, input *LogAttemptInput) error

	// ListAttemptsSince retrieves attempts at or after a cutoff, most recent first
	ListAttemptsSince(ctx context.Context, input *ListAttemptsSinceInput) (*ListAttemptsSinceOutput, error)

	// ListAttemptsToday retrieves attempts since midnight of the given instant's
	// day, most recent first
	ListAttemptsToday(ctx context.Context, input *ListAttemptsTodayInput) (*ListAttemptsTodayOutput, error)
}
