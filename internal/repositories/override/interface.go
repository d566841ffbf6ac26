package override

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/evanyans/focus/internal/repositories/override Repository

import (
	"context"
)

// Repository defines the interface for override session persistence
type Repository interface {
	// SaveSession persists an override session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// ListSessions retrieves all override sessions ordered by start time, most recent first
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// DeleteAllSessions removes the entire override history
	DeleteAllSessions(ctx context.Context, input *DeleteAllSessionsInput) error
}
