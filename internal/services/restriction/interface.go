package restriction

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/evanyans/focus/internal/services/restriction Service

import (
	"context"
)

// Service is the interface for the restriction applier, the capability that
// actually prevents access to selected apps. Both calls are idempotent and
// safe to repeat; when authorization is missing they are no-ops.
type Service interface {
	// ApplyBlocking enforces restriction for the given app selection
	ApplyBlocking(ctx context.Context, input *ApplyBlockingInput) error

	// RemoveBlocking lifts all restriction
	RemoveBlocking(ctx context.Context) error

	// SetAuthorized records whether the platform has granted restriction authority
	SetAuthorized(authorized bool)

	// IsAuthorized reports whether restriction authority is currently granted
	IsAuthorized() bool
}
