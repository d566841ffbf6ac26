package notification

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/evanyans/focus/internal/services/notification Service

import (
	"context"
)

// Service is the interface for user notifications. Delivery is
// fire-and-forget; callers never depend on it succeeding.
type Service interface {
	// Notify sends a notification to the user
	Notify(ctx context.Context, input *NotifyInput) error
}

// NotifyInput contains parameters for sending a notification
type NotifyInput struct {
	// Title is the short headline
	Title string

	// Body is the message text
	Body string
}
