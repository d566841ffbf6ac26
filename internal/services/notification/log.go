package notification

import (
	"context"
	"log"
)

// logService implements the Service interface by writing to the process log.
// It is the default sink when no external channel is configured.
type logService struct{}

// NewLog creates a log-backed notification service
func NewLog() *logService {
	return &logService{}
}

// Notify writes the notification to the process log
func (s *logService) Notify(ctx context.Context, input *NotifyInput) error {
	if input == nil {
		return nil
	}
	log.Printf("notification: %s - %s", input.Title, input.Body)
	return nil
}
