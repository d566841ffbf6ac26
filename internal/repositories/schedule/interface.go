package schedule

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/evanyans/focus/internal/repositories/schedule Repository

import (
	"context"

	"github.com/evanyans/focus/internal/models"
)

// Repository defines the interface for schedule persistence
type Repository interface {
	// SaveSchedule persists a schedule
	SaveSchedule(ctx context.Context, input *SaveScheduleInput) error

	// GetSchedule retrieves a schedule by ID
	GetSchedule(ctx context.Context, input *GetScheduleInput) (*models.Schedule, error)

	// DeleteSchedule removes a schedule
	DeleteSchedule(ctx context.Context, input *DeleteScheduleInput) error

	// ListSchedules retrieves all schedules ordered by creation time, oldest first
	ListSchedules(ctx context.Context, input *ListSchedulesInput) (*ListSchedulesOutput, error)

	// ListEnabledSchedules retrieves enabled schedules ordered by creation time, oldest first
	ListEnabledSchedules(ctx context.Context, input *ListEnabledSchedulesInput) (*ListEnabledSchedulesOutput, error)
}
