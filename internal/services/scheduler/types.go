package scheduler

import (
	"time"

	"github.com/evanyans/focus/internal/common/clock"
	"github.com/evanyans/focus/internal/common/uuid"
	"github.com/evanyans/focus/internal/models"
	overrideRepo "github.com/evanyans/focus/internal/repositories/override"
	scheduleRepo "github.com/evanyans/focus/internal/repositories/schedule"
	"github.com/evanyans/focus/internal/services/notification"
	"github.com/evanyans/focus/internal/services/restriction"
	"github.com/evanyans/focus/internal/services/settings"
)

// DefaultPollInterval is how often the engine re-evaluates. Short enough that
// override expiry and schedule boundaries are noticed within a delay the user
// will not perceive, without constant wake-ups.
const DefaultPollInterval = 15 * time.Second

// State is the aggregate arbitration state the engine republishes each tick.
// IsBlockingActive reports what the schedule rules alone call for; an active
// override suppresses enforcement without changing it.
type State struct {
	// IsBlockingActive indicates whether some enabled schedule is active now
	IsBlockingActive bool

	// ActiveSchedule is the schedule responsible for blocking, if any.
	// Ties go to the first-created schedule.
	ActiveSchedule *models.Schedule

	// ActiveOverride is the override currently in effect, if any
	ActiveOverride *models.OverrideSession

	// IsOverrideActive indicates whether an override is in effect
	IsOverrideActive bool

	// NextTransition is the earliest upcoming schedule boundary today, if any
	NextTransition *time.Time
}

// Config contains configuration for the scheduler service
type Config struct {
	// PollInterval is how often Start re-evaluates; defaults to DefaultPollInterval
	PollInterval time.Duration

	// Repository dependencies
	ScheduleRepo scheduleRepo.Repository
	OverrideRepo overrideRepo.Repository

	// Service dependencies
	Restriction restriction.Service
	Settings    settings.Service
	Notifier    notification.Service

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// AddScheduleInput contains parameters for creating a schedule
type AddScheduleInput struct {
	// Name is the user-facing label
	Name string

	// StartTime and EndTime carry the window's time of day
	StartTime time.Time
	EndTime   time.Time

	// DaysOfWeek holds weekday numbers, 1=Sunday .. 7=Saturday
	DaysOfWeek []int

	// Enabled is the initial enabled flag
	Enabled bool
}

// AddScheduleOutput contains the created schedule
type AddScheduleOutput struct {
	Schedule *models.Schedule
}

// DeleteScheduleInput contains parameters for deleting a schedule
type DeleteScheduleInput struct {
	ScheduleID string
}

// ToggleScheduleInput contains parameters for toggling a schedule
type ToggleScheduleInput struct {
	ScheduleID string
}
