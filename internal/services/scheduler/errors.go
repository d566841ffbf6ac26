package scheduler

import "errors"

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilScheduleRepo  = errors.New("schedule repository cannot be nil")
	ErrNilOverrideRepo  = errors.New("override repository cannot be nil")
	ErrNilRestriction   = errors.New("restriction service cannot be nil")
	ErrNilSettings      = errors.New("settings service cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
	ErrEmptyName        = errors.New("schedule name cannot be empty")
	ErrNoDaysOfWeek     = errors.New("schedule must apply to at least one day")
)
