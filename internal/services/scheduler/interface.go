package scheduler

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/evanyans/focus/internal/services/scheduler Service

import (
	"context"
)

// Service is the interface for the scheduling engine. It is the single source
// of truth for whether blocking should be enforced right now, reconciling the
// enabled schedules with at most one active override each evaluation tick.
type Service interface {
	// Evaluate runs one reconciliation pass against the store and drives the
	// restriction applier accordingly
	Evaluate(ctx context.Context)

	// State returns a snapshot of the current aggregate arbitration state
	State() *State

	// AddSchedule creates a schedule, persists it, and re-evaluates
	AddSchedule(ctx context.Context, input *AddScheduleInput) (*AddScheduleOutput, error)

	// DeleteSchedule removes a schedule and re-evaluates
	DeleteSchedule(ctx context.Context, input *DeleteScheduleInput) error

	// ToggleSchedule flips a schedule's enabled flag and re-evaluates
	ToggleSchedule(ctx context.Context, input *ToggleScheduleInput) error

	// Start begins periodic evaluation, running an immediate pass first
	Start(ctx context.Context)

	// Stop halts periodic evaluation
	Stop()

	// Subscribe registers for aggregate state change notifications
	Subscribe() <-chan State
}
