package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/evanyans/focus/internal/services/settings Service

import (
	"context"
	"time"

	"github.com/evanyans/focus/internal/models"
)

// Service is the interface for user preference storage
type Service interface {
	// GetSelection retrieves the apps the user has chosen to restrict
	GetSelection(ctx context.Context) (*models.AppSelection, error)

	// SaveSelection stores the apps the user has chosen to restrict
	SaveSelection(ctx context.Context, input *SaveSelectionInput) error

	// HasSelectedApps reports whether any apps or categories are selected
	HasSelectedApps(ctx context.Context) (bool, error)

	// GetOverrideDuration retrieves the grant duration for solved challenges
	GetOverrideDuration(ctx context.Context) (time.Duration, error)

	// SetOverrideDuration stores the grant duration for solved challenges
	SetOverrideDuration(ctx context.Context, input *SetOverrideDurationInput) error

	// GetFocusDuration retrieves the preferred focus session length
	GetFocusDuration(ctx context.Context) (time.Duration, error)

	// SetFocusDuration stores the preferred focus session length
	SetFocusDuration(ctx context.Context, input *SetFocusDurationInput) error

	// HasCompletedOnboarding reports whether the user finished onboarding
	HasCompletedOnboarding(ctx context.Context) (bool, error)

	// SetOnboardingCompleted stores the onboarding-completed flag
	SetOnboardingCompleted(ctx context.Context, input *SetOnboardingCompletedInput) error
}
