package settings

import (
	"time"

	"github.com/evanyans/focus/internal/models"
)

// SaveSelectionInput contains parameters for saving the app selection
type SaveSelectionInput struct {
	Selection *models.AppSelection
}

// SetOverrideDurationInput contains parameters for setting the grant duration
type SetOverrideDurationInput struct {
	Duration time.Duration
}

// SetFocusDurationInput contains parameters for setting the focus length
type SetFocusDurationInput struct {
	Duration time.Duration
}

// SetOnboardingCompletedInput contains parameters for the onboarding flag
type SetOnboardingCompletedInput struct {
	Completed bool
}
