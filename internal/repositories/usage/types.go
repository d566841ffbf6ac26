package usage

import (
	"time"

	"github.com/evanyans/focus/internal/models"
)

type LogAttemptInput struct {
	Attempt *models.UsageAttempt
}

type ListAttemptsSinceInput struct {
	Since time.Time
}

type ListAttemptsSinceOutput struct {
	Attempts []*models.UsageAttempt
}

type ListAttemptsTodayInput struct {
	Now time.Time
}

type ListAttemptsTodayOutput struct {
	Attempts []*models.UsageAttempt
}
