package streak

import (
	"fmt"
	"time"

	"github.com/evanyans/focus/internal/models"
)

// maxStreakDays caps the backward walk so a corrupt history cannot loop forever
const maxStreakDays = 365

// Calculate returns the number of consecutive days, ending today, on which no
// override was actually used. A used override today makes the streak 0. The
// walk never goes past the earliest session on record, so a brand-new user
// starts at 0 rather than an unbounded count.
func Calculate(sessions []*models.OverrideSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	today := startOfDay(now)

	brokenDays := make(map[time.Time]struct{})
	var earliest time.Time
	for _, session := range sessions {
		day := startOfDay(session.StartTime.In(now.Location()))

		if earliest.IsZero() || day.Before(earliest) {
			earliest = day
		}

		// Only a used override breaks the streak; solving the challenge and
		// abandoning the grant does not count against the user
		if session.WasUsed {
			brokenDays[day] = struct{}{}
		}
	}

	if _, broken := brokenDays[today]; broken {
		return 0
	}

	streak := 0
	day := today
	for !day.Before(earliest) {
		if _, broken := brokenDays[day]; broken {
			break
		}
		streak++
		if streak >= maxStreakDays {
			break
		}
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// UsedOverrideToday reports whether any override was used on the current day
func UsedOverrideToday(sessions []*models.OverrideSession, now time.Time) bool {
	today := startOfDay(now)
	for _, session := range sessions {
		if session.WasUsed && startOfDay(session.StartTime.In(now.Location())).Equal(today) {
			return true
		}
	}
	return false
}

// Message returns an encouragement line for the given streak length
func Message(streak int) string {
	switch {
	case streak == 0:
		return "Start fresh today!"
	case streak == 1:
		return "Great start! Keep going"
	case streak <= 6:
		return "Building momentum!"
	case streak <= 13:
		return "One week strong!"
	case streak <= 29:
		return "Two weeks! You're unstoppable!"
	case streak <= 59:
		return "A full month! Legendary!"
	default:
		return fmt.Sprintf("Focus master! %d days!", streak)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
