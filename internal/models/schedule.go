package models

import (
	"strings"
	"time"
)

// Weekday numbers follow the Sunday-first convention: 1=Sunday .. 7=Saturday.
const (
	WeekdaySunday    = 1
	WeekdayMonday    = 2
	WeekdayTuesday   = 3
	WeekdayWednesday = 4
	WeekdayThursday  = 5
	WeekdayFriday    = 6
	WeekdaySaturday  = 7
)

var shortDayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Schedule represents a recurring time window during which blocking is enforced
type Schedule struct {
	// ID is the unique identifier for the schedule
	ID string

	// Name is the user-facing label, e.g. "Work Hours", "Sleep Time"
	Name string

	// StartTime is the start of the window; only hour and minute are significant
	StartTime time.Time

	// EndTime is the end of the window; only hour and minute are significant
	EndTime time.Time

	// DaysOfWeek holds the weekday numbers (1=Sunday .. 7=Saturday) the schedule applies to
	DaysOfWeek []int

	// Enabled indicates whether the schedule participates in evaluation
	Enabled bool

	// CreatedAt is when the schedule was created; used as a stable sort key
	CreatedAt time.Time
}

// IsActiveAt reports whether the schedule's window covers the given instant.
// Windows whose end is earlier than their start cross midnight. A window whose
// start and end coincide is an empty range and is never active.
func (s *Schedule) IsActiveAt(now time.Time) bool {
	if !s.Enabled {
		return false
	}

	if !s.AppliesOn(Weekday(now)) {
		return false
	}

	startM := minutesOfDay(s.StartTime)
	endM := minutesOfDay(s.EndTime)
	nowM := minutesOfDay(now)

	if endM < startM {
		return nowM >= startM || nowM < endM
	}
	return nowM >= startM && nowM < endM
}

// BoundariesOn returns the schedule's start and end instants on the given day,
// built by combining the day's date with the schedule's time-of-day values.
func (s *Schedule) BoundariesOn(day time.Time) (start, end time.Time) {
	start = time.Date(day.Year(), day.Month(), day.Day(), s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, day.Location())
	end = time.Date(day.Year(), day.Month(), day.Day(), s.EndTime.Hour(), s.EndTime.Minute(), 0, 0, day.Location())
	return start, end
}

// TimeRange returns a formatted time range string, e.g. "09:00 - 17:00"
func (s *Schedule) TimeRange() string {
	return s.StartTime.Format("15:04") + " - " + s.EndTime.Format("15:04")
}

// DaysString returns a formatted days string, e.g. "Mon, Tue, Wed"
func (s *Schedule) DaysString() string {
	names := make([]string, 0, len(s.DaysOfWeek))
	for day := WeekdaySunday; day <= WeekdaySaturday; day++ {
		if s.AppliesOn(day) {
			names = append(names, shortDayNames[day-1])
		}
	}
	return strings.Join(names, ", ")
}

// AppliesOn reports whether the schedule includes the given weekday number
func (s *Schedule) AppliesOn(weekday int) bool {
	for _, day := range s.DaysOfWeek {
		if day == weekday {
			return true
		}
	}
	return false
}

// Weekday converts a time.Time to the 1=Sunday .. 7=Saturday numbering
func Weekday(t time.Time) int {
	return int(t.Weekday()) + 1
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
