package models

import (
	"time"
)

// UsageAttempt represents an attempt to open a blocked app
type UsageAttempt struct {
	// ID is the unique identifier for the attempt
	ID string

	// AppName is the name of the app that was attempted
	AppName string

	// Timestamp is when the attempt happened
	Timestamp time.Time

	// WasBlocked is true if the attempt was blocked, false if an override was in effect
	WasBlocked bool

	// OverrideMethod is how the block was bypassed, e.g. "challenge"; empty when blocked
	OverrideMethod string
}
