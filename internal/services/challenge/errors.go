package challenge

import "errors"

// Define errors
var (
	ErrWrongAnswer      = errors.New("wrong answer")
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilOverrideRepo  = errors.New("override repository cannot be nil")
	ErrNilRestriction   = errors.New("restriction service cannot be nil")
	ErrNilSettings      = errors.New("settings service cannot be nil")
	ErrNilRandom        = errors.New("random source cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
)
