package challenge

import (
	"github.com/evanyans/focus/internal/common/clock"
	"github.com/evanyans/focus/internal/common/uuid"
	"github.com/evanyans/focus/internal/models"
	"github.com/evanyans/focus/internal/rng"
	overrideRepo "github.com/evanyans/focus/internal/repositories/override"
	usageRepo "github.com/evanyans/focus/internal/repositories/usage"
	"github.com/evanyans/focus/internal/services/restriction"
	"github.com/evanyans/focus/internal/services/settings"
)

// TypeMath is the challenge type recorded on override sessions granted here
const TypeMath = "math"

// Factor bounds for generated multiplication problems
const (
	minFactor = 10
	maxFactor = 50
)

// Problem is a multiplication challenge shown to the user
type Problem struct {
	// A and B are the factors to multiply
	A int
	B int
}

// Answer returns the correct answer for the problem
func (p *Problem) Answer() int {
	return p.A * p.B
}

// Config contains configuration for the challenge service
type Config struct {
	// Repository dependencies
	OverrideRepo overrideRepo.Repository
	UsageRepo    usageRepo.Repository

	// Service dependencies
	Restriction restriction.Service
	Settings    settings.Service

	Random        *rng.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// GenerateInput contains parameters for generating a problem
type GenerateInput struct {
}

// GenerateOutput contains the generated problem
type GenerateOutput struct {
	Problem *Problem
}

// CompleteInput contains parameters for completing a challenge
type CompleteInput struct {
	// Problem is the challenge that was presented
	Problem *Problem

	// Answer is the user's answer
	Answer int

	// AppName optionally names the app the user was trying to open
	AppName string
}

// CompleteOutput contains the granted override session
type CompleteOutput struct {
	Session *models.OverrideSession
}
