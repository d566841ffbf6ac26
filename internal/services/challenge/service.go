package challenge

import (
	"context"
	"errors"
	"log"

	"github.com/evanyans/focus/internal/common/clock"
	"github.com/evanyans/focus/internal/common/uuid"
	"github.com/evanyans/focus/internal/models"
	"github.com/evanyans/focus/internal/rng"
	overrideRepo "github.com/evanyans/focus/internal/repositories/override"
	usageRepo "github.com/evanyans/focus/internal/repositories/usage"
	"github.com/evanyans/focus/internal/services/restriction"
	"github.com/evanyans/focus/internal/services/settings"
)

// service implements the Service interface
type service struct {
	overrideRepo overrideRepo.Repository
	usageRepo    usageRepo.Repository
	restriction  restriction.Service
	settings     settings.Service
	random       *rng.Source
	clock        clock.Clock
	uuidGen      uuid.UUID
}

// New creates a new challenge service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.OverrideRepo == nil {
		return nil, ErrNilOverrideRepo
	}

	if cfg.Restriction == nil {
		return nil, ErrNilRestriction
	}

	if cfg.Settings == nil {
		return nil, ErrNilSettings
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		overrideRepo: cfg.OverrideRepo,
		usageRepo:    cfg.UsageRepo,
		restriction:  cfg.Restriction,
		settings:     cfg.Settings,
		random:       cfg.Random,
		clock:        cfg.Clock,
		uuidGen:      cfg.UUIDGenerator,
	}, nil
}

// Generate produces a new math problem for the user to solve
func (s *service) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	problem := &Problem{
		A: s.random.IntBetween(minFactor, maxFactor),
		B: s.random.IntBetween(minFactor, maxFactor),
	}

	return &GenerateOutput{
		Problem: problem,
	}, nil
}

// Complete verifies an answer and, if correct, grants an override session.
// The session is saved already marked as used: solving the challenge implies
// intent to open blocked apps. Blocking is lifted immediately; the scheduler
// keeps it lifted until the session expires.
func (s *service) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if input == nil || input.Problem == nil {
		return nil, errors.New("input and problem cannot be nil")
	}

	if input.Answer != input.Problem.Answer() {
		return nil, ErrWrongAnswer
	}

	duration, err := s.settings.GetOverrideDuration(ctx)
	if err != nil {
		log.Printf("failed to get override duration, using default: %v", err)
		duration = settings.DefaultOverrideDuration
	}

	now := s.clock.Now()
	session := &models.OverrideSession{
		ID:            s.uuidGen.NewUUID(),
		StartTime:     now,
		EndTime:       now.Add(duration),
		ChallengeType: TypeMath,
		WasUsed:       true,
	}

	err = s.overrideRepo.SaveSession(ctx, &overrideRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	// Lift blocking right away rather than waiting for the next poll tick
	if err := s.restriction.RemoveBlocking(ctx); err != nil {
		log.Printf("failed to remove blocking after challenge: %v", err)
	}

	if s.usageRepo != nil && input.AppName != "" {
		err = s.usageRepo.LogAttempt(ctx, &usageRepo.LogAttemptInput{
			Attempt: &models.UsageAttempt{
				ID:             s.uuidGen.NewUUID(),
				AppName:        input.AppName,
				Timestamp:      now,
				WasBlocked:     false,
				OverrideMethod: "challenge",
			},
		})
		if err != nil {
			log.Printf("failed to log usage attempt: %v", err)
		}
	}

	log.Printf("override granted for %d minutes", session.DurationMinutes())

	return &CompleteOutput{
		Session: session,
	}, nil
}
