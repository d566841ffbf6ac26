package challenge

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/evanyans/focus/internal/services/challenge Service

import "context"

// Service is the interface for unlock challenges. Solving one grants a
// temporary override; the scheduler notices the override on its next tick.
type Service interface {
	// Generate produces a new math problem for the user to solve
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// Complete verifies an answer and, if correct, grants an override session
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)
}
