package restriction

import "github.com/evanyans/focus/internal/models"

// ApplyBlockingInput contains parameters for applying restriction
type ApplyBlockingInput struct {
	// Selection describes the apps and categories to restrict
	Selection *models.AppSelection
}

// Config contains configuration for the shield service
type Config struct {
	// Authorized is the initial authorization state
	Authorized bool
}
