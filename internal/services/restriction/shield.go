package restriction

import (
	"context"
	"log"
	"sync"

	"github.com/evanyans/focus/internal/models"
)

// shieldService implements the Service interface with an in-memory shield.
// It records what the OS layer would be told to restrict; the platform call
// itself is the one capability this process does not own.
type shieldService struct {
	mu         sync.Mutex
	authorized bool
	blocking   bool
	selection  *models.AppSelection
}

// New creates a new shield service
func New(cfg *Config) *shieldService {
	s := &shieldService{}
	if cfg != nil {
		s.authorized = cfg.Authorized
	}
	return s
}

// ApplyBlocking enforces restriction for the given app selection
func (s *shieldService) ApplyBlocking(ctx context.Context, input *ApplyBlockingInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authorized {
		log.Println("skipping app blocking (restriction not authorized)")
		return nil
	}

	var selection *models.AppSelection
	if input != nil {
		selection = input.Selection
	}

	s.blocking = true
	s.selection = selection

	appCount := 0
	if selection != nil {
		appCount = len(selection.AppIDs)
	}
	log.Printf("applied blocking for %d apps", appCount)

	return nil
}

// RemoveBlocking lifts all restriction
func (s *shieldService) RemoveBlocking(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authorized {
		log.Println("skipping blocking removal (restriction not authorized)")
		return nil
	}

	s.blocking = false
	s.selection = nil
	log.Println("removed all blocking")

	return nil
}

// SetAuthorized records whether the platform has granted restriction authority
func (s *shieldService) SetAuthorized(authorized bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorized = authorized
}

// IsAuthorized reports whether restriction authority is currently granted
func (s *shieldService) IsAuthorized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authorized
}

// IsBlocking reports whether the shield currently enforces restriction
func (s *shieldService) IsBlocking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blocking
}

// CurrentSelection returns the selection the shield currently restricts
func (s *shieldService) CurrentSelection() *models.AppSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}
