package override

import "github.com/evanyans/focus/internal/models"

type SaveSessionInput struct {
	Session *models.OverrideSession
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*models.OverrideSession
}

type DeleteAllSessionsInput struct {
}
