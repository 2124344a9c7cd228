package session

import (
	"context"

	"queueup/karaoke-backend/internal/domain"
)

type SessionHandler struct {
	registry registryService
}

type registryService interface {
	Create(ctx context.Context) (*domain.SessionState, error)
	Find(ctx context.Context, accessCode string) (*domain.SessionState, error)
	End(ctx context.Context, accessCode string) error
}

func New(registry registryService) *SessionHandler {
	return &SessionHandler{
		registry: registry,
	}
}
