package song

import (
	"context"

	"queueup/karaoke-backend/internal/domain"
)

type SongHandler struct {
	resolver songResolver
}

type songResolver interface {
	Search(ctx context.Context, query string) ([]domain.Song, error)
}

func New(resolver songResolver) *SongHandler {
	return &SongHandler{
		resolver: resolver,
	}
}
