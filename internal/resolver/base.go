package resolver

import (
	"context"

	"queueup/karaoke-backend/internal/domain"
)

// SongResolver turns a free-text query into playable songs. Resolve
// returns constant.SongNotFoundErr when nothing playable matches; the
// queue core fails the add before touching any session state.
type SongResolver interface {
	Resolve(ctx context.Context, query string) (domain.Song, error)
	Search(ctx context.Context, query string) ([]domain.Song, error)
}
