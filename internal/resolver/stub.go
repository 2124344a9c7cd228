package resolver

import (
	"context"
	"fmt"

	"queueup/karaoke-backend/internal/domain"
)

// StubResolver returns a deterministic song for any query. Used in tests
// and local runs without a YouTube API key.
type StubResolver struct{}

func NewStubResolver() *StubResolver {
	return &StubResolver{}
}

func (s *StubResolver) Resolve(_ context.Context, query string) (domain.Song, error) {
	return domain.Song{
		VideoID: "stub-video-id",
		Title:   query,
		URL:     fmt.Sprintf("https://youtube.example/watch?v=stub&q=%s", query),
	}, nil
}

func (s *StubResolver) Search(ctx context.Context, query string) ([]domain.Song, error) {
	song, err := s.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	return []domain.Song{song}, nil
}
