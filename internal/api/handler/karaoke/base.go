package karaoke

import (
	"context"

	"queueup/karaoke-backend/internal/domain"
)

type KaraokeHandler struct {
	karaokeService karaokeService
	historyService historyService
}

type karaokeService interface {
	AddSong(ctx context.Context, accessCode, contributorID, query string) (domain.QueueEntry, error)
	RemoveSong(ctx context.Context, accessCode, entryID string) error
	PlayNext(ctx context.Context, accessCode string) (*domain.QueueEntry, error)
	Snapshot(ctx context.Context, accessCode string) (domain.FairOrderSnapshot, error)
	Join(ctx context.Context, accessCode, userID string) error
}

type historyService interface {
	List(ctx context.Context, accessCode string, limit, offset int) ([]domain.PlaybackRecord, int64, error)
}

func New(karaokeService karaokeService, historyService historyService) *KaraokeHandler {
	return &KaraokeHandler{
		karaokeService: karaokeService,
		historyService: historyService,
	}
}
