package karaoke

import (
	"context"

	"github.com/sirupsen/logrus"

	"queueup/karaoke-backend/internal/domain"
	"queueup/karaoke-backend/internal/notify"
)

type karaokeService struct {
	store     domain.SessionStore
	resolver  songResolver
	publisher notify.Publisher
	history   historyRecorder
	logger    *logrus.Logger
	locks     keyedMutex
}

type songResolver interface {
	Resolve(ctx context.Context, query string) (domain.Song, error)
}

type historyRecorder interface {
	Record(ctx context.Context, accessCode string, entry domain.QueueEntry)
}

func NewKaraokeService(
	store domain.SessionStore,
	resolver songResolver,
	publisher notify.Publisher,
	history historyRecorder,
	logger *logrus.Logger,
) *karaokeService {
	return &karaokeService{
		store:     store,
		resolver:  resolver,
		publisher: publisher,
		history:   history,
		logger:    logger,
	}
}
