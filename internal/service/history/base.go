package history

import (
	"context"

	"github.com/sirupsen/logrus"

	"queueup/karaoke-backend/internal/domain"
)

type historyService struct {
	repository historyRepository
	logger     *logrus.Logger
}

type historyRepository interface {
	InsertPlayback(ctx context.Context, record domain.PlaybackRecord) error
	ListPlayback(ctx context.Context, accessCode string, limit, offset int) ([]domain.PlaybackRecord, int64, error)
}

func NewHistoryService(repository historyRepository, logger *logrus.Logger) *historyService {
	return &historyService{
		repository: repository,
		logger:     logger,
	}
}
