package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"queueup/karaoke-backend/internal/domain"
	"queueup/karaoke-backend/internal/repository/entity"
)

type historyRepository struct {
	clickhouse *gorm.DB
}

func NewHistoryRepository(clickhouse *gorm.DB) *historyRepository {
	return &historyRepository{
		clickhouse: clickhouse,
	}
}

func (hr *historyRepository) InsertPlayback(ctx context.Context, record domain.PlaybackRecord) error {
	err := gorm.G[entity.PlaybackLog](hr.clickhouse).Create(ctx, &entity.PlaybackLog{
		EntryID:       record.EntryID,
		AccessCode:    record.AccessCode,
		ContributorID: record.ContributorID,
		Title:         record.Title,
		URL:           record.URL,
		PlayedAt:      record.PlayedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to insert playback record")
	}
	return nil
}

func (hr *historyRepository) ListPlayback(ctx context.Context, accessCode string, limit, offset int) ([]domain.PlaybackRecord, int64, error) {
	total, err := gorm.G[entity.PlaybackLog](hr.clickhouse).
		Where("access_code = ?", accessCode).
		Count(ctx, "entry_id")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count playback records")
	}

	rows, err := gorm.G[entity.PlaybackLog](hr.clickhouse).
		Where("access_code = ?", accessCode).
		Order("played_at DESC").
		Limit(limit).
		Offset(offset).
		Find(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list playback records")
	}

	var records []domain.PlaybackRecord
	for _, row := range rows {
		records = append(records, row.ToDomain())
	}
	return records, total, nil
}
