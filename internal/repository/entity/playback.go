package entity

import (
	"time"

	"queueup/karaoke-backend/internal/domain"
)

type PlaybackLog struct {
	EntryID       string
	AccessCode    string
	ContributorID string
	Title         string
	URL           string
	PlayedAt      time.Time
}

func (PlaybackLog) TableName() string {
	return "playback_log"
}

func (p PlaybackLog) ToDomain() domain.PlaybackRecord {
	return domain.PlaybackRecord{
		EntryID:       p.EntryID,
		AccessCode:    p.AccessCode,
		ContributorID: p.ContributorID,
		Title:         p.Title,
		URL:           p.URL,
		PlayedAt:      p.PlayedAt,
	}
}
