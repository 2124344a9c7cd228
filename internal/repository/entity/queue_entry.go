package entity

import (
	"time"

	"queueup/karaoke-backend/internal/domain"
)

type QueueEntry struct {
	ID            string `gorm:"primary_key"`
	SessionID     string `gorm:"index"`
	ContributorID string
	VideoID       string
	Title         string
	Artist        string
	URL           string
	AddedAt       time.Time `gorm:"index"`
}

func (QueueEntry) TableName() string {
	return "queue_entries"
}

func (e QueueEntry) ToDomain() domain.QueueEntry {
	return domain.QueueEntry{
		ID:            e.ID,
		SessionID:     e.SessionID,
		ContributorID: e.ContributorID,
		Song: domain.Song{
			VideoID: e.VideoID,
			Title:   e.Title,
			Artist:  e.Artist,
			URL:     e.URL,
		},
		AddedAt: e.AddedAt,
	}
}

func QueueEntryFromDomain(e domain.QueueEntry) QueueEntry {
	return QueueEntry{
		ID:            e.ID,
		SessionID:     e.SessionID,
		ContributorID: e.ContributorID,
		VideoID:       e.Song.VideoID,
		Title:         e.Song.Title,
		Artist:        e.Song.Artist,
		URL:           e.Song.URL,
		AddedAt:       e.AddedAt,
	}
}
