package domain

import "time"

// FairOrderSnapshot is the computed playback order: a permutation of the
// session's queue entries with the head designated as now playing.
type FairOrderSnapshot struct {
	Entries    []QueueEntry `json:"entries"`
	NowPlaying *QueueEntry  `json:"now_playing"`
}

// QueueUpdate is what viewers receive after every queue change.
type QueueUpdate struct {
	AccessCode     string        `json:"access_code"`
	Status         SessionStatus `json:"status"`
	ConnectedUsers []string      `json:"connected_users"`
	Queue          []QueueEntry  `json:"queue"`
	NowPlaying     *QueueEntry   `json:"now_playing"`
}

type PlaybackRecord struct {
	EntryID       string    `json:"entry_id"`
	AccessCode    string    `json:"access_code"`
	ContributorID string    `json:"contributor_id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	PlayedAt      time.Time `json:"played_at"`
}
