package domain

import "time"

// Song is an already-resolved playable reference. The core never
// re-validates playability; that is the resolver's contract.
type Song struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	URL     string `json:"url"`
}

type QueueEntry struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"-"`
	ContributorID string    `json:"contributor_id"`
	Song          Song      `json:"song"`
	AddedAt       time.Time `json:"added_at"`
}
