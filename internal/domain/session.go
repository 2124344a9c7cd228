package domain

import "time"

type SessionStatus string

const (
	StatusWaiting SessionStatus = "WAITING"
	StatusPlaying SessionStatus = "PLAYING"
	StatusClosed  SessionStatus = "CLOSED"
)

type Session struct {
	ID             string
	AccessCode     string
	Status         SessionStatus
	ConnectedUsers []string
	CreatedAt      time.Time
}

// Rotation is the ordered list of contributing users plus the index of
// whoever currently holds the turn. Pointer is 0 when Order is empty,
// otherwise always within [0, len(Order)).
type Rotation struct {
	Order   []string
	Pointer int
}

// SessionState bundles everything a mutation touches. The store persists
// it as a single all-or-nothing unit.
type SessionState struct {
	Session  Session
	Entries  []QueueEntry
	Rotation Rotation
}

func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	cp := &SessionState{Session: s.Session}
	cp.Session.ConnectedUsers = append([]string(nil), s.Session.ConnectedUsers...)
	cp.Entries = append([]QueueEntry(nil), s.Entries...)
	cp.Rotation.Order = append([]string(nil), s.Rotation.Order...)
	cp.Rotation.Pointer = s.Rotation.Pointer
	return cp
}
