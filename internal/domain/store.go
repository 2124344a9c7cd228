package domain

import "context"

// SessionStore is the durable home of session state. Save and Create are
// all-or-nothing: a session row, its queue entries and its rotation either
// commit together or not at all.
type SessionStore interface {
	// Create fails with constant.DuplicateAccessCodeErr when the access
	// code is already taken.
	Create(ctx context.Context, state *SessionState) error
	// Load returns constant.SessionNotFoundErr for unknown codes. Codes
	// are stored upper-cased; callers pass them upper-cased.
	Load(ctx context.Context, accessCode string) (*SessionState, error)
	Save(ctx context.Context, state *SessionState) error
	Delete(ctx context.Context, accessCode string) error
}
