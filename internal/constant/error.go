package constant

import "github.com/pkg/errors"

const SessionNotFoundErrMsg = "session not found"

var (
	SessionNotFoundErr     = errors.New(SessionNotFoundErrMsg)
	SongNotFoundErr        = errors.New("no playable song found")
	InvalidIdentifierErr   = errors.New("invalid identifier")
	QueueEntryNotFoundErr  = errors.New("queue entry not found")
	DuplicateAccessCodeErr = errors.New("access code already exists")
)
