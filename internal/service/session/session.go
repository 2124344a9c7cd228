package session

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
)

// Create registers a new waiting session under a fresh access code.
// Generation retries on the (negligible but possible) code collision.
func (rs *registryService) Create(ctx context.Context) (*domain.SessionState, error) {
	for attempt := 0; attempt < constant.CreateSessionMaxAttempts; attempt++ {
		code, err := generateAccessCode()
		if err != nil {
			return nil, errors.Wrap(err, "session: failed to generate access code")
		}

		state := &domain.SessionState{
			Session: domain.Session{
				ID:         uuid.NewString(),
				AccessCode: code,
				Status:     domain.StatusWaiting,
				CreatedAt:  time.Now().UTC(),
			},
		}

		err = rs.store.Create(ctx, state)
		if err == nil {
			rs.logger.Infof("session created with code %s", code)
			return state, nil
		}
		if errors.Is(err, constant.DuplicateAccessCodeErr) {
			rs.logger.Warnf("access code collision on %s, retrying", code)
			continue
		}
		return nil, errors.Wrap(err, "session: failed to create session")
	}

	return nil, errors.New("session: exhausted access code generation attempts")
}

// Find looks a session up by access code, case-insensitively.
func (rs *registryService) Find(ctx context.Context, accessCode string) (*domain.SessionState, error) {
	code, err := NormalizeCode(accessCode)
	if err != nil {
		return nil, err
	}
	return rs.store.Load(ctx, code)
}

// End removes the session and discards its queue and rotation.
// Lifecycle-only change: viewers are not notified here; consumers that
// need a close event watch session status instead.
func (rs *registryService) End(ctx context.Context, accessCode string) error {
	code, err := NormalizeCode(accessCode)
	if err != nil {
		return err
	}
	if err := rs.store.Delete(ctx, code); err != nil {
		return err
	}
	rs.logger.Infof("session %s ended", code)
	return nil
}

// NormalizeCode upper-cases an access code and rejects malformed ones.
func NormalizeCode(accessCode string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(accessCode))
	if len(code) != constant.AccessCodeLength {
		return "", constant.InvalidIdentifierErr
	}
	for _, c := range code {
		if !strings.ContainsRune(constant.AccessCodeAlphabet, c) {
			return "", constant.InvalidIdentifierErr
		}
	}
	return code, nil
}

func generateAccessCode() (string, error) {
	buf := make([]byte, constant.AccessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := make([]byte, constant.AccessCodeLength)
	for i, b := range buf {
		code[i] = constant.AccessCodeAlphabet[int(b)%len(constant.AccessCodeAlphabet)]
	}
	return string(code), nil
}
