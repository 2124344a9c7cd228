package session

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
	"queueup/karaoke-backend/internal/store"
)

func newRegistry() *registryService {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewRegistryService(store.NewMemoryStore(), logger)
}

func TestCreate_GeneratesValidCode(t *testing.T) {
	rs := newRegistry()

	state, err := rs.Create(context.Background())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	code := state.Session.AccessCode
	if len(code) != constant.AccessCodeLength {
		t.Errorf("expected %d-char code, got %q", constant.AccessCodeLength, code)
	}
	for _, c := range code {
		if !strings.ContainsRune(constant.AccessCodeAlphabet, c) {
			t.Errorf("code %q contains invalid char %q", code, c)
		}
	}
	if state.Session.Status != domain.StatusWaiting {
		t.Errorf("expected waiting status, got %s", state.Session.Status)
	}
	if len(state.Entries) != 0 || len(state.Rotation.Order) != 0 {
		t.Error("expected empty queue and rotation on a fresh session")
	}
}

func TestCreate_RetriesOnCollision(t *testing.T) {
	rs := newRegistry()
	cs := &collidingStore{SessionStore: rs.store, collisions: 2}
	rs.store = cs

	if _, err := rs.Create(context.Background()); err != nil {
		t.Fatalf("create failed despite retries: %v", err)
	}
	if cs.attempts != 3 {
		t.Errorf("expected 3 create attempts, got %d", cs.attempts)
	}
}

// collidingStore reports a duplicate code for the first N creates.
type collidingStore struct {
	domain.SessionStore
	collisions int
	attempts   int
}

func (c *collidingStore) Create(ctx context.Context, state *domain.SessionState) error {
	c.attempts++
	if c.attempts <= c.collisions {
		return constant.DuplicateAccessCodeErr
	}
	return c.SessionStore.Create(ctx, state)
}

func TestFind_CaseInsensitive(t *testing.T) {
	rs := newRegistry()
	ctx := context.Background()

	state, err := rs.Create(ctx)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := rs.Find(ctx, strings.ToLower(state.Session.AccessCode))
	if err != nil {
		t.Fatalf("case-insensitive find failed: %v", err)
	}
	if got.Session.ID != state.Session.ID {
		t.Errorf("found wrong session: %s", got.Session.ID)
	}
}

func TestFind_UnknownCode(t *testing.T) {
	rs := newRegistry()

	_, err := rs.Find(context.Background(), "ZZZZZZ")
	if !errors.Is(err, constant.SessionNotFoundErr) {
		t.Errorf("expected session not found, got %v", err)
	}
}

func TestFind_MalformedCode(t *testing.T) {
	rs := newRegistry()

	for _, code := range []string{"", "AB", "ABCDEFG", "ABC!23"} {
		_, err := rs.Find(context.Background(), code)
		if !errors.Is(err, constant.InvalidIdentifierErr) {
			t.Errorf("code %q: expected invalid identifier, got %v", code, err)
		}
	}
}

func TestEnd_RemovesSession(t *testing.T) {
	rs := newRegistry()
	ctx := context.Background()

	state, err := rs.Create(ctx)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := rs.End(ctx, state.Session.AccessCode); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if _, err := rs.Find(ctx, state.Session.AccessCode); !errors.Is(err, constant.SessionNotFoundErr) {
		t.Errorf("expected session gone after end, got %v", err)
	}
	if err := rs.End(ctx, state.Session.AccessCode); !errors.Is(err, constant.SessionNotFoundErr) {
		t.Errorf("expected ending twice to fail, got %v", err)
	}
}
