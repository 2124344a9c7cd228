package store

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
)

func newState(code string) *domain.SessionState {
	return &domain.SessionState{
		Session: domain.Session{ID: "id-" + code, AccessCode: code, Status: domain.StatusWaiting},
	}
}

func TestMemoryStore_CreateAndLoad(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, newState("ABC123")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := s.Load(ctx, "ABC123")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Session.AccessCode != "ABC123" {
		t.Errorf("expected code ABC123, got %s", got.Session.AccessCode)
	}
}

func TestMemoryStore_CreateDuplicateCode(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, newState("ABC123")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err := s.Create(ctx, newState("ABC123"))
	if !errors.Is(err, constant.DuplicateAccessCodeErr) {
		t.Errorf("expected duplicate code error, got %v", err)
	}
}

func TestMemoryStore_LoadUnknown(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Load(context.Background(), "NOPE00")
	if !errors.Is(err, constant.SessionNotFoundErr) {
		t.Errorf("expected session not found, got %v", err)
	}
}

func TestMemoryStore_SaveUnknown(t *testing.T) {
	s := NewMemoryStore()
	err := s.Save(context.Background(), newState("NOPE00"))
	if !errors.Is(err, constant.SessionNotFoundErr) {
		t.Errorf("expected session not found, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, newState("ABC123")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := s.Delete(ctx, "ABC123"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Load(ctx, "ABC123"); !errors.Is(err, constant.SessionNotFoundErr) {
		t.Errorf("expected session gone, got %v", err)
	}
	if err := s.Delete(ctx, "ABC123"); !errors.Is(err, constant.SessionNotFoundErr) {
		t.Errorf("expected delete of unknown code to fail, got %v", err)
	}
}

// Loaded state must not alias the stored copy.
func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	state := newState("ABC123")
	state.Entries = []domain.QueueEntry{{ID: "e1", ContributorID: "u1"}}
	if err := s.Create(ctx, state); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, _ := s.Load(ctx, "ABC123")
	first.Entries[0].ID = "mutated"
	first.Rotation.Order = append(first.Rotation.Order, "u9")

	second, _ := s.Load(ctx, "ABC123")
	if second.Entries[0].ID != "e1" {
		t.Errorf("stored entry mutated through loaded copy")
	}
	if len(second.Rotation.Order) != 0 {
		t.Errorf("stored rotation mutated through loaded copy")
	}
}
