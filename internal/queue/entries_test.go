package queue

import (
	"testing"

	"queueup/karaoke-backend/internal/domain"
)

func TestRemove(t *testing.T) {
	entries := []domain.QueueEntry{
		entry("a1", "a", 0), entry("b1", "b", 1), entry("a2", "a", 2),
	}

	out, removed, ok := Remove(entries, "b1")
	if !ok {
		t.Fatal("expected removal to succeed")
	}
	if removed.ID != "b1" {
		t.Errorf("expected removed entry b1, got %s", removed.ID)
	}
	assertOrder(t, out, "a1", "a2")
}

func TestRemove_MissingEntry(t *testing.T) {
	entries := []domain.QueueEntry{entry("a1", "a", 0)}

	out, _, ok := Remove(entries, "nope")
	if ok {
		t.Fatal("expected removal to report missing entry")
	}
	assertOrder(t, out, "a1")
}
