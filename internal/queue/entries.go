package queue

import "queueup/karaoke-backend/internal/domain"

// Append adds an entry at the tail, preserving insertion order.
func Append(entries []domain.QueueEntry, e domain.QueueEntry) []domain.QueueEntry {
	return append(entries, e)
}

// Remove deletes the entry with the given id. The second return is false
// when no entry matched; the input is returned unchanged in that case.
func Remove(entries []domain.QueueEntry, entryID string) ([]domain.QueueEntry, domain.QueueEntry, bool) {
	for i, e := range entries {
		if e.ID == entryID {
			out := append(entries[:i:i], entries[i+1:]...)
			return out, e, true
		}
	}
	return entries, domain.QueueEntry{}, false
}
