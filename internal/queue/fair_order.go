package queue

import "queueup/karaoke-backend/internal/domain"

// ComputeFairOrder turns the raw insertion-ordered entries and the
// session's rotation into the playback order: a quantum-1 round-robin
// interleave, one song per contributor per sweep, starting at the
// rotation pointer so a mid-session recompute does not restart from the
// first contributor. The result is always a permutation of entries, and
// identical inputs always yield identical output.
func ComputeFairOrder(entries []domain.QueueEntry, rot domain.Rotation) domain.FairOrderSnapshot {
	if len(entries) == 0 {
		return domain.FairOrderSnapshot{Entries: []domain.QueueEntry{}}
	}

	// Per-contributor FIFO sub-queues, entries keeps insertion order.
	perUser := make(map[string][]domain.QueueEntry, len(rot.Order))
	var firstSeen []string
	for _, e := range entries {
		if _, ok := perUser[e.ContributorID]; !ok {
			firstSeen = append(firstSeen, e.ContributorID)
		}
		perUser[e.ContributorID] = append(perUser[e.ContributorID], e)
	}

	// Effective rotation: the session's order first, then any contributor
	// the rotation does not know about, in order of first appearance.
	// The fallback should not trigger when EnsureUser is called on every
	// add, but a snapshot must never drop entries.
	rotation := append([]string(nil), rot.Order...)
	known := make(map[string]bool, len(rotation))
	for _, id := range rotation {
		known[id] = true
	}
	for _, id := range firstSeen {
		if !known[id] {
			rotation = append(rotation, id)
		}
	}

	start := rot.Pointer
	if start < 0 || start >= len(rotation) {
		start = 0
	}

	result := make([]domain.QueueEntry, 0, len(entries))
	for len(result) < len(entries) {
		added := false
		for i := 0; i < len(rotation); i++ {
			uid := rotation[(start+i)%len(rotation)]
			q := perUser[uid]
			if len(q) == 0 {
				continue
			}
			result = append(result, q[0])
			perUser[uid] = q[1:]
			added = true
		}
		if !added {
			break
		}
	}

	snap := domain.FairOrderSnapshot{Entries: result}
	if len(result) > 0 {
		head := result[0]
		snap.NowPlaying = &head
	}
	return snap
}
