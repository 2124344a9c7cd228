package queue

import "queueup/karaoke-backend/internal/domain"

// Tracker mutates a session's rotation in place. All methods keep the
// pointer invariant: 0 when the order is empty, otherwise within
// [0, len(order)).
type Tracker struct {
	rot *domain.Rotation
}

func Track(rot *domain.Rotation) Tracker {
	return Tracker{rot: rot}
}

// EnsureUser gives userID a rotation slot if it does not have one yet.
// A newcomer is inserted immediately after whoever currently holds the
// turn, so they neither cut the current turn nor wait a full cycle.
func (t Tracker) EnsureUser(userID string) {
	r := t.rot
	for _, id := range r.Order {
		if id == userID {
			return
		}
	}

	if len(r.Order) == 0 {
		r.Order = []string{userID}
		r.Pointer = 0
		return
	}

	at := r.Pointer + 1 // wraps to len(order) when pointer is last
	r.Order = append(r.Order, "")
	copy(r.Order[at+1:], r.Order[at:])
	r.Order[at] = userID
}

// Advance moves the turn to the next slot, circularly.
func (t Tracker) Advance() {
	r := t.rot
	if len(r.Order) == 0 {
		return
	}
	r.Pointer = (r.Pointer + 1) % len(r.Order)
}

// AdvanceIfCurrent advances only when userID holds the current turn.
// Used when the turn holder's entry was just consumed.
func (t Tracker) AdvanceIfCurrent(userID string) {
	r := t.rot
	if len(r.Order) == 0 {
		return
	}
	if r.Order[r.Pointer] == userID {
		t.Advance()
	}
}

// Current reports who holds the turn, if anyone does.
func (t Tracker) Current() (string, bool) {
	r := t.rot
	if len(r.Order) == 0 {
		return "", false
	}
	return r.Order[r.Pointer], true
}
