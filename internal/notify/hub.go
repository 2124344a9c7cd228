package notify

import (
	"context"
	"sync"

	"queueup/karaoke-backend/internal/domain"
)

// Hub is an in-process fan-out of queue updates, keyed by access code.
// Each websocket connection subscribes to one session.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[uint64]chan domain.QueueUpdate
	nextID      uint64
	closed      bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[uint64]chan domain.QueueUpdate),
	}
}

// Subscribe returns a channel receiving updates for accessCode and an
// unsubscribe function. The channel is buffered to avoid blocking the
// publisher.
func (h *Hub) Subscribe(accessCode string) (<-chan domain.QueueUpdate, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan domain.QueueUpdate, 16)
	if h.closed {
		// shutting down: hand back a closed channel so the caller's
		// receive loop ends immediately
		close(ch)
		return ch, func() {}
	}
	id := h.nextID
	h.nextID++

	subs, ok := h.subscribers[accessCode]
	if !ok {
		subs = make(map[uint64]chan domain.QueueUpdate)
		h.subscribers[accessCode] = subs
	}
	subs[id] = ch

	unsub := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.subscribers[accessCode]; ok {
			if _, ok := subs[id]; ok {
				delete(subs, id)
				close(ch)
			}
			if len(subs) == 0 {
				delete(h.subscribers, accessCode)
			}
		}
	}
	return ch, unsub
}

// Publish sends the update to every subscriber of its session.
// Non-blocking: a subscriber with a full buffer misses this update.
func (h *Hub) Publish(_ context.Context, update domain.QueueUpdate) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers[update.AccessCode] {
		select {
		case ch <- update:
		default:
			// subscriber buffer full, drop update
		}
	}
}

// Close shuts down the hub and closes all subscriber channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for code, subs := range h.subscribers {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
		delete(h.subscribers, code)
	}
}
