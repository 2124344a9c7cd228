package store

import (
	"context"
	"sync"

	"queueup/karaoke-backend/internal/constant"
	"queueup/karaoke-backend/internal/domain"
)

// MemoryStore keeps session state in process memory. Used for tests and
// single-node deployments; restarts lose everything.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*domain.SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*domain.SessionState)}
}

func (s *MemoryStore) Create(_ context.Context, state *domain.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[state.Session.AccessCode]; ok {
		return constant.DuplicateAccessCodeErr
	}
	s.data[state.Session.AccessCode] = state.Clone()
	return nil
}

func (s *MemoryStore) Load(_ context.Context, accessCode string) (*domain.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[accessCode]
	if !ok {
		return nil, constant.SessionNotFoundErr
	}
	// Copies both ways so callers never alias stored state.
	return state.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, state *domain.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[state.Session.AccessCode]; !ok {
		return constant.SessionNotFoundErr
	}
	s.data[state.Session.AccessCode] = state.Clone()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, accessCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[accessCode]; !ok {
		return constant.SessionNotFoundErr
	}
	delete(s.data, accessCode)
	return nil
}
