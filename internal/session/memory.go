package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. Expired sessions are dropped
// lazily on access.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*State
	busy     map[string]string // session ID to owner token
	ttl      time.Duration
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store whose sessions expire ttl after their last
// save. A zero ttl keeps sessions forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*State),
		busy:     make(map[string]string),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context) (*State, error) {
	s := New(m.now())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return s, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.lookup(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, s *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lookup(s.ID); !ok {
		return ErrNotFound
	}
	stored := s.Clone()
	stored.UpdatedAt = m.now()
	m.sessions[s.ID] = stored
	return nil
}

func (m *MemoryStore) Acquire(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lookup(id); !ok {
		return "", ErrNotFound
	}
	if _, ok := m.busy[id]; ok {
		return "", ErrBusy
	}
	token := uuid.NewString()
	m.busy[id] = token
	return token, nil
}

func (m *MemoryStore) Release(_ context.Context, id, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy[id] == token {
		delete(m.busy, id)
	}
	return nil
}

// lookup must be called with mu held.
func (m *MemoryStore) lookup(id string) (*State, bool) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && m.now().Sub(s.UpdatedAt) > m.ttl {
		delete(m.sessions, id)
		delete(m.busy, id)
		return nil, false
	}
	return s, true
}
