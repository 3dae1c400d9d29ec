package chat

import (
	"context"
	"encoding/json"
	"sync"
)

// Store persists sessions between turns. TryLock marks a session busy while
// one turn is being processed so a second concurrent action is rejected
// instead of interleaving messages.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	TryLock(ctx context.Context, id string) (bool, error)
	Unlock(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory. Used in tests and when no
// Redis address is configured.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
	locks    map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]byte),
		locks:    make(map[string]struct{}),
	}
}

func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	return m.Save(ctx, s)
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = data
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	delete(m.locks, id)
	return nil
}

func (m *MemoryStore) TryLock(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.locks[id]; busy {
		return false, nil
	}
	m.locks[id] = struct{}{}
	return true, nil
}

func (m *MemoryStore) Unlock(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, id)
	return nil
}
