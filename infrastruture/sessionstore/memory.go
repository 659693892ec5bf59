package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-ball/game"
	"github.com/beka-birhanu/maze-ball/service/i"
	"github.com/google/uuid"
)

var _ i.SessionStore = &MemorySessionStore{}

type memoryEntry struct {
	session   *game.Session
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory with a TTL.
type MemorySessionStore struct {
	sessions map[uuid.UUID]memoryEntry
	ttl      time.Duration
	now      func() time.Time
	sync.RWMutex
}

// NewMemorySessionStore initializes a MemorySessionStore whose entries expire ttl after their last write.
func NewMemorySessionStore(ttl time.Duration) (*MemorySessionStore, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &MemorySessionStore{
		sessions: make(map[uuid.UUID]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Save stores a copy of s and drops expired sessions.
func (m *MemorySessionStore) Save(_ context.Context, s *game.Session) error {
	m.Lock()
	defer m.Unlock()

	now := m.now()
	for id, e := range m.sessions {
		if now.After(e.expiresAt) {
			delete(m.sessions, id)
		}
	}
	m.sessions[s.ID] = memoryEntry{session: s.Clone(), expiresAt: now.Add(m.ttl)}
	return nil
}

// ByID returns a copy of a live session.
func (m *MemorySessionStore) ByID(_ context.Context, id uuid.UUID) (*game.Session, error) {
	m.RLock()
	defer m.RUnlock()

	e, ok := m.sessions[id]
	if !ok || m.now().After(e.expiresAt) {
		return nil, i.ErrSessionNotFound
	}
	return e.session.Clone(), nil
}

// Update applies fn under the store lock and saves the result.
func (m *MemorySessionStore) Update(_ context.Context, id uuid.UUID, fn func(*game.Session) error) (*game.Session, error) {
	m.Lock()
	defer m.Unlock()

	now := m.now()
	e, ok := m.sessions[id]
	if !ok || now.After(e.expiresAt) {
		return nil, i.ErrSessionNotFound
	}

	updated := e.session.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	m.sessions[id] = memoryEntry{session: updated, expiresAt: now.Add(m.ttl)}
	return updated.Clone(), nil
}

// Delete removes a session.
func (m *MemorySessionStore) Delete(_ context.Context, id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	delete(m.sessions, id)
	return nil
}
