package booking

import (
	"context"
	"sync"
	"time"
)

// Store keeps open wizard sessions until they are closed or expire.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore is a process-local Store used when Redis is not configured.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryStore creates a store whose entries expire ttl after their last save.
// A non-positive ttl keeps entries until deleted.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	session := entry.session
	return &session, nil
}

func (m *MemoryStore) Save(_ context.Context, session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{session: *session}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.sessions[session.ID] = entry
	m.evictExpiredLocked()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored sessions, expired ones included until swept.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *MemoryStore) evictExpiredLocked() {
	now := m.now()
	for id, entry := range m.sessions {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
