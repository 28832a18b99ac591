package storage

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SamuelLeutner/student-risk-dashboard/dashboard"
)

type entry struct {
	page     *dashboard.Page
	lastSeen time.Time
}

// MemoryStore is a thread-safe in-memory PageStore. Entries idle for longer
// than ttl are evicted on the next write.
type MemoryStore struct {
	data map[string]*entry
	ttl  time.Duration
	now  func() time.Time
	mu   sync.RWMutex
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *MemoryStore) Save(page *dashboard.Page) (string, error) {
	if page == nil {
		return "", errors.New("page must not be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep()
	id := uuid.NewString()
	m.data[id] = &entry{page: page, lastSeen: m.now()}
	return id, nil
}

func (m *MemoryStore) Get(id string) (*dashboard.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.data[id]
	if !exists {
		return nil, ErrPageNotFound
	}
	if m.expired(e) {
		delete(m.data, id)
		return nil, ErrPageNotFound
	}
	e.lastSeen = m.now()
	return e.page, nil
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[id]; !exists {
		return ErrPageNotFound
	}
	delete(m.data, id)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MemoryStore) expired(e *entry) bool {
	return m.ttl > 0 && m.now().Sub(e.lastSeen) > m.ttl
}

func (m *MemoryStore) sweep() {
	evicted := 0
	for id, e := range m.data {
		if m.expired(e) {
			delete(m.data, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Printf("Evicted %d expired page views", evicted)
	}
}
