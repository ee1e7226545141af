package memory

import (
	"context"
	"sync"

	"taskhub/internal/audit"
)

const defaultCapacity = 1000

// InMemoryStore keeps the most recent audit records in a bounded ring.
// When full, the oldest record is overwritten.
type InMemoryStore struct {
	mu       sync.RWMutex
	records  []audit.Record
	head     int // next write position
	count    int
	capacity int
}

func NewInMemoryStore(capacity int) *InMemoryStore {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &InMemoryStore{
		records:  make([]audit.Record, capacity),
		capacity: capacity,
	}
}

func (s *InMemoryStore) Write(_ context.Context, record audit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[s.head] = record
	s.head = (s.head + 1) % s.capacity
	if s.count < s.capacity {
		s.count++
	}
	return nil
}

// All returns every retained record, oldest first.
func (s *InMemoryStore) All() []audit.Record {
	return s.Recent(0)
}

// Recent returns up to limit of the newest records, oldest first.
// A limit <= 0 returns everything retained.
func (s *InMemoryStore) Recent(limit int) []audit.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.count
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]audit.Record, 0, n)
	start := (s.head - n + s.capacity) % s.capacity
	for i := 0; i < n; i++ {
		out = append(out, s.records[(start+i)%s.capacity])
	}
	return out
}

// ListRecent is Recent for callers that read through a context.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Record, error) {
	return s.Recent(limit), nil
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]audit.Record, s.capacity)
	s.head = 0
	s.count = 0
}
