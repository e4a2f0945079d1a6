package journal

import "sync"

const defaultMaxEntries = 100

// MemoryStore keeps order history in memory only.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	max     int
}

// NewMemoryStore creates an in-memory store bounded to the given number of
// entries; a non-positive max uses the default of 100.
func NewMemoryStore(max int) *MemoryStore {
	if max <= 0 {
		max = defaultMaxEntries
	}
	return &MemoryStore{max: max}
}

// Append records a completed order, evicting the oldest entry when full.
func (s *MemoryStore) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Prepend to keep most recent first.
	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}
	return nil
}

// Recent returns a copy of the stored entries, most recent first.
func (s *MemoryStore) Recent() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

var _ Store = (*MemoryStore)(nil)
