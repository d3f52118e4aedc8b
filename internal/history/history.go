// Package history keeps an in-memory ring of recent analysis results.
// Persistence is deliberately out of scope; the ring only serves the
// current process (interactive sessions and batch summaries).
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultCapacity is how many analyses are retained by default.
const DefaultCapacity = 10

// Entry is one retained analysis.
type Entry struct {
	ID        string            `json:"id"`
	Filename  string            `json:"filename"`
	Timestamp time.Time         `json:"timestamp"`
	Report    types.ScoreReport `json:"report"`
}

// Store is a fixed-capacity ring of analysis entries, oldest evicted
// first. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

// NewStore creates a store with the given capacity; non-positive values
// fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Add retains a report under the given filename and returns the entry ID.
func (s *Store) Add(filename string, report types.ScoreReport) string {
	entry := Entry{
		ID:        uuid.NewString(),
		Filename:  filename,
		Timestamp: time.Now().UTC(),
		Report:    report,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
	return entry.ID
}

// Recent returns the retained entries, newest last.
func (s *Store) Recent() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear drops all retained entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
