// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is the default word catalog: the embedded or file word list is
// loaded into it at startup.
//
// Characteristics:
//   - Stores words.Entry values in insertion order (selection order is stable).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Duplicate entries are ignored on Add.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/hangman/internal/words"
)

// Store is a word catalog that can also be filled.
// Implementations may be backed by memory (this package) or SQLite.
type Store interface {
	words.Catalog

	// Add inserts entries, ignoring ones already present.
	Add(ctx context.Context, entries ...words.Entry) error

	// Count reports the number of stored entries.
	Count(ctx context.Context) (int, error)
}

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex             // guards entries and seen
	entries []words.Entry            // insertion order
	seen    map[words.Entry]struct{} // dedup index
}

// NewMemoryStore constructs a new in-memory Store holding entries.
func NewMemoryStore(entries ...words.Entry) Store {
	m := &memory{seen: make(map[words.Entry]struct{})}
	_ = m.Add(context.Background(), entries...)
	return m
}

// Add appends entries not yet stored.
func (m *memory) Add(ctx context.Context, entries ...words.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		if _, ok := m.seen[e]; ok {
			continue
		}
		m.seen[e] = struct{}{}
		m.entries = append(m.entries, e)
	}
	return nil
}

// Candidates returns a copy of the entries matching f.
func (m *memory) Candidates(ctx context.Context, f words.Filter) ([]words.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []words.Entry
	for _, e := range m.entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Count returns the number of stored entries.
func (m *memory) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries), nil
}
