// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// State is lost when the process restarts. Concurrency-safe via RWMutex
// so a renderer goroutine may read while the loop writes.

package store

import (
	"context"
	"sync"
)

// Memory holds the best score in process memory.
type Memory struct {
	mu    sync.RWMutex // guards best and saves
	best  int
	saves int
}

// NewMemoryStore constructs a Memory store seeded with best.
func NewMemoryStore(best int) *Memory {
	return &Memory{best: best}
}

// Load returns the held score.
func (m *Memory) Load(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.best, nil
}

// Save replaces the held score.
func (m *Memory) Save(ctx context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = score
	m.saves++
	return nil
}

// Saves counts successful Save calls.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
