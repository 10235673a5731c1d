// internal/store/store.go
//
// Persistence of the all-time best score.
// The only persisted state is one integer. Backends:
//   - memory: process-local, used by tests and when persistence is disabled.
//   - file:   plain decimal text (default, max_score.txt).
//   - sqlite: single-row table, for installs that already keep a database.
//
// Error contract:
//   - Missing data is not an error: Load returns (0, nil).
//   - Corrupt data wraps ErrRead; callers recover by using 0.
//   - Failed writes wrap ErrWrite; callers surface a warning and keep going.

package store

import (
	"context"
	"errors"
)

var (
	ErrRead  = errors.New("best score: read failed")
	ErrWrite = errors.New("best score: write failed")
)

// Store defines the persistence interface for the best score.
type Store interface {
	// Load returns the stored best score, 0 if nothing was stored yet.
	Load(ctx context.Context) (int, error)

	// Save replaces the stored best score.
	Save(ctx context.Context, score int) error
}
