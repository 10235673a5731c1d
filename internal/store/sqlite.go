package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLite keeps the best score in the single-row best_score table created by
// the migrations under assets/sql.
type SQLite struct{ db *sql.DB }

func NewSQLiteStore(db *sql.DB) *SQLite { return &SQLite{db: db} }

func (s *SQLite) Load(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT score FROM best_score WHERE id=1`).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative score %d", ErrRead, n)
	}
	return n, nil
}

func (s *SQLite) Save(ctx context.Context, score int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO best_score (id, score, updated_at) VALUES (1, ?, ?)
        ON CONFLICT(id) DO UPDATE SET score=excluded.score, updated_at=excluded.updated_at`,
		score, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
