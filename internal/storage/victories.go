package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/serpientes/internal/game"
)

// VictoryEntry is a finished game as stored in the history.
type VictoryEntry struct {
	ID        int64
	GameID    uuid.UUID
	Player    string
	Rolls     int
	Verses    []string
	CreatedAt time.Time
}

// RecordVictory stores a finished game. Returns the ID of the inserted record.
func (s *Store) RecordVictory(ctx context.Context, v game.Victory) (int64, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.FinishedAt.IsZero() {
		v.FinishedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO victories (game_id, player, rolls, verses, created_at) VALUES (?, ?, ?, ?, ?)",
		v.ID.String(), v.Player, v.Rolls, EncodeVerses(v.Verses), v.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save victory: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentVictories returns the latest finished games, newest first.
// An empty player returns every player's games.
func (s *Store) RecentVictories(ctx context.Context, player string, limit int) ([]VictoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game_id, player, rolls, verses, created_at
		 FROM victories
		 WHERE ? = '' OR player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query victories: %w", err)
	}
	defer rows.Close()

	var entries []VictoryEntry
	for rows.Next() {
		var (
			e         VictoryEntry
			gameID    string
			verses    string
			createdAt any
		)
		if err := rows.Scan(&e.ID, &gameID, &e.Player, &e.Rolls, &verses, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if e.GameID, err = uuid.Parse(gameID); err != nil {
			return nil, fmt.Errorf("storage: bad game id %q: %w", gameID, err)
		}
		if e.Verses, err = DecodeVerses(verses); err != nil {
			return nil, fmt.Errorf("storage: victory %s: %w", gameID, err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// VictoryCount returns how many games player has won. An empty player counts everyone.
func (s *Store) VictoryCount(ctx context.Context, player string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM victories WHERE ? = '' OR player = ?",
		player, player,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count victories: %w", err)
	}
	return n, nil
}
