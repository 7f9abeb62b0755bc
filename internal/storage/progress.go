package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/vovakirdan/serpientes/internal/game"
)

// Progress keys, one row per player and key.
const (
	keyPosition = "playerPosition"
	keyVerses   = "collectedVerses"
	keyRolls    = "rollCount"
)

// Progress is the persistence of a single player. It implements
// game.Persistence and game.VictoryRecorder.
type Progress struct {
	store  *Store
	player string
}

// Progress returns the persistence for player.
func (s *Store) Progress(player string) *Progress {
	return &Progress{store: s, player: player}
}

// Player returns the player this progress belongs to.
func (p *Progress) Player() string {
	return p.player
}

// Load reads the player's saved state. A player without saved progress gets a fresh game.
func (p *Progress) Load(ctx context.Context) (game.State, error) {
	rows, err := p.store.db.QueryContext(ctx,
		"SELECT name, value FROM progress WHERE player = ?",
		p.player,
	)
	if err != nil {
		return game.State{}, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 3)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return game.State{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		values[name] = value
	}
	if err := rows.Err(); err != nil {
		return game.State{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	st := game.NewState()
	if raw, ok := values[keyPosition]; ok {
		pos, err := strconv.Atoi(raw)
		if err != nil {
			return game.State{}, fmt.Errorf("%w: position %q", game.ErrCorruptState, raw)
		}
		st.Position = pos
	}
	if raw, ok := values[keyVerses]; ok {
		verses, err := DecodeVerses(raw)
		if err != nil {
			return game.State{}, err
		}
		st.Verses = verses
	}
	if raw, ok := values[keyRolls]; ok {
		rolls, err := strconv.Atoi(raw)
		if err != nil {
			return game.State{}, fmt.Errorf("%w: roll count %q", game.ErrCorruptState, raw)
		}
		st.Rolls = rolls
	}
	return st, nil
}

// Save writes every key in one transaction.
func (p *Progress) Save(ctx context.Context, st game.State) error {
	tx, err := p.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsert(ctx, tx, p.player, keyPosition, strconv.Itoa(st.Position)); err != nil {
		return err
	}
	if err := upsert(ctx, tx, p.player, keyVerses, EncodeVerses(st.Verses)); err != nil {
		return err
	}
	if err := upsert(ctx, tx, p.player, keyRolls, strconv.Itoa(st.Rolls)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return nil
}

// RecordVictory adds a finished game to the history.
func (p *Progress) RecordVictory(ctx context.Context, v game.Victory) error {
	if v.Player == "" {
		v.Player = p.player
	}
	_, err := p.store.RecordVictory(ctx, v)
	return err
}

func upsert(ctx context.Context, tx *sql.Tx, player, name, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO progress (player, name, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		player, name, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", name, err)
	}
	return nil
}

// ClearProgress deletes the saved progress of player.
func (s *Store) ClearProgress(ctx context.Context, player string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM progress WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// Players lists every player with saved progress, sorted by name.
func (s *Store) Players(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT player FROM progress ORDER BY player")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}

var (
	_ game.Persistence     = (*Progress)(nil)
	_ game.VictoryRecorder = (*Progress)(nil)
)
