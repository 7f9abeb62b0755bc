package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Persistence loads and saves a player's State.
//
// Load returns NewState when nothing was saved yet. A saved value that cannot be
// decoded is reported as an error wrapping ErrCorruptState; the engine then
// starts over instead of failing.
type Persistence interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, s State) error
}

// Victory describes a finished game.
type Victory struct {
	ID         uuid.UUID
	Player     string
	Rolls      int
	Verses     []string
	FinishedAt time.Time
}

// VictoryRecorder keeps a history of finished games.
type VictoryRecorder interface {
	RecordVictory(ctx context.Context, v Victory) error
}

// MemoryStore keeps state in memory. It is used when no database is available
// and in tests.
type MemoryStore struct {
	mu        sync.Mutex
	state     *State
	saves     int
	victories []Victory
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the saved state or a fresh one.
func (m *MemoryStore) Load(_ context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return NewState(), nil
	}
	return m.state.Clone(), nil
}

// Save stores a copy of s.
func (m *MemoryStore) Save(_ context.Context, s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := s.Clone()
	m.state = &c
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// RecordVictory appends v to the in-memory history.
func (m *MemoryStore) RecordVictory(_ context.Context, v Victory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.victories = append(m.victories, v)
	return nil
}

// Victories returns the recorded history.
func (m *MemoryStore) Victories() []Victory {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Victory, len(m.victories))
	copy(out, m.victories)
	return out
}

var (
	_ Persistence     = (*MemoryStore)(nil)
	_ VictoryRecorder = (*MemoryStore)(nil)
)
