// Package game implements the Serpientes & Poemas rules: dice, stepping along the
// board, snakes and ladders, verse collection and victory. Resolve is a pure
// function over a State; Engine wraps it with the roll guard, persistence and
// narration used by the front ends.
package game

import (
	"fmt"
	"slices"
)

// State is the persisted progress of one player.
type State struct {
	Position int
	// Verses are the collected verses in the order they were found, without duplicates.
	Verses []string
	// Rolls counts the rolls of the game so far.
	Rolls int
}

// NewState returns the state of a fresh game: on the start space, nothing collected.
func NewState() State {
	return State{Position: 0, Verses: []string{}}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	verses := make([]string, len(s.Verses))
	copy(verses, s.Verses)
	return State{Position: s.Position, Verses: verses, Rolls: s.Rolls}
}

// HasVerse reports whether verse was already collected.
func (s State) HasVerse(verse string) bool {
	return slices.Contains(s.Verses, verse)
}

// collect appends verse unless it is already present. Reports whether it was added.
func (s *State) collect(verse string) bool {
	if s.HasVerse(verse) {
		return false
	}
	s.Verses = append(s.Verses, verse)
	return true
}

// Validate checks the invariants a loaded state must satisfy on a board with
// total spaces. A failure is reported as ErrCorruptState.
func (s State) Validate(total int) error {
	if s.Position < 0 || s.Position >= total {
		return fmt.Errorf("%w: position %d outside 0..%d", ErrCorruptState, s.Position, total-1)
	}
	if s.Rolls < 0 {
		return fmt.Errorf("%w: negative roll count %d", ErrCorruptState, s.Rolls)
	}
	seen := make(map[string]bool, len(s.Verses))
	for _, v := range s.Verses {
		if v == "" {
			return fmt.Errorf("%w: empty verse", ErrCorruptState)
		}
		if seen[v] {
			return fmt.Errorf("%w: verse %q collected twice", ErrCorruptState, v)
		}
		seen[v] = true
	}
	return nil
}
