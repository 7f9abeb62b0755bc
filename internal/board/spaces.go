package board

import (
	"errors"
	"fmt"
)

// None marks a space without a remap destination.
const None = -1

// ErrInvalidSpaces is returned when a verse or remap table does not fit the board.
var ErrInvalidSpaces = errors.New("board: invalid special spaces")

// Kind classifies a space for display purposes.
type Kind int

const (
	KindPlain Kind = iota
	KindLadder
	KindSnake
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLadder:
		return "ladder"
	case KindSnake:
		return "snake"
	default:
		return "plain"
	}
}

// Remap is a single snake or ladder.
type Remap struct {
	From int
	To   int
}

// Ladder reports whether the remap moves the player forward.
func (r Remap) Ladder() bool {
	return r.To > r.From
}

// Spaces holds the verse and remap tables of a board.
// Both are fixed-size slices indexed by space; lookups never allocate.
// Spaces is immutable after construction and safe to share between engines.
type Spaces struct {
	verses []string
	remap  []int
}

// NewSpaces builds the tables for a board of total spaces.
//
// It rejects indices outside the board, empty verses, remaps onto the same space,
// remaps from the start or final space, and sources that appear in both ladders and
// snakes. Chained remaps (a destination that is also a source) are accepted; see Chains.
func NewSpaces(total int, verses map[int]string, ladders, snakes []Remap) (*Spaces, error) {
	if total < 2 {
		return nil, fmt.Errorf("%w: board needs at least 2 spaces, got %d", ErrInvalidSpaces, total)
	}

	s := &Spaces{
		verses: make([]string, total),
		remap:  make([]int, total),
	}
	for i := range s.remap {
		s.remap[i] = None
	}

	for index, text := range verses {
		if index < 0 || index >= total {
			return nil, fmt.Errorf("%w: verse space %d outside 0..%d", ErrInvalidSpaces, index, total-1)
		}
		if text == "" {
			return nil, fmt.Errorf("%w: empty verse at space %d", ErrInvalidSpaces, index)
		}
		s.verses[index] = text
	}

	add := func(r Remap, wantLadder bool) error {
		kind := "snake"
		if wantLadder {
			kind = "ladder"
		}
		switch {
		case r.From <= 0 || r.From >= total-1:
			return fmt.Errorf("%w: %s source %d must be strictly between start and final space", ErrInvalidSpaces, kind, r.From)
		case r.To < 0 || r.To >= total:
			return fmt.Errorf("%w: %s destination %d outside 0..%d", ErrInvalidSpaces, kind, r.To, total-1)
		case r.From == r.To:
			return fmt.Errorf("%w: %s at %d points to itself", ErrInvalidSpaces, kind, r.From)
		case r.Ladder() != wantLadder:
			return fmt.Errorf("%w: %s %d->%d goes the wrong way", ErrInvalidSpaces, kind, r.From, r.To)
		case s.remap[r.From] != None:
			return fmt.Errorf("%w: space %d has more than one snake or ladder", ErrInvalidSpaces, r.From)
		}
		s.remap[r.From] = r.To
		return nil
	}

	for _, r := range ladders {
		if err := add(r, true); err != nil {
			return nil, err
		}
	}
	for _, r := range snakes {
		if err := add(r, false); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Total returns the number of spaces the tables were built for.
func (s *Spaces) Total() int {
	return len(s.remap)
}

// VerseAt returns the verse printed on a space, if any.
func (s *Spaces) VerseAt(index int) (string, bool) {
	if index < 0 || index >= len(s.verses) || s.verses[index] == "" {
		return "", false
	}
	return s.verses[index], true
}

// RemapOf returns where a snake or ladder on the space sends the player, if any.
func (s *Spaces) RemapOf(index int) (int, bool) {
	if index < 0 || index >= len(s.remap) || s.remap[index] == None {
		return None, false
	}
	return s.remap[index], true
}

// KindOf classifies the space.
func (s *Spaces) KindOf(index int) Kind {
	to, ok := s.RemapOf(index)
	switch {
	case !ok:
		return KindPlain
	case to > index:
		return KindLadder
	default:
		return KindSnake
	}
}

// Remaps returns every snake and ladder ordered by source space.
func (s *Spaces) Remaps() []Remap {
	var out []Remap
	for from, to := range s.remap {
		if to != None {
			out = append(out, Remap{From: from, To: to})
		}
	}
	return out
}

// VerseSpaces returns the indices that carry a verse, ascending.
func (s *Spaces) VerseSpaces() []int {
	var out []int
	for i, v := range s.verses {
		if v != "" {
			out = append(out, i)
		}
	}
	return out
}

// Chains returns the remaps whose destination is itself a remap source.
// The engine applies a single hop, so such a chain stops at the first destination.
func (s *Spaces) Chains() []Remap {
	var out []Remap
	for _, r := range s.Remaps() {
		if s.remap[r.To] != None {
			out = append(out, r)
		}
	}
	return out
}
