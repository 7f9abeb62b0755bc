package board

import (
	"errors"
	"testing"
)

func TestIndexOfIsBijection(t *testing.T) {
	l := DefaultLayout()
	seen := make(map[int]bool, l.TotalSpaces())

	for row := range l.Rows {
		for col := range l.Columns {
			idx := l.IndexOf(row, col)
			if !l.InRange(idx) {
				t.Fatalf("IndexOf(%d, %d) = %d, outside board", row, col, idx)
			}
			if seen[idx] {
				t.Fatalf("IndexOf(%d, %d) = %d already produced by another cell", row, col, idx)
			}
			seen[idx] = true

			// Decode by exhaustive search
			found := false
			for r := range l.Rows {
				for c := range l.Columns {
					if l.IndexOf(r, c) == idx {
						if r != row || c != col {
							t.Errorf("index %d decodes to (%d, %d), want (%d, %d)", idx, r, c, row, col)
						}
						found = true
					}
				}
			}
			if !found {
				t.Errorf("index %d not recovered", idx)
			}
		}
	}

	if len(seen) != l.TotalSpaces() {
		t.Errorf("expected %d distinct indices, got %d", l.TotalSpaces(), len(seen))
	}
}

func TestCoordsInvertsIndexOf(t *testing.T) {
	layouts := []Layout{DefaultLayout(), {Rows: 1, Columns: 5}, {Rows: 5, Columns: 3}, {Rows: 4, Columns: 4}}

	for _, l := range layouts {
		for idx := range l.TotalSpaces() {
			row, col := l.Coords(idx)
			if !l.Contains(row, col) {
				t.Fatalf("%dx%d: Coords(%d) = (%d, %d) outside grid", l.Rows, l.Columns, idx, row, col)
			}
			if got := l.IndexOf(row, col); got != idx {
				t.Errorf("%dx%d: IndexOf(Coords(%d)) = %d", l.Rows, l.Columns, idx, got)
			}
		}
	}
}

func TestSerpentinePath(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		row, col int
		want     int
	}{
		{5, 7, 0},  // start: bottom row, right edge
		{5, 0, 7},  // bottom row runs right to left
		{4, 0, 8},  // second row starts on the left
		{4, 7, 15}, // and runs left to right
		{3, 7, 16},
		{0, 0, 40}, // top row runs left to right
		{0, 7, 47}, // final space
		{0, 6, 46},
	}

	for _, tt := range tests {
		if got := l.IndexOf(tt.row, tt.col); got != tt.want {
			t.Errorf("IndexOf(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}

	if l.Start() != 0 || l.Final() != 47 {
		t.Errorf("Start/Final = %d/%d, want 0/47", l.Start(), l.Final())
	}
}

func TestDefaultSpaces(t *testing.T) {
	b := Default()
	s := b.Spaces

	if s.Total() != 48 {
		t.Fatalf("Total() = %d, want 48", s.Total())
	}

	remaps := map[int]int{7: 23, 10: 27, 34: 44, 15: 3, 33: 18, 42: 22}
	for from, to := range remaps {
		got, ok := s.RemapOf(from)
		if !ok || got != to {
			t.Errorf("RemapOf(%d) = %d, %v; want %d, true", from, got, ok, to)
		}
	}
	if _, ok := s.RemapOf(23); ok {
		t.Error("space 23 should not remap")
	}
	if got := len(s.Remaps()); got != len(remaps) {
		t.Errorf("Remaps() returned %d entries, want %d", got, len(remaps))
	}

	v, ok := s.VerseAt(4)
	if !ok || v != "Los dados ruedan y escapan a tu mano" {
		t.Errorf("VerseAt(4) = %q, %v", v, ok)
	}
	if _, ok := s.VerseAt(23); ok {
		t.Error("space 23 should carry no verse")
	}
	if got := len(s.VerseSpaces()); got != 16 {
		t.Errorf("VerseSpaces() returned %d spaces, want 16", got)
	}

	if len(s.Chains()) != 0 {
		t.Errorf("default board has chained remaps: %v", s.Chains())
	}

	if s.KindOf(7) != KindLadder || s.KindOf(15) != KindSnake || s.KindOf(4) != KindPlain {
		t.Error("KindOf misclassified default spaces")
	}
}

func TestLookupsOutOfRange(t *testing.T) {
	s := Default().Spaces

	for _, idx := range []int{-1, 48, 1000} {
		if _, ok := s.VerseAt(idx); ok {
			t.Errorf("VerseAt(%d) should report no verse", idx)
		}
		if to, ok := s.RemapOf(idx); ok || to != None {
			t.Errorf("RemapOf(%d) = %d, %v; want None, false", idx, to, ok)
		}
	}
}

func TestNewSpacesValidation(t *testing.T) {
	tests := []struct {
		name    string
		verses  map[int]string
		ladders []Remap
		snakes  []Remap
	}{
		{name: "verse out of range", verses: map[int]string{48: "x"}},
		{name: "empty verse", verses: map[int]string{3: ""}},
		{name: "ladder backwards", ladders: []Remap{{From: 20, To: 5}}},
		{name: "snake forwards", snakes: []Remap{{From: 5, To: 20}}},
		{name: "remap onto itself", ladders: []Remap{{From: 5, To: 5}}},
		{name: "remap from start", ladders: []Remap{{From: 0, To: 5}}},
		{name: "remap from final", snakes: []Remap{{From: 47, To: 5}}},
		{name: "destination out of range", ladders: []Remap{{From: 5, To: 60}}},
		{name: "ladder and snake on same space", ladders: []Remap{{From: 20, To: 30}}, snakes: []Remap{{From: 20, To: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpaces(48, tt.verses, tt.ladders, tt.snakes)
			if !errors.Is(err, ErrInvalidSpaces) {
				t.Errorf("NewSpaces() error = %v, want ErrInvalidSpaces", err)
			}
		})
	}
}

func TestChainsReported(t *testing.T) {
	s, err := NewSpaces(48, nil, []Remap{{From: 5, To: 15}}, []Remap{{From: 15, To: 3}})
	if err != nil {
		t.Fatalf("NewSpaces() failed: %v", err)
	}

	chains := s.Chains()
	if len(chains) != 1 || chains[0] != (Remap{From: 5, To: 15}) {
		t.Errorf("Chains() = %v, want [{5 15}]", chains)
	}
}
