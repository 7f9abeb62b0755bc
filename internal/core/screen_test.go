package core

import (
	"strings"
	"testing"
)

func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0) != blank || s.GetCell(100, 0) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawGrid(Grid{Rows: 1, Cols: 1, CellW: 3, CellH: 3}, ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(20, 2)
	s.DrawTextColor(1, 0, "año ñu", ColorYellow)

	if got := strings.TrimRight(rows(s)[0], " "); got != " año ñu" {
		t.Errorf("row 0 = %q, expected each rune in its own cell", got)
	}
	if c := s.GetCell(3, 0); c.Rune != 'ñ' || c.Color != ColorYellow {
		t.Errorf("cell 3 = %+v", c)
	}

	// Text should be clipped at boundaries
	s.DrawTextColor(18, 1, "Hello", ColorDefault)
	if s.GetCell(18, 1).Rune != 'H' || s.GetCell(19, 1).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawGrid(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawGrid(Grid{Rows: 2, Cols: 2, CellW: 3, CellH: 2}, ColorGray)

	want := []string{
		"┌──┬──┐",
		"│  │  │",
		"├──┼──┤",
		"│  │  │",
		"└──┴──┘",
	}
	got := rows(s)
	for y, row := range want {
		if got[y] != row {
			t.Errorf("row %d = %q, expected %q", y, got[y], row)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("grid should carry its color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColor(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColor(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionRoll.String() != "Roll" || ActionQuit.String() != "Quit" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
