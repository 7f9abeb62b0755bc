// Package board describes the Serpientes & Poemas board: how grid cells map onto
// the linear path of spaces, and which spaces carry a verse, a ladder or a snake.
// It has no dependencies on the game engine or the terminal so it stays pure and
// easy to test.
package board

// Default board dimensions.
const (
	DefaultRows    = 6
	DefaultColumns = 8
)

// Layout maps grid coordinates to space indices along a serpentine path.
//
// Row 0 is the top of the grid and column 0 its left edge. The path starts at the
// bottom row, running right to left, turns upward and alternates direction on every
// row until it ends on the top row.
type Layout struct {
	Rows    int
	Columns int
}

// DefaultLayout returns the 6x8 layout used by the game.
func DefaultLayout() Layout {
	return Layout{Rows: DefaultRows, Columns: DefaultColumns}
}

// TotalSpaces returns the number of spaces on the path.
func (l Layout) TotalSpaces() int {
	return l.Rows * l.Columns
}

// Start returns the index of the first space.
func (l Layout) Start() int {
	return 0
}

// Final returns the index of the last space. Reaching it wins the game.
func (l Layout) Final() int {
	return l.TotalSpaces() - 1
}

// Contains reports whether (row, column) is a cell of the grid.
func (l Layout) Contains(row, column int) bool {
	return row >= 0 && row < l.Rows && column >= 0 && column < l.Columns
}

// InRange reports whether index is a valid space index.
func (l Layout) InRange(index int) bool {
	return index >= 0 && index < l.TotalSpaces()
}

// IndexOf returns the space index of the cell at (row, column).
// The caller must pass coordinates accepted by Contains.
func (l Layout) IndexOf(row, column int) int {
	reversedRow := l.Rows - row - 1
	if reversedRow%2 == 0 {
		return (reversedRow+1)*l.Columns - column - 1
	}
	return reversedRow*l.Columns + column
}

// Coords is the inverse of IndexOf. The caller must pass an index accepted by InRange.
func (l Layout) Coords(index int) (row, column int) {
	reversedRow := index / l.Columns
	offset := index % l.Columns
	row = l.Rows - reversedRow - 1
	if reversedRow%2 == 0 {
		return row, l.Columns - offset - 1
	}
	return row, offset
}
