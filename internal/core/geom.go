// Package core provides presentation-neutral building blocks for the front ends:
// a colored character buffer, grid geometry and input actions.
// It contains no external dependencies (especially no Bubble Tea).
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inner returns the rectangle shrunk by one cell on every side.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// Grid is a table of equally sized cells that share their borders.
// CellW and CellH include one border line.
type Grid struct {
	X, Y         int
	Rows, Cols   int
	CellW, CellH int
}

// Size returns the width and height of the whole grid including its outer border.
func (g Grid) Size() (w, h int) {
	return g.Cols*g.CellW + 1, g.Rows*g.CellH + 1
}

// Bounds returns the rectangle covered by the grid.
func (g Grid) Bounds() Rect {
	w, h := g.Size()
	return Rect{X: g.X, Y: g.Y, W: w, H: h}
}

// Cell returns the rectangle of a cell, borders included.
// Neighbouring cells overlap on their shared border.
func (g Grid) Cell(row, col int) Rect {
	return Rect{X: g.X + col*g.CellW, Y: g.Y + row*g.CellH, W: g.CellW + 1, H: g.CellH + 1}
}

// At returns the cell under the point (x, y). Points on a border belong to no cell.
func (g Grid) At(x, y int) (row, col int, ok bool) {
	if !g.Bounds().Contains(x, y) || g.CellW <= 0 || g.CellH <= 0 {
		return 0, 0, false
	}
	dx, dy := x-g.X, y-g.Y
	if dx%g.CellW == 0 || dy%g.CellH == 0 {
		return 0, 0, false
	}
	row, col = dy/g.CellH, dx/g.CellW
	if row >= g.Rows || col >= g.Cols {
		return 0, 0, false
	}
	return row, col, true
}
