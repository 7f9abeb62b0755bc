package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/serpientes/internal/board"
	"github.com/vovakirdan/serpientes/internal/core"
	"github.com/vovakirdan/serpientes/internal/game"
)

// Board cell size including one shared border line.
const (
	cellW = 7
	cellH = 3
)

// Board glyphs.
const (
	glyphToken  = '●'
	glyphVerse  = '♪'
	glyphLadder = '↑'
	glyphSnake  = '↓'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(1, 2)

	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	verseStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("222"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardGrid returns the grid the board is drawn on.
func boardGrid(l board.Layout) core.Grid {
	return core.Grid{Rows: l.Rows, Cols: l.Columns, CellW: cellW, CellH: cellH}
}

// newBoardScreen allocates a screen that fits the board exactly.
func newBoardScreen(l board.Layout) *core.Screen {
	w, h := boardGrid(l).Size()
	return core.NewScreen(w, h)
}

// BoardScreen returns a screen of the board's size with the board drawn on it.
func BoardScreen(b *board.Board, display int) *core.Screen {
	s := newBoardScreen(b.Layout)
	DrawBoard(s, b, display)
	return s
}

// DrawBoard draws the serpentine board with the token on display.
//
// Each cell shows its index, the destination of a snake or ladder, a note when
// it carries a verse, and the token.
func DrawBoard(s *core.Screen, b *board.Board, display int) {
	s.Clear()
	g := boardGrid(b.Layout)
	s.DrawGrid(g, core.ColorGray)

	for row := 0; row < b.Layout.Rows; row++ {
		for col := 0; col < b.Layout.Columns; col++ {
			idx := b.Layout.IndexOf(row, col)
			in := g.Cell(row, col).Inner()

			numColor := core.ColorDefault
			switch idx {
			case b.Layout.Start():
				numColor = core.ColorBlue
			case b.Final():
				numColor = core.ColorCyan
			}
			s.DrawTextColor(in.X, in.Y, strconv.Itoa(idx), numColor)

			if to, ok := b.Spaces.RemapOf(idx); ok {
				glyph, color := glyphSnake, core.ColorRed
				if to > idx {
					glyph, color = glyphLadder, core.ColorGreen
				}
				mark := string(glyph) + strconv.Itoa(to)
				s.DrawTextColor(in.Right()-utf8.RuneCountInString(mark), in.Y, mark, color)
			}

			if _, ok := b.Spaces.VerseAt(idx); ok {
				s.SetCell(in.X, in.Y+1, glyphVerse, core.ColorYellow)
			}

			if idx == display {
				cx, _ := in.Center()
				s.SetCell(cx, in.Y+1, glyphToken, core.ColorOrange)
			}
		}
	}
}

// dieFace returns the die glyph for v, or a blank face before the first roll.
func dieFace(v int) string {
	if v < 1 || v > game.Faces {
		return "[ ]"
	}
	return fmt.Sprintf("%c %d", rune(0x2680+v-1), v)
}

// describeEvent renders an event for the status panel.
func describeEvent(ev game.Event) string {
	switch ev.Kind {
	case game.EventStep:
		return fmt.Sprintf("Avanzas a la casilla %d", ev.To)
	case game.EventRemapped:
		if ev.Ladder() {
			return fmt.Sprintf("¡Escalera! Subes de %d a %d", ev.From, ev.To)
		}
		return fmt.Sprintf("¡Serpiente! Bajas de %d a %d", ev.From, ev.To)
	case game.EventVerseCollected:
		return "Nuevo verso encontrado"
	case game.EventVictory:
		return "¡Has llegado a la meta!"
	}
	return ""
}
