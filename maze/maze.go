/*
Package maze provides the grid model and generator for rectangular perfect mazes.

A Grid tracks which cells have been visited and which walls between adjacent
cells have been opened. The Generator carves a random spanning tree over a
Grid with a depth-first backtracker, so that exactly one path connects any
two cells.

Wall openings are kept in two matrices named after the axis of the wall
segment: vertical openings join horizontally adjacent cells, horizontal
openings join vertically adjacent cells.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxDimension bounds rows and cols of a single grid.
	MaxDimension = 500
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Grid is the visited and wall-opening state of a rows × cols cell grid.
type Grid struct {
	rows        int
	cols        int
	visited     [][]bool // visited[row][col]
	verticals   [][]bool // verticals[row][col] opens (row,col)-(row,col+1)
	horizontals [][]bool // horizontals[row][col] opens (row,col)-(row+1,col)
}

// New allocates a grid with every cell unvisited and every wall closed.
func New(rows, cols int) (*Grid, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &Grid{
		rows:        rows,
		cols:        cols,
		visited:     make([][]bool, rows),
		verticals:   make([][]bool, rows),
		horizontals: make([][]bool, rows-1),
	}
	for r := range g.visited {
		g.visited[r] = make([]bool, cols)
		g.verticals[r] = make([]bool, cols-1)
	}
	for r := range g.horizontals {
		g.horizontals[r] = make([]bool, cols)
	}

	return g, nil
}

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// InBound reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Visited reports whether generation has entered the cell.
func (g *Grid) Visited(row, col int) bool {
	g.mustCell(row, col)
	return g.visited[row][col]
}

// MarkVisited marks the cell as entered. It never resets.
func (g *Grid) MarkVisited(row, col int) {
	g.mustCell(row, col)
	g.visited[row][col] = true
}

// VerticalOpen reports whether the wall between (row,col) and (row,col+1) is removed.
func (g *Grid) VerticalOpen(row, col int) bool {
	g.mustVertical(row, col)
	return g.verticals[row][col]
}

// OpenVertical removes the wall between (row,col) and (row,col+1).
func (g *Grid) OpenVertical(row, col int) {
	g.mustVertical(row, col)
	g.verticals[row][col] = true
}

// HorizontalOpen reports whether the wall between (row,col) and (row+1,col) is removed.
func (g *Grid) HorizontalOpen(row, col int) bool {
	g.mustHorizontal(row, col)
	return g.horizontals[row][col]
}

// OpenHorizontal removes the wall between (row,col) and (row+1,col).
func (g *Grid) OpenHorizontal(row, col int) {
	g.mustHorizontal(row, col)
	g.horizontals[row][col] = true
}

// OpeningCount returns the number of removed internal walls.
func (g *Grid) OpeningCount() int {
	count := 0
	for _, row := range g.verticals {
		for _, open := range row {
			if open {
				count++
			}
		}
	}
	for _, row := range g.horizontals {
		for _, open := range row {
			if open {
				count++
			}
		}
	}
	return count
}

// openWall removes the wall crossed by move. Both ends must be in bounds.
func (g *Grid) openWall(move Move) {
	switch move.Direction {
	case Up, Down:
		g.OpenHorizontal(min(move.From.Row, move.To.Row), move.From.Col)
	case Left, Right:
		g.OpenVertical(move.From.Row, min(move.From.Col, move.To.Col))
	default:
		panic(fmt.Sprintf("maze: unknown direction %q", move.Direction))
	}
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")

	for row := 0; row < g.rows; row++ {
		b.WriteString("|")
		for col := 0; col < g.cols; col++ {
			if col < g.cols-1 && g.verticals[row][col] {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for col := 0; col < g.cols; col++ {
			if row < g.rows-1 && g.horizontals[row][col] {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (g *Grid) mustCell(row, col int) {
	if !g.InBound(row, col) {
		panic(fmt.Sprintf("maze: cell (%d,%d) out of %dx%d grid", row, col, g.rows, g.cols))
	}
}

func (g *Grid) mustVertical(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols-1 {
		panic(fmt.Sprintf("maze: vertical opening (%d,%d) out of range", row, col))
	}
}

func (g *Grid) mustHorizontal(row, col int) {
	if row < 0 || row >= g.rows-1 || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("maze: horizontal opening (%d,%d) out of range", row, col))
	}
}
