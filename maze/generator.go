package maze

import (
	"math/rand"
	"time"
)

// Source is the random capability the generator draws from.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded Source. A zero seed uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generator carves a random spanning tree over a Grid with a randomized
// depth-first backtracker.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing every random decision from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Generate visits g from a uniformly random start cell and returns that cell.
// On return every cell of g is visited and exactly Rows*Cols-1 walls are open.
func (gen *Generator) Generate(g *Grid) CellPosition {
	start := CellPosition{Row: gen.src.Intn(g.Rows()), Col: gen.src.Intn(g.Cols())}
	gen.Visit(g, start.Row, start.Col)
	return start
}

// frame is one pending cell of the depth-first walk: its shuffled neighbor
// moves and the index of the next move to try.
type frame struct {
	moves [4]Move
	next  int
}

// Visit runs the backtracker from (row, col). Visiting an already visited
// cell is a no-op.
//
// The walk keeps an explicit stack of frames instead of recursing, so its
// depth is bounded by the cell count rather than the goroutine stack. The
// order of visits, opened walls and random draws matches the recursive form:
// a cell's neighbors are shuffled when the cell is entered, and each
// unvisited neighbor is fully explored before the next one is tried.
func (gen *Generator) Visit(g *Grid, row, col int) {
	if g.Visited(row, col) {
		return
	}

	stack := []*frame{gen.enter(g, CellPosition{Row: row, Col: col})}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.moves) {
			stack = stack[:len(stack)-1]
			continue
		}

		move := top.moves[top.next]
		top.next++
		if !g.InBound(move.To.Row, move.To.Col) || g.Visited(move.To.Row, move.To.Col) {
			continue
		}

		g.openWall(move)
		stack = append(stack, gen.enter(g, move.To))
	}
}

// enter marks pos visited and shuffles its candidate moves.
func (gen *Generator) enter(g *Grid, pos CellPosition) *frame {
	g.MarkVisited(pos.Row, pos.Col)
	f := &frame{moves: candidates(pos)}
	Shuffle(gen.src, f.moves[:])
	return f
}

// Shuffle permutes moves in place with Fisher–Yates: for i from len-1 down
// to 1, swap element i with element src.Intn(i+1).
func Shuffle(src Source, moves []Move) {
	for i := len(moves) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		moves[i], moves[j] = moves[j], moves[i]
	}
}
