package maze

// Direction names a move between two orthogonally adjacent cells.
type Direction string

const (
	Up    Direction = "up"
	Right Direction = "right"
	Down  Direction = "down"
	Left  Direction = "left"
)

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Move represents a movement from one cell to another in a specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Direction of the move (up, right, down, left)
}

// candidates returns the four neighbor moves of pos in the fixed order
// up, right, down, left. Bounds are not checked here.
func candidates(pos CellPosition) [4]Move {
	return [4]Move{
		{From: pos, To: CellPosition{Row: pos.Row - 1, Col: pos.Col}, Direction: Up},
		{From: pos, To: CellPosition{Row: pos.Row, Col: pos.Col + 1}, Direction: Right},
		{From: pos, To: CellPosition{Row: pos.Row + 1, Col: pos.Col}, Direction: Down},
		{From: pos, To: CellPosition{Row: pos.Row, Col: pos.Col - 1}, Direction: Left},
	}
}
