package maze

// Direction identifies one of the four cardinal moves on the grid. Diagonal
// movement does not exist at this layer.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the cardinal directions in the fixed enumeration order
// used everywhere a cell's neighbors are scanned. Seeded sessions are only
// bit-reproducible because every scan walks this exact order.
var Directions = [4]Direction{Up, Right, Down, Left}

// directionNames is indexed by Direction.
var directionNames = [4]string{"Up", "Right", "Down", "Left"}

// String returns the direction's name.
func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "Unknown"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back at the caller.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	default:
		return Right
	}
}

// delta returns the row and column offset of one step in d. Row 0 is at the
// bottom of the grid, so Up increases the row.
func (d Direction) delta() (row, col int) {
	switch d {
	case Up:
		return 1, 0
	case Right:
		return 0, 1
	case Down:
		return -1, 0
	default:
		return 0, -1
	}
}

// Wall is the wall bitmask of a single cell, one bit per blocked side.
type Wall uint8

const (
	WallUp Wall = 1 << iota
	WallRight
	WallDown
	WallLeft

	// WallAll is a fully enclosed cell, the state every cell starts in
	// before carving.
	WallAll = WallUp | WallRight | WallDown | WallLeft
)

// wallBit returns the mask bit for the side facing d.
func wallBit(d Direction) Wall {
	return Wall(1) << d
}

// Has reports whether the side facing d is blocked.
func (w Wall) Has(d Direction) bool {
	return w&wallBit(d) != 0
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell, 0 at the bottom
	Col int // Column index of the cell, 0 at the left
}

// Step returns the adjacent position one cell away in d. It does no bounds
// checking; use Maze.Neighbor when the grid limits matter.
func (p CellPosition) Step(d Direction) CellPosition {
	dr, dc := d.delta()
	return CellPosition{Row: p.Row + dr, Col: p.Col + dc}
}

// ManhattanTo returns the straight-line grid distance |Δrow| + |Δcol| to o,
// ignoring walls entirely.
func (p CellPosition) ManhattanTo(o CellPosition) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
