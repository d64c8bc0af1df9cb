/*
Package maze provides the grid model of a rectangular maze and the tools that
operate on it: per-cell wall bitmasks with mirrored mutation, random perfect
maze generation by iterative depth-first carving, and breadth-first
reachability queries.

Walls between two adjacent cells are a single shared fact: all mutation goes
through SetWall, which writes the flag on both sides of the boundary at once.
A utility String method renders the maze as ASCII for debugging.
*/
package maze

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidDimensions rejects non-positive grid sizes at generation
	// time.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")

	// ErrOutOfBounds flags a cell position outside the grid. External
	// callers never see it for well-formed input; internally it marks a
	// coordinate-math bug.
	ErrOutOfBounds = errors.New("cell position out of maze bounds")
)

// Maze represents a rectangular grid of cells addressed by row and column,
// with row 0 at the bottom. The grid is carved once at session start and is
// read-only afterwards.
type Maze struct {
	rows int
	cols int
	grid [][]Wall
}

// newFullyWalled allocates a maze with every cell fully enclosed.
func newFullyWalled(rows, cols int) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	grid := make([][]Wall, rows)
	for i := range grid {
		grid[i] = make([]Wall, cols)
		for j := range grid[i] {
			grid[i][j] = WallAll
		}
	}

	return &Maze{rows: rows, cols: cols, grid: grid}, nil
}

// Rows returns the number of rows in the maze.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the maze.
func (m *Maze) Cols() int {
	return m.cols
}

// InBound reports whether p addresses a cell of the grid.
func (m *Maze) InBound(p CellPosition) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// WallsAt returns the wall bitmask of the cell at p.
func (m *Maze) WallsAt(p CellPosition) (Wall, error) {
	if !m.InBound(p) {
		return 0, ErrOutOfBounds
	}
	return m.grid[p.Row][p.Col], nil
}

// SetWall sets or clears the wall on the side of p facing d. The flag is
// mirrored onto the neighbor across that side when the neighbor is in
// bounds; on a grid boundary only the local flag changes. This is the sole
// wall-mutation primitive, which is what keeps the two sides of a shared
// boundary from ever disagreeing.
func (m *Maze) SetWall(p CellPosition, d Direction, present bool) error {
	if !m.InBound(p) {
		return ErrOutOfBounds
	}

	m.writeWall(p, d, present)
	if nbr, ok := m.Neighbor(p, d); ok {
		m.writeWall(nbr, d.Opposite(), present)
	}
	return nil
}

// writeWall flips a single flag. Only SetWall may call it.
func (m *Maze) writeWall(p CellPosition, d Direction, present bool) {
	if present {
		m.grid[p.Row][p.Col] |= wallBit(d)
	} else {
		m.grid[p.Row][p.Col] &^= wallBit(d)
	}
}

// Neighbor returns the position adjacent to p in direction d, reporting
// false when it falls outside the grid. Wall state is not consulted.
func (m *Maze) Neighbor(p CellPosition, d Direction) (CellPosition, bool) {
	nbr := p.Step(d)
	return nbr, m.InBound(nbr)
}

// CanPass reports whether an agent standing at p can leave toward d: the
// neighbor must exist and the facing wall must be down. Because walls are
// mirrored, checking one side of the boundary is sufficient.
func (m *Maze) CanPass(p CellPosition, d Direction) bool {
	if _, ok := m.Neighbor(p, d); !ok {
		return false
	}
	return !m.grid[p.Row][p.Col].Has(d)
}

// OpenPassages counts the carved passages between adjacent cells, each
// shared boundary counted once. A perfect maze has exactly rows*cols - 1.
// Boundary openings such as the entrance and exit are not passages and are
// not counted.
func (m *Maze) OpenPassages() int {
	open := 0
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			p := CellPosition{Row: row, Col: col}
			if m.CanPass(p, Up) {
				open++
			}
			if m.CanPass(p, Right) {
				open++
			}
		}
	}
	return open
}

// String provides a textual representation of the maze, top row first.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary, drawn from the Up walls of the top row.
	output.WriteString("+")
	for col := 0; col < m.cols; col++ {
		if m.grid[m.rows-1][col].Has(Up) {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := m.rows - 1; row >= 0; row-- {
		// Cell row with Left/Right walls.
		if m.grid[row][0].Has(Left) {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < m.cols; col++ {
			output.WriteString("   ")
			if m.grid[row][col].Has(Right) {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall row with Down walls.
		output.WriteString("+")
		for col := 0; col < m.cols; col++ {
			if m.grid[row][col].Has(Down) {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
