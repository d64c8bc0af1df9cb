package game

import (
	"sync"

	"github.com/beka-birhanu/pulse-maze/maze"
)

// MoveOutcome reports the result of a single move request. A blocked move is
// an ordinary outcome, not an error.
type MoveOutcome struct {
	Moved bool              // whether the agent changed cell
	Pos   maze.CellPosition // agent position after the request
}

// Navigator owns the agent's position within a maze and is its sole mutator.
// All methods are safe for concurrent use.
type Navigator struct {
	mu   sync.Mutex
	maze *maze.Maze
	pos  maze.CellPosition
}

// NewNavigator places the agent at start inside m.
func NewNavigator(m *maze.Maze, start maze.CellPosition) (*Navigator, error) {
	if !m.InBound(start) {
		return nil, maze.ErrOutOfBounds
	}
	return &Navigator{maze: m, pos: start}, nil
}

// TryMove attempts one step in d. When the facing wall is down the agent
// advances and the outcome reports Moved; otherwise the position is left
// untouched and the outcome reports the unchanged cell. The check and the
// update happen under one lock, so concurrent callers always see a
// consistent position.
func (n *Navigator) TryMove(d maze.Direction) MoveOutcome {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.maze.CanPass(n.pos, d) {
		return MoveOutcome{Moved: false, Pos: n.pos}
	}
	n.pos = n.pos.Step(d)
	return MoveOutcome{Moved: true, Pos: n.pos}
}

// Position returns the agent's current cell.
func (n *Navigator) Position() maze.CellPosition {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pos
}
