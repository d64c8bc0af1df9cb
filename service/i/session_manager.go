package i

import (
	"github.com/google/uuid"

	"github.com/beka-birhanu/pulse-maze/game"
	"github.com/beka-birhanu/pulse-maze/maze"
)

// SessionInfo describes a freshly started session to the caller.
type SessionInfo struct {
	ID      uuid.UUID         // session identifier
	Start   maze.CellPosition // agent's starting cell
	Goal    maze.CellPosition // placed goal, meaningful only when HasGoal
	HasGoal bool              // false on degenerate mazes with no placement
}

// SessionManager defines the interface the presentation layer drives to run
// game sessions. Directions arrive already classified; gesture recognition
// happens upstream.
type SessionManager interface {
	// StartSession generates a maze of the given dimensions, places the
	// agent and the goal, and registers the session. A nil seed gives a
	// fresh non-reproducible session.
	StartSession(rows, cols int, seed *int64) (SessionInfo, error)

	// RequestMove applies one move request to the session's agent.
	RequestMove(id uuid.UUID, d maze.Direction) (game.MoveOutcome, error)

	// Position returns the session agent's current cell.
	Position(id uuid.UUID) (maze.CellPosition, error)

	// ActivateGuidance starts the session's guidance pulse sequence.
	ActivateGuidance(id uuid.UUID) error

	// DeactivateGuidance cancels the session's guidance pulse sequence.
	DeactivateGuidance(id uuid.UUID) error

	// Events returns the session's event stream for the collaborator to
	// consume.
	Events(id uuid.UUID) (<-chan game.Event, error)

	// EndSession discards the session and stops any running guidance.
	EndSession(id uuid.UUID) error
}
