/*
Package game implements the logic core of a single-agent maze exploration
session: agent navigation against the maze's walls, reachability-constrained
goal placement, and the distance-driven guidance pulse sequencer.

The package emits plain Event values through a buffered stream and never
holds a reference to whatever presentation layer consumes them.
*/
package game

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/beka-birhanu/pulse-maze/maze"
	"github.com/beka-birhanu/pulse-maze/rng"
)

const defaultEventBuffer = 64

// Config carries everything one session needs. It is passed explicitly into
// NewSession; the core keeps no process-wide mutable settings.
type Config struct {
	Rows int
	Cols int

	// Seed makes the whole session reproducible: maze layout, goal
	// placement and move outcomes. Nil seeds from the wall clock for
	// fresh, non-reproducible play.
	Seed *int64

	// MinGoalDistance is the preferred minimum Manhattan distance between
	// the start cell and the goal.
	MinGoalDistance int

	// Timings drives the guidance sequencer. The zero value is replaced
	// with DefaultTimings.
	Timings Timings

	// EventBuffer sizes the event stream. Zero means the default.
	EventBuffer int

	// Logger receives integrity warnings. Nil discards them.
	Logger *log.Logger
}

// Session is one play session: a carved maze, the agent inside it, an
// optional goal, and the guidance sequencer. Create one per game and discard
// it wholesale; nothing is ever serialized.
type Session struct {
	maze   *maze.Maze
	nav    *Navigator
	seq    *Sequencer
	logger *log.Logger

	mu      sync.Mutex
	goal    maze.CellPosition
	hasGoal bool

	events chan Event
}

// NewSession generates the maze, places the agent at the start cell (0,0),
// places the goal, and wires up the sequencer.
func NewSession(c Config) (*Session, error) {
	if c.Timings == (Timings{}) {
		c.Timings = DefaultTimings()
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = defaultEventBuffer
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}

	var r *rng.Rand
	if c.Seed != nil {
		r = rng.New(*c.Seed)
	} else {
		r = rng.NewFromTime()
	}

	m, err := maze.Generate(c.Rows, c.Cols, r)
	if err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	start := maze.CellPosition{Row: 0, Col: 0}
	nav, err := NewNavigator(m, start)
	if err != nil {
		return nil, fmt.Errorf("placing agent: %w", err)
	}

	s := &Session{
		maze:   m,
		nav:    nav,
		logger: c.Logger,
		events: make(chan Event, c.EventBuffer),
	}
	if goal, ok := PlaceGoal(m, start, c.MinGoalDistance, r); ok {
		s.goal = goal
		s.hasGoal = true
	}
	s.seq = NewSequencer(c.Timings, s.goalDistance, s.emit)
	return s, nil
}

// RequestMove applies one move request. On a successful move that lands on
// the goal, the goal is cleared and an EventGoalCollected is emitted.
func (s *Session) RequestMove(d maze.Direction) MoveOutcome {
	out := s.nav.TryMove(d)
	if !out.Moved {
		return out
	}

	s.mu.Lock()
	collected := s.hasGoal && out.Pos == s.goal
	if collected {
		s.hasGoal = false
	}
	s.mu.Unlock()

	if collected {
		s.emit(Event{Kind: EventGoalCollected, Pos: out.Pos})
	}
	return out
}

// Position returns the agent's current cell.
func (s *Session) Position() maze.CellPosition {
	return s.nav.Position()
}

// Goal returns the goal cell, reporting false once collected or when no
// placement was possible.
func (s *Session) Goal() (maze.CellPosition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal, s.hasGoal
}

// Maze exposes the session's maze for read-only queries and debug rendering.
func (s *Session) Maze() *maze.Maze {
	return s.maze
}

// ActivateGuidance starts a guidance sequence; see Sequencer.Activate.
func (s *Session) ActivateGuidance() {
	s.seq.Activate()
}

// DeactivateGuidance cancels a running guidance sequence; see
// Sequencer.Deactivate.
func (s *Session) DeactivateGuidance() {
	s.seq.Deactivate()
}

// Events returns the session's event stream. The channel stays open for the
// session's lifetime; consumers just stop reading when done.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Close stops any running guidance sequence. The session keeps no other
// resources.
func (s *Session) Close() {
	s.seq.Deactivate()
}

// goalDistance is the sequencer's distance source: the BFS graph distance
// from the agent to the goal, zero when no goal is placed. Note the contrast
// with goal placement, which filters on Manhattan distance; guidance cadence
// reflects actual path length through the walls.
func (s *Session) goalDistance() int {
	goal, ok := s.Goal()
	if !ok {
		return 0
	}

	reach, err := s.maze.ReachableFrom(s.nav.Position())
	if err != nil {
		s.logger.Error("reachability from agent position failed", "err", err)
		return 0
	}
	if reach.Capped {
		s.logger.Warn("reachability node cap hit, maze wall data may be corrupt",
			"rows", s.maze.Rows(), "cols", s.maze.Cols())
	}
	return reach.Dist[goal]
}

// emit hands an event to the stream without ever blocking the core. When the
// collaborator falls behind the buffer, the event is dropped and logged.
func (s *Session) emit(e Event) {
	select {
	case s.events <- e:
	default:
		s.logger.Warn("event buffer full, dropping event", "kind", e.Kind)
	}
}
