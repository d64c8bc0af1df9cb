// Package service coordinates live game sessions on behalf of the
// presentation layer: creation, move routing, guidance control, and
// teardown.
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/beka-birhanu/pulse-maze/game"
	"github.com/beka-birhanu/pulse-maze/maze"
	"github.com/beka-birhanu/pulse-maze/service/i"
)

// ErrSessionNotFound reports an unknown or already ended session identifier.
var ErrSessionNotFound = errors.New("no session with that id")

// GameSessionManager creates and tracks live game sessions. It implements
// i.SessionManager.
type GameSessionManager struct {
	minGoalDistance int
	timings         game.Timings
	logger          *log.Logger
	sessions        map[uuid.UUID]*game.Session
	sync.RWMutex
}

// Config holds the dependencies and defaults for a GameSessionManager.
type Config struct {
	MinGoalDistance int          // minimum manhattan start-to-goal distance for new sessions
	Timings         game.Timings // guidance cadence for new sessions
	Logger          *log.Logger
}

// NewGameSessionManager builds an empty manager from c.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}
	return &GameSessionManager{
		minGoalDistance: c.MinGoalDistance,
		timings:         c.Timings,
		logger:          c.Logger,
		sessions:        make(map[uuid.UUID]*game.Session),
	}, nil
}

// StartSession generates a maze, places the agent at the start cell and the
// goal within reach, and registers the new session under a fresh id.
func (g *GameSessionManager) StartSession(rows, cols int, seed *int64) (i.SessionInfo, error) {
	session, err := game.NewSession(game.Config{
		Rows:            rows,
		Cols:            cols,
		Seed:            seed,
		MinGoalDistance: g.minGoalDistance,
		Timings:         g.timings,
		Logger:          g.logger,
	})
	if err != nil {
		return i.SessionInfo{}, fmt.Errorf("starting session: %w", err)
	}

	info := i.SessionInfo{
		ID:    uuid.New(),
		Start: session.Position(),
	}
	info.Goal, info.HasGoal = session.Goal()

	g.Lock()
	g.sessions[info.ID] = session
	g.Unlock()

	g.logger.Info("started game session",
		"id", info.ID, "rows", rows, "cols", cols, "seeded", seed != nil)
	return info, nil
}

// RequestMove applies one move request to the session's agent.
func (g *GameSessionManager) RequestMove(id uuid.UUID, d maze.Direction) (game.MoveOutcome, error) {
	session, err := g.session(id)
	if err != nil {
		return game.MoveOutcome{}, err
	}
	return session.RequestMove(d), nil
}

// Position returns the session agent's current cell.
func (g *GameSessionManager) Position(id uuid.UUID) (maze.CellPosition, error) {
	session, err := g.session(id)
	if err != nil {
		return maze.CellPosition{}, err
	}
	return session.Position(), nil
}

// ActivateGuidance starts the session's guidance pulse sequence.
func (g *GameSessionManager) ActivateGuidance(id uuid.UUID) error {
	session, err := g.session(id)
	if err != nil {
		return err
	}
	session.ActivateGuidance()
	return nil
}

// DeactivateGuidance cancels the session's guidance pulse sequence.
func (g *GameSessionManager) DeactivateGuidance(id uuid.UUID) error {
	session, err := g.session(id)
	if err != nil {
		return err
	}
	session.DeactivateGuidance()
	return nil
}

// Events returns the session's event stream.
func (g *GameSessionManager) Events(id uuid.UUID) (<-chan game.Event, error) {
	session, err := g.session(id)
	if err != nil {
		return nil, err
	}
	return session.Events(), nil
}

// Maze exposes the session's maze for read-only queries and debug rendering.
func (g *GameSessionManager) Maze(id uuid.UUID) (*maze.Maze, error) {
	session, err := g.session(id)
	if err != nil {
		return nil, err
	}
	return session.Maze(), nil
}

// EndSession discards the session and stops any running guidance.
func (g *GameSessionManager) EndSession(id uuid.UUID) error {
	g.Lock()
	session, ok := g.sessions[id]
	delete(g.sessions, id)
	g.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.Close()
	g.logger.Info("ended game session", "id", id)
	return nil
}

// session looks up a live session by id.
func (g *GameSessionManager) session(id uuid.UUID) (*game.Session, error) {
	g.RLock()
	defer g.RUnlock()
	session, ok := g.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
