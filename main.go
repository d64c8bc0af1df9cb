// Command pulse-maze runs a headless demo session of the maze exploration
// core: it carves a maze, activates the guidance pulse sequence, then walks
// the agent along the carved path to the goal, logging every event the core
// emits. Rendering, input capture, and haptics live in the presentation
// layer and are out of scope here.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/beka-birhanu/pulse-maze/config"
	"github.com/beka-birhanu/pulse-maze/game"
	"github.com/beka-birhanu/pulse-maze/maze"
	"github.com/beka-birhanu/pulse-maze/service"
	"github.com/beka-birhanu/pulse-maze/service/i"
)

var (
	appLogger      *log.Logger
	sessionManager *service.GameSessionManager
)

func initLogger() {
	appLogger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pulse-maze",
	})
}

func initSessionManager(cfg config.Config) {
	var err error
	sessionManager, err = service.NewGameSessionManager(&service.Config{
		MinGoalDistance: cfg.MinGoalDistance,
		Timings:         cfg.Timings,
		Logger:          appLogger.WithPrefix("SESSION-MANAGER"),
	})
	if err != nil {
		appLogger.Error("creating session manager", "err", err)
		os.Exit(1)
	}
}

// watchEvents logs the session's event stream and signals each completed
// guidance sequence (the second arrival flash) on the returned channel.
func watchEvents(events <-chan game.Event) <-chan struct{} {
	sequenceDone := make(chan struct{}, 1)
	eventLogger := appLogger.WithPrefix("EVENTS")
	go func() {
		arrivals := 0
		for e := range events {
			switch e.Kind {
			case game.EventPulse:
				eventLogger.Info("pulse", "index", e.PulseIndex)
			case game.EventGoalCollected:
				eventLogger.Info("goal collected", "pos", e.Pos)
			case game.EventArrivalFlash:
				eventLogger.Info("arrival flash")
				arrivals++
				if arrivals == 2 {
					arrivals = 0
					sequenceDone <- struct{}{}
				}
			default:
				eventLogger.Info(e.Kind.String())
			}
		}
	}()
	return sequenceDone
}

// pathToGoal derives the unique carved path between the agent and the goal
// by walking the goal's BFS distance field backward.
func pathToGoal(m *maze.Maze, from, to maze.CellPosition) []maze.Direction {
	reach, err := m.ReachableFrom(from)
	if err != nil {
		return nil
	}
	if _, ok := reach.Dist[to]; !ok {
		return nil
	}

	steps := make([]maze.Direction, reach.Dist[to])
	cur := to
	for i := len(steps) - 1; i >= 0; i-- {
		for _, d := range maze.Directions {
			if !m.CanPass(cur, d) {
				continue
			}
			nbr := cur.Step(d)
			if reach.Dist[nbr] == reach.Dist[cur]-1 {
				steps[i] = d.Opposite()
				cur = nbr
				break
			}
		}
	}
	return steps
}

func main() {
	initLogger()
	cfg := config.Load()
	initSessionManager(cfg)

	info, err := sessionManager.StartSession(cfg.Rows, cfg.Cols, cfg.Seed)
	if err != nil {
		appLogger.Error("starting session", "err", err)
		os.Exit(1)
	}
	appLogger.Info("session ready", "start", info.Start, "goal", info.Goal, "hasGoal", info.HasGoal)

	m, err := sessionManager.Maze(info.ID)
	if err != nil {
		appLogger.Error("fetching maze", "err", err)
		os.Exit(1)
	}
	appLogger.Debug("maze layout\n" + m.String())

	events, err := sessionManager.Events(info.ID)
	if err != nil {
		appLogger.Error("fetching event stream", "err", err)
		os.Exit(1)
	}
	sequenceDone := watchEvents(events)

	// One full guidance sequence from the start cell.
	if err := sessionManager.ActivateGuidance(info.ID); err != nil {
		appLogger.Error("activating guidance", "err", err)
		os.Exit(1)
	}
	<-sequenceDone

	// Walk the carved path to the goal.
	runDemoWalk(info)

	if err := sessionManager.EndSession(info.ID); err != nil {
		appLogger.Error("ending session", "err", err)
		os.Exit(1)
	}
	appLogger.Info("demo complete")
}

func runDemoWalk(info i.SessionInfo) {
	if !info.HasGoal {
		appLogger.Info("no goal placed, skipping the walk")
		return
	}

	m, err := sessionManager.Maze(info.ID)
	if err != nil {
		appLogger.Error("fetching maze", "err", err)
		os.Exit(1)
	}
	pos, err := sessionManager.Position(info.ID)
	if err != nil {
		appLogger.Error("fetching position", "err", err)
		os.Exit(1)
	}

	for _, d := range pathToGoal(m, pos, info.Goal) {
		out, err := sessionManager.RequestMove(info.ID, d)
		if err != nil {
			appLogger.Error("requesting move", "err", err)
			os.Exit(1)
		}
		appLogger.Info("moved", "direction", d, "pos", out.Pos)
	}
}
