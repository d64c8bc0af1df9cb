package game

import (
	"github.com/beka-birhanu/pulse-maze/maze"
	"github.com/beka-birhanu/pulse-maze/rng"
)

// PlaceGoal picks a goal cell among the cells reachable from origin,
// uniformly at random over those at Manhattan distance minDist or more from
// it. The filter deliberately uses straight-line Manhattan distance rather
// than path distance: "far in grid terms" is an adequate proxy for placement
// variety and is much cheaper than comparing path lengths.
//
// When no reachable cell satisfies the distance constraint the pick falls
// back to any reachable cell other than the origin. A maze with nothing
// reachable beyond the origin has no possible placement; the second return
// is false and that is a legitimate outcome, not an error.
func PlaceGoal(m *maze.Maze, origin maze.CellPosition, minDist int, r *rng.Rand) (maze.CellPosition, bool) {
	reach, err := m.ReachableFrom(origin)
	if err != nil {
		return maze.CellPosition{}, false
	}

	// Candidates keep BFS visit order so the r.Intn pick is reproducible
	// under a fixed seed.
	var far, anywhere []maze.CellPosition
	for _, p := range reach.Order {
		if p == origin {
			continue
		}
		anywhere = append(anywhere, p)
		if p.ManhattanTo(origin) >= minDist {
			far = append(far, p)
		}
	}

	candidates := far
	if len(candidates) == 0 {
		candidates = anywhere
	}
	if len(candidates) == 0 {
		return maze.CellPosition{}, false
	}
	return candidates[r.Intn(len(candidates))], true
}
