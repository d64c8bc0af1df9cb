package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/beka-birhanu/pulse-maze/rng"
)

// Generate carves a perfect maze of the given dimensions: every cell
// reachable from every other through exactly one path. Carving is a
// randomized depth-first backtracker driven by an explicit stack, so large
// grids cannot exhaust the call stack.
//
// After carving, the bottom wall of the start cell (0,0) and the top wall of
// the far corner are opened as the maze's entrance and exit. Those boundary
// openings are cosmetic; in-maze connectivity comes from carving alone.
//
// Equal seeds on r yield bit-identical mazes because unvisited neighbors are
// always enumerated in the fixed Directions order before the random pick.
func Generate(rows, cols int, r *rng.Rand) (*Maze, error) {
	m, err := newFullyWalled(rows, cols)
	if err != nil {
		return nil, err
	}

	start := CellPosition{Row: 0, Col: 0}
	visited := mapset.New[CellPosition]()
	visited.Put(start)
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []Direction
		for _, d := range Directions {
			if nbr, ok := m.Neighbor(current, d); ok && !visited.Has(nbr) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // dead end, backtrack
			continue
		}

		d := candidates[r.Intn(len(candidates))]
		next := current.Step(d)
		_ = m.SetWall(current, d, false)
		visited.Put(next)
		stack = append(stack, next)
	}

	// Entrance and exit on the outer boundary, diagonally opposite.
	_ = m.SetWall(start, Down, false)
	_ = m.SetWall(CellPosition{Row: rows - 1, Col: cols - 1}, Up, false)

	return m, nil
}
