package maze

import "github.com/zyedidia/generic/mapset"

// Reachability is the result of a breadth-first walk over the carved
// passages. It is a pure query result: callers recompute it on demand and
// never store it across maze changes.
type Reachability struct {
	// Visited holds every cell reachable from the origin.
	Visited mapset.Set[CellPosition]

	// Dist maps each visited cell to its graph distance from the origin,
	// the number of passages on the shortest path.
	Dist map[CellPosition]int

	// Order records cells in visit order. The order is deterministic for a
	// given maze, which lets callers make seeded random picks over the
	// reachable set.
	Order []CellPosition

	// Capped is set when the walk processed more cells than the grid
	// holds. That cannot happen on a well-formed maze; it signals corrupt
	// wall data and callers should log it as an integrity warning.
	Capped bool
}

// ReachableFrom walks the passability graph outward from origin and returns
// the reachable set with per-cell distances. Neighbors are expanded in the
// fixed Directions order. For a correctly carved perfect maze the visited
// set always covers the whole grid.
func (m *Maze) ReachableFrom(origin CellPosition) (Reachability, error) {
	if !m.InBound(origin) {
		return Reachability{}, ErrOutOfBounds
	}

	res := Reachability{
		Visited: mapset.New[CellPosition](),
		Dist:    make(map[CellPosition]int),
	}
	res.Visited.Put(origin)
	res.Dist[origin] = 0
	res.Order = append(res.Order, origin)

	nodeCap := m.rows * m.cols
	processed := 0
	frontier := []CellPosition{origin}

	for len(frontier) > 0 {
		cell := frontier[0]
		frontier = frontier[1:]

		processed++
		if processed > nodeCap {
			res.Capped = true
			break
		}

		for _, d := range Directions {
			if !m.CanPass(cell, d) {
				continue
			}
			nbr := cell.Step(d)
			if res.Visited.Has(nbr) {
				continue
			}
			res.Visited.Put(nbr)
			res.Dist[nbr] = res.Dist[cell] + 1
			res.Order = append(res.Order, nbr)
			frontier = append(frontier, nbr)
		}
	}

	return res, nil
}
