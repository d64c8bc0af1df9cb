package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/pulse-maze/rng"
)

// corridorMaze carves a single straight 1xN corridor by hand.
func corridorMaze(t *testing.T, cols int) *Maze {
	t.Helper()
	m, err := newFullyWalled(1, cols)
	require.NoError(t, err)
	for col := 0; col < cols-1; col++ {
		require.NoError(t, m.SetWall(CellPosition{Row: 0, Col: col}, Right, false))
	}
	return m
}

func TestReachableFrom(t *testing.T) {
	t.Run("distances along a corridor", func(t *testing.T) {
		m := corridorMaze(t, 5)
		reach, err := m.ReachableFrom(CellPosition{Row: 0, Col: 0})
		require.NoError(t, err)

		assert.Equal(t, 5, reach.Visited.Size())
		for col := 0; col < 5; col++ {
			assert.Equal(t, col, reach.Dist[CellPosition{Row: 0, Col: col}])
		}
		assert.False(t, reach.Capped)
	})

	t.Run("walls bound the reachable set", func(t *testing.T) {
		// Two isolated corridors: carve the left pair only.
		m, err := newFullyWalled(1, 4)
		require.NoError(t, err)
		require.NoError(t, m.SetWall(CellPosition{Row: 0, Col: 0}, Right, false))

		reach, err := m.ReachableFrom(CellPosition{Row: 0, Col: 0})
		require.NoError(t, err)
		assert.Equal(t, 2, reach.Visited.Size())
		assert.True(t, reach.Visited.Has(CellPosition{Row: 0, Col: 1}))
		assert.False(t, reach.Visited.Has(CellPosition{Row: 0, Col: 2}))
	})

	t.Run("origin out of bounds fails", func(t *testing.T) {
		m := corridorMaze(t, 3)
		_, err := m.ReachableFrom(CellPosition{Row: 2, Col: 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("fully walled grid reaches only the origin", func(t *testing.T) {
		m, err := newFullyWalled(3, 3)
		require.NoError(t, err)
		reach, err := m.ReachableFrom(CellPosition{Row: 1, Col: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, reach.Visited.Size())
		assert.Equal(t, []CellPosition{{Row: 1, Col: 1}}, reach.Order)
	})

	t.Run("visit order is deterministic", func(t *testing.T) {
		m, err := Generate(6, 6, rng.New(7))
		require.NoError(t, err)

		first, err := m.ReachableFrom(CellPosition{Row: 0, Col: 0})
		require.NoError(t, err)
		second, err := m.ReachableFrom(CellPosition{Row: 0, Col: 0})
		require.NoError(t, err)
		assert.Equal(t, first.Order, second.Order)
	})

	t.Run("generated maze distances agree with manhattan lower bound", func(t *testing.T) {
		m, err := Generate(6, 6, rng.New(11))
		require.NoError(t, err)

		origin := CellPosition{Row: 0, Col: 0}
		reach, err := m.ReachableFrom(origin)
		require.NoError(t, err)
		for p, dist := range reach.Dist {
			assert.GreaterOrEqual(t, dist, origin.ManhattanTo(p))
		}
	})
}
