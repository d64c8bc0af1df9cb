package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/pulse-maze/rng"
)

func TestWallsAt(t *testing.T) {
	m, err := newFullyWalled(3, 4)
	require.NoError(t, err)

	t.Run("fresh cell is fully enclosed", func(t *testing.T) {
		w, err := m.WallsAt(CellPosition{Row: 1, Col: 2})
		require.NoError(t, err)
		assert.Equal(t, WallAll, w)
	})

	t.Run("out of bounds fails", func(t *testing.T) {
		for _, p := range []CellPosition{
			{Row: -1, Col: 0},
			{Row: 0, Col: -1},
			{Row: 3, Col: 0},
			{Row: 0, Col: 4},
		} {
			_, err := m.WallsAt(p)
			assert.ErrorIs(t, err, ErrOutOfBounds, "position %v", p)
		}
	})
}

func TestSetWallMirroring(t *testing.T) {
	t.Run("clearing a wall clears the neighbor's facing wall", func(t *testing.T) {
		m, err := newFullyWalled(3, 3)
		require.NoError(t, err)

		p := CellPosition{Row: 1, Col: 1}
		require.NoError(t, m.SetWall(p, Up, false))

		local, _ := m.WallsAt(p)
		above, _ := m.WallsAt(p.Step(Up))
		assert.False(t, local.Has(Up))
		assert.False(t, above.Has(Down))
	})

	t.Run("boundary wall has no mirror", func(t *testing.T) {
		m, err := newFullyWalled(2, 2)
		require.NoError(t, err)

		require.NoError(t, m.SetWall(CellPosition{Row: 0, Col: 0}, Down, false))
		w, _ := m.WallsAt(CellPosition{Row: 0, Col: 0})
		assert.False(t, w.Has(Down))
	})

	t.Run("out of bounds fails", func(t *testing.T) {
		m, err := newFullyWalled(2, 2)
		require.NoError(t, err)
		assert.ErrorIs(t, m.SetWall(CellPosition{Row: 5, Col: 0}, Up, false), ErrOutOfBounds)
	})

	t.Run("mirroring holds under arbitrary mutation sequences", func(t *testing.T) {
		m, err := newFullyWalled(5, 7)
		require.NoError(t, err)

		r := rng.New(1234)
		for i := 0; i < 500; i++ {
			p := CellPosition{Row: r.Intn(5), Col: r.Intn(7)}
			d := Directions[r.Intn(len(Directions))]
			require.NoError(t, m.SetWall(p, d, r.Intn(2) == 0))
		}

		assertMirrored(t, m)
	})
}

// assertMirrored checks the shared-wall invariant over every adjacent pair.
func assertMirrored(t *testing.T, m *Maze) {
	t.Helper()
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			p := CellPosition{Row: row, Col: col}
			w, err := m.WallsAt(p)
			require.NoError(t, err)
			for _, d := range Directions {
				nbr, ok := m.Neighbor(p, d)
				if !ok {
					continue
				}
				nw, err := m.WallsAt(nbr)
				require.NoError(t, err)
				assert.Equal(t, w.Has(d), nw.Has(d.Opposite()),
					"wall between %v and %v disagrees", p, nbr)
			}
		}
	}
}

func TestNeighbor(t *testing.T) {
	m, err := newFullyWalled(2, 3)
	require.NoError(t, err)

	t.Run("interior neighbor", func(t *testing.T) {
		nbr, ok := m.Neighbor(CellPosition{Row: 0, Col: 1}, Up)
		assert.True(t, ok)
		assert.Equal(t, CellPosition{Row: 1, Col: 1}, nbr)
	})

	t.Run("boundary has none", func(t *testing.T) {
		_, ok := m.Neighbor(CellPosition{Row: 0, Col: 0}, Down)
		assert.False(t, ok)
		_, ok = m.Neighbor(CellPosition{Row: 1, Col: 2}, Right)
		assert.False(t, ok)
	})

	t.Run("ignores wall state", func(t *testing.T) {
		// Fully walled maze still reports grid adjacency.
		_, ok := m.Neighbor(CellPosition{Row: 0, Col: 0}, Up)
		assert.True(t, ok)
	})
}

func TestCanPass(t *testing.T) {
	m, err := newFullyWalled(2, 2)
	require.NoError(t, err)
	p := CellPosition{Row: 0, Col: 0}

	t.Run("walled side blocks", func(t *testing.T) {
		assert.False(t, m.CanPass(p, Up))
	})

	t.Run("carved side passes both ways", func(t *testing.T) {
		require.NoError(t, m.SetWall(p, Up, false))
		assert.True(t, m.CanPass(p, Up))
		assert.True(t, m.CanPass(CellPosition{Row: 1, Col: 0}, Down))
	})

	t.Run("grid boundary never passes", func(t *testing.T) {
		// Even with the boundary wall punched open, there is no cell on
		// the other side.
		require.NoError(t, m.SetWall(p, Down, false))
		assert.False(t, m.CanPass(p, Down))
	})
}

func TestDirection(t *testing.T) {
	t.Run("opposites", func(t *testing.T) {
		assert.Equal(t, Down, Up.Opposite())
		assert.Equal(t, Up, Down.Opposite())
		assert.Equal(t, Left, Right.Opposite())
		assert.Equal(t, Right, Left.Opposite())
	})

	t.Run("manhattan distance ignores walls", func(t *testing.T) {
		a := CellPosition{Row: 0, Col: 0}
		b := CellPosition{Row: 3, Col: 2}
		assert.Equal(t, 5, a.ManhattanTo(b))
		assert.Equal(t, 5, b.ManhattanTo(a))
		assert.Equal(t, 0, a.ManhattanTo(a))
	})
}
