package grid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory() *NodeFactory {
	return NewNodeFactory(Coord{Row: 0, Col: 0}, Coord{Row: 2, Col: 2})
}

func ids(g Grid) [][]uuid.UUID {
	out := make([][]uuid.UUID, len(g))
	for r, row := range g {
		for _, n := range row {
			out[r] = append(out[r], n.ID)
		}
	}
	return out
}

func TestInitialize(t *testing.T) {
	f := newTestFactory()

	g := Initialize(3, 3, f)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 3, g.Cols())
	assert.True(t, g.IsRectangular())
	for r, row := range g {
		for c, n := range row {
			assert.Equal(t, Coord{Row: r, Col: c}, n.Coord())
		}
	}
	assert.True(t, g[0][0].IsStart)
	assert.True(t, g[2][2].IsFinish)

	assert.True(t, Initialize(0, 3, f).IsEmpty())
	assert.True(t, Initialize(3, -1, f).IsEmpty())
}

func TestAddRows(t *testing.T) {
	f := newTestFactory()

	t.Run("Add row after", func(t *testing.T) {
		g := Initialize(3, 3, f)
		before := ids(g)

		out := AddRowAfter(g, f)
		require.Equal(t, 4, out.Rows())
		assert.True(t, out.IsRectangular())
		assert.Equal(t, before, ids(out[:3]))
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				assert.Same(t, g[r][c], out[r][c])
			}
		}
		for c, n := range out[3] {
			assert.Equal(t, Coord{Row: 3, Col: c}, n.Coord())
			assert.False(t, n.IsStart)
			assert.False(t, n.IsFinish)
		}
		assert.Equal(t, 3, g.Rows())
	})

	t.Run("Add row before keeps pre-insertion label", func(t *testing.T) {
		g := Initialize(3, 3, f)

		out := AddRowBefore(g, f)
		require.Equal(t, 4, out.Rows())
		for c, n := range out[0] {
			assert.Equal(t, Coord{Row: 3, Col: c}, n.Coord())
		}
		assert.Same(t, g[0][0], out[1][0])
		assert.Same(t, g[2][2], out[3][2])
		assert.Equal(t, 3, g.Rows())
	})

	t.Run("Add then delete restores", func(t *testing.T) {
		g := Initialize(3, 3, f)

		out := DeleteRow(AddRowAfter(g, f))
		assert.Equal(t, ids(g), ids(out))
	})

	t.Run("Empty grid is a no-op", func(t *testing.T) {
		assert.Empty(t, AddRowAfter(Grid{}, f))
		assert.Empty(t, AddRowBefore(Grid{}, f))
		assert.Empty(t, AddRowAfter(nil, f))
	})
}

func TestAddColumns(t *testing.T) {
	f := newTestFactory()

	t.Run("Add column after", func(t *testing.T) {
		g := Initialize(3, 3, f)

		out := AddColumnAfter(g, f)
		require.Equal(t, 3, out.Rows())
		require.Equal(t, 4, out.Cols())
		assert.True(t, out.IsRectangular())
		for r := range out {
			assert.Equal(t, Coord{Row: r, Col: 3}, out[r][3].Coord())
			assert.Same(t, g[r][0], out[r][0])
			assert.Len(t, g[r], 3)
		}
	})

	t.Run("Add column before keeps pre-insertion label", func(t *testing.T) {
		g := Initialize(3, 3, f)

		out := AddColumnBefore(g, f)
		require.Equal(t, 4, out.Cols())
		for r := range out {
			assert.Equal(t, Coord{Row: r, Col: 3}, out[r][0].Coord())
			assert.Same(t, g[r][0], out[r][1])
			assert.Same(t, g[r][2], out[r][3])
			assert.Len(t, g[r], 3)
		}
	})

	t.Run("Empty grid is a no-op", func(t *testing.T) {
		assert.Empty(t, AddColumnAfter(Grid{}, f))
		assert.Empty(t, AddColumnBefore(Grid{}, f))
	})
}

func TestDelete(t *testing.T) {
	f := newTestFactory()

	t.Run("Delete column", func(t *testing.T) {
		g := Initialize(3, 3, f)

		out := DeleteColumn(g)
		require.Equal(t, 3, out.Rows())
		require.Equal(t, 2, out.Cols())
		for r := range out {
			assert.Same(t, g[r][1], out[r][1])
			assert.Len(t, g[r], 3)
		}
	})

	t.Run("Delete column drops finish without checks", func(t *testing.T) {
		g := Initialize(3, 3, f)

		out := DeleteColumn(g)
		for _, row := range out {
			for _, n := range row {
				assert.False(t, n.IsFinish)
			}
		}
	})

	t.Run("Delete column on zero-length rows", func(t *testing.T) {
		g := Grid{{}, {}}

		out := DeleteColumn(g)
		require.Equal(t, 2, out.Rows())
		assert.Equal(t, 0, out.Cols())
		assert.Equal(t, 0, out.Size())
	})

	t.Run("Delete row", func(t *testing.T) {
		g := Initialize(3, 3, f)

		out := DeleteRow(g)
		require.Equal(t, 2, out.Rows())
		assert.Equal(t, ids(g[:2]), ids(out))
		assert.Equal(t, 3, g.Rows())
	})

	t.Run("Delete row on empty grid", func(t *testing.T) {
		assert.Empty(t, DeleteRow(Grid{}))
		assert.Empty(t, DeleteColumn(Grid{}))
	})
}

func TestTranspose(t *testing.T) {
	f := newTestFactory()

	t.Run("Dimensions invert", func(t *testing.T) {
		g := Initialize(2, 3, f)

		out := Transpose(g)
		require.Equal(t, 3, out.Rows())
		require.Equal(t, 2, out.Cols())
		assert.Equal(t, g.Size(), out.Size())
		for i := range out {
			for j := range out[i] {
				assert.Same(t, g[j][i], out[i][j])
			}
		}
	})

	t.Run("Node coordinates are not rewritten", func(t *testing.T) {
		g := Initialize(2, 3, f)

		out := Transpose(g)
		assert.Equal(t, Coord{Row: 0, Col: 2}, out[2][0].Coord())
	})

	t.Run("Twice restores", func(t *testing.T) {
		g := Initialize(4, 2, f)

		out := Transpose(Transpose(g))
		assert.Equal(t, ids(g), ids(out))
	})

	t.Run("Empty grid", func(t *testing.T) {
		assert.Empty(t, Transpose(Grid{}))
		assert.Equal(t, 2, Transpose(Grid{{}, {}}).Rows())
	})
}

func TestToggleWall(t *testing.T) {
	f := newTestFactory()
	g := Initialize(3, 3, f)

	out, ok := ToggleWall(g, 1, 1)
	require.True(t, ok)
	assert.True(t, out[1][1].IsWall)
	assert.Equal(t, g[1][1].ID, out[1][1].ID)
	assert.False(t, g[1][1].IsWall)
	assert.Same(t, g[0][0], out[0][0])

	back, ok := ToggleWall(out, 1, 1)
	require.True(t, ok)
	assert.False(t, back[1][1].IsWall)

	_, ok = ToggleWall(g, 0, 0)
	assert.False(t, ok)
	_, ok = ToggleWall(g, 2, 2)
	assert.False(t, ok)
	_, ok = ToggleWall(g, 5, 0)
	assert.False(t, ok)
}

func TestGridLookup(t *testing.T) {
	f := newTestFactory()
	g := Initialize(3, 3, f)

	n, pos, ok := g.Find(g[1][2].ID)
	require.True(t, ok)
	assert.Same(t, g[1][2], n)
	assert.Equal(t, Coord{Row: 1, Col: 2}, pos)

	_, _, ok = g.Find(uuid.New())
	assert.False(t, ok)

	g[1][2].Previous = uuid.NullUUID{UUID: g[1][1].ID, Valid: true}
	prev, ok := g.Previous(g[1][2])
	require.True(t, ok)
	assert.Same(t, g[1][1], prev)

	_, ok = g.Previous(g[0][1])
	assert.False(t, ok)

	assert.Nil(t, g.At(3, 0))
	assert.Nil(t, g.At(-1, 0))
}

func TestGridString(t *testing.T) {
	f := newTestFactory()
	g := Initialize(3, 3, f)
	g, _ = ToggleWall(g, 1, 1)

	assert.Equal(t, "S..\n.#.\n..F", g.String())
	assert.Equal(t, "", Grid{}.String())
}
