package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(published *[]Grid) *Store {
	return NewStore(StoreConfig{
		InitialRows: 3,
		InitialCols: 3,
		Start:       Coord{Row: 0, Col: 0},
		Finish:      Coord{Row: 2, Col: 2},
		OnChange: func(g Grid) {
			*published = append(*published, g)
		},
	})
}

func TestStore(t *testing.T) {
	t.Run("Initialize publishes", func(t *testing.T) {
		var published []Grid
		s := newTestStore(&published)
		require.True(t, s.Grid().IsEmpty())

		s.Initialize()
		require.Len(t, published, 1)
		assert.Equal(t, 3, s.Grid().Rows())
		assert.Equal(t, 3, s.Grid().Cols())
	})

	t.Run("Guards do not notify", func(t *testing.T) {
		var published []Grid
		s := newTestStore(&published)

		s.AddRowAfter()
		s.AddRowBefore()
		s.AddColumnAfter()
		s.AddColumnBefore()
		s.DeleteRow()
		s.DeleteColumn()
		s.Transpose()
		assert.Empty(t, published)
		assert.True(t, s.Grid().IsEmpty())
	})

	t.Run("Scenario add row after", func(t *testing.T) {
		var published []Grid
		s := newTestStore(&published)
		s.Initialize()

		s.AddRowAfter()
		require.Len(t, published, 2)
		g := s.Grid()
		require.Equal(t, 4, g.Rows())
		require.Equal(t, 3, g.Cols())
		for c, n := range g[3] {
			assert.Equal(t, Coord{Row: 3, Col: c}, n.Coord())
			assert.False(t, n.IsStart)
			assert.False(t, n.IsFinish)
		}
	})

	t.Run("Published versions stay intact", func(t *testing.T) {
		var published []Grid
		s := newTestStore(&published)
		s.Initialize()
		s.DeleteColumn()
		s.AddColumnBefore()
		s.DeleteRow()

		require.Len(t, published, 4)
		assert.Equal(t, 3, published[0].Cols())
		assert.Equal(t, 2, published[1].Cols())
		assert.Equal(t, 3, published[2].Cols())
		assert.Equal(t, 3, published[2].Rows())
		assert.Equal(t, 2, published[3].Rows())
	})

	t.Run("Reset discards edits", func(t *testing.T) {
		var published []Grid
		s := newTestStore(&published)
		s.SetCounters(5, 6)
		s.Initialize()
		require.Equal(t, 5, s.Grid().Rows())
		require.True(t, s.ToggleWall(1, 1))
		s.Transpose()

		s.Reset()
		rows, cols := s.Counters()
		assert.Equal(t, 3, rows)
		assert.Equal(t, 3, cols)
		assert.Equal(t, 3, s.Grid().Rows())
		assert.Equal(t, 3, s.Grid().Cols())
		assert.NotContains(t, s.Grid().String(), "#")
	})

	t.Run("Apply dispatches structural actions", func(t *testing.T) {
		var published []Grid
		s := newTestStore(&published)
		s.Initialize()

		for _, a := range Actions() {
			assert.True(t, s.Apply(a), a)
		}
		assert.False(t, s.Apply(ActionToggleWall))
		assert.False(t, s.Apply("rotate"))
	})

	t.Run("Load does not notify", func(t *testing.T) {
		var published []Grid
		s := newTestStore(&published)

		s.Load(Initialize(2, 2, s.Factory()))
		assert.Empty(t, published)
		assert.Equal(t, 2, s.Grid().Rows())

		s.Load(nil)
		assert.NotNil(t, s.Grid())
	})
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction("toggle-wall")
	require.NoError(t, err)
	assert.Equal(t, ActionToggleWall, got)

	_, err = ParseAction("rotate")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
