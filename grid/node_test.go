package grid

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeFactory(t *testing.T) {
	f := NewNodeFactory(Coord{Row: 0, Col: 0}, Coord{Row: 2, Col: 2})

	t.Run("Start node", func(t *testing.T) {
		n := f.CreateNode(0, 0)
		assert.True(t, n.IsStart)
		assert.False(t, n.IsFinish)
	})

	t.Run("Finish node", func(t *testing.T) {
		n := f.CreateNode(2, 2)
		assert.False(t, n.IsStart)
		assert.True(t, n.IsFinish)
	})

	t.Run("Plain node defaults", func(t *testing.T) {
		n := f.CreateNode(1, 2)
		assert.False(t, n.IsStart)
		assert.False(t, n.IsFinish)
		assert.False(t, n.IsWall)
		assert.False(t, n.IsVisited)
		assert.False(t, n.Previous.Valid)
		assert.True(t, math.IsInf(n.Distance, 1))
		assert.Equal(t, Coord{Row: 1, Col: 2}, n.Coord())
		assert.NotEqual(t, uuid.Nil, n.ID)
	})

	t.Run("Ids are unique", func(t *testing.T) {
		seen := make(map[uuid.UUID]struct{})
		for i := 0; i < 1000; i++ {
			n := f.CreateNode(i, i)
			_, dup := seen[n.ID]
			require.False(t, dup)
			seen[n.ID] = struct{}{}
		}
	})

	t.Run("Configured coordinates", func(t *testing.T) {
		assert.Equal(t, Coord{Row: 0, Col: 0}, f.Start())
		assert.Equal(t, Coord{Row: 2, Col: 2}, f.Finish())
	})
}

func TestNodeJSON(t *testing.T) {
	f := NewNodeFactory(Coord{Row: 0, Col: 0}, Coord{Row: 2, Col: 2})

	t.Run("Infinite distance is null", func(t *testing.T) {
		data, err := json.Marshal(f.CreateNode(1, 1))
		require.NoError(t, err)

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Nil(t, raw["distance"])
		assert.Nil(t, raw["previousNode"])

		var back Node
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, math.IsInf(back.Distance, 1))
		assert.False(t, back.Previous.Valid)
	})

	t.Run("Finite distance and back reference", func(t *testing.T) {
		prev := f.CreateNode(0, 0)
		n := f.CreateNode(0, 1)
		n.Distance = 1
		n.Previous = uuid.NullUUID{UUID: prev.ID, Valid: true}

		data, err := json.Marshal(n)
		require.NoError(t, err)

		var back Node
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, *n, back)
	})
}
