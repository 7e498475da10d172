package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nhanhuynh123/pathgrid/grid"
)

// ActionCreate marks the event published when a board is first created.
const ActionCreate grid.Action = "create"

var ErrBoardNotFound = errors.New("board not found")

// Board represents a persisted grid together with the size counters the
// user last asked for.
type Board struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Grid      grid.Grid `bson:"grid" json:"grid"`
	Rows      int       `bson:"rows" json:"rows"`           // Requested row count
	Cols      int       `bson:"cols" json:"cols"`           // Requested column count
	Version   int64     `bson:"version" json:"version"`     // Incremented on every change
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"` // Time of the last change
}

// Copy returns a deep copy of the board, nodes included.
func (b *Board) Copy() *Board {
	if b == nil {
		return nil
	}
	out := *b
	if b.Grid != nil {
		out.Grid = make(grid.Grid, len(b.Grid))
		for r, row := range b.Grid {
			out.Grid[r] = make([]*grid.Node, len(row))
			for c, n := range row {
				if n == nil {
					continue
				}
				cp := *n
				out.Grid[r][c] = &cp
			}
		}
	}
	return &out
}

// BoardChanged is published after every change to a board.
type BoardChanged struct {
	BoardID uuid.UUID   `json:"boardId"`
	Action  grid.Action `json:"action"`
	Version int64       `json:"version"`
	Rows    int         `json:"rows"`
	Cols    int         `json:"cols"`
	Grid    grid.Grid   `json:"grid"`
	At      time.Time   `json:"at"`
}

// NewBoardChanged builds the event describing the current state of b.
func NewBoardChanged(b *Board, action grid.Action) BoardChanged {
	return BoardChanged{
		BoardID: b.ID,
		Action:  action,
		Version: b.Version,
		Rows:    b.Rows,
		Cols:    b.Cols,
		Grid:    b.Grid,
		At:      b.UpdatedAt,
	}
}
