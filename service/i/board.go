package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"github.com/nhanhuynh123/pathgrid/grid"
)

// ActionRequest describes one edit of a board.
type ActionRequest struct {
	Action  grid.Action
	Row     int     // Target row for toggle-wall
	Col     int     // Target column for toggle-wall
	Rows    int     // New row count for resize
	Cols    int     // New column count for resize
	Density float64 // Wall probability for scatter-walls
}

// BoardManager creates boards and applies edits to them.
type BoardManager interface {
	// Create initializes a board with the default size and returns it with
	// an edit token scoped to it.
	Create(ctx context.Context) (*dmn.Board, string, error)

	// Get returns the current state of a board.
	Get(ctx context.Context, id uuid.UUID) (*dmn.Board, error)

	// Apply runs one action against a board and returns its new state.
	Apply(ctx context.Context, id uuid.UUID, req ActionRequest) (*dmn.Board, error)

	// Delete removes a board.
	Delete(ctx context.Context, id uuid.UUID) error
}
