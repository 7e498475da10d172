package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
)

// BoardRepo defines the interface for board persistence operations.
type BoardRepo interface {
	// Save inserts or replaces a board in the repository.
	Save(ctx context.Context, board *dmn.Board) error

	// ByID retrieves a board by its unique ID.
	// Returns dmn.ErrBoardNotFound if no such board exists.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Board, error)

	// Delete removes a board. Returns dmn.ErrBoardNotFound if no such board exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
