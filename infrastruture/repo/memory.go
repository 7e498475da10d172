package repo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
)

// MemoryBoardRepo keeps boards in process memory. Boards are copied on the
// way in and out so callers never share nodes with the stored state.
type MemoryBoardRepo struct {
	boards map[uuid.UUID]*dmn.Board
	sync.RWMutex
}

// NewMemoryBoardRepo creates an empty MemoryBoardRepo.
func NewMemoryBoardRepo() *MemoryBoardRepo {
	return &MemoryBoardRepo{
		boards: make(map[uuid.UUID]*dmn.Board),
	}
}

// Save inserts or replaces a board.
func (m *MemoryBoardRepo) Save(_ context.Context, board *dmn.Board) error {
	m.Lock()
	defer m.Unlock()
	m.boards[board.ID] = board.Copy()
	return nil
}

// ByID retrieves a board by its ID.
func (m *MemoryBoardRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Board, error) {
	m.RLock()
	defer m.RUnlock()
	board, ok := m.boards[id]
	if !ok {
		return nil, dmn.ErrBoardNotFound
	}
	return board.Copy(), nil
}

// Delete removes a board by its ID.
func (m *MemoryBoardRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.boards[id]; !ok {
		return dmn.ErrBoardNotFound
	}
	delete(m.boards, id)
	return nil
}
