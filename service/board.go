package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nhanhuynh123/pathgrid/config"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"github.com/nhanhuynh123/pathgrid/grid"
	"github.com/nhanhuynh123/pathgrid/maze"
	"github.com/nhanhuynh123/pathgrid/service/i"
)

const (
	// MaxDimension bounds the row and column counts accepted by resize.
	MaxDimension = 200

	defaultTokenTTL = 24 * time.Hour

	// ClaimBoardID is the token claim naming the board a token may edit.
	ClaimBoardID = "board_id"
)

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidCell       = errors.New("cell cannot be toggled")
	ErrMissingDependency = errors.New("missing dependency")
)

// Config holds the dependencies of a BoardService.
type Config struct {
	Repo      i.BoardRepo
	Locker    i.Locker
	Publisher i.Publisher
	Tokenizer i.Tokenizer
	Logger    *log.Logger
	Defaults  grid.StoreConfig // Initial size and start/finish; OnChange is ignored
	TokenTTL  time.Duration
	Rand      *rand.Rand
}

// BoardService applies edits to persisted boards. Edits on the same board are
// serialised through the Locker; each one runs against a grid.Store loaded
// from the repository.
type BoardService struct {
	repo      i.BoardRepo
	locker    i.Locker
	publisher i.Publisher
	tokenizer i.Tokenizer
	logger    *log.Logger
	defaults  grid.StoreConfig
	tokenTTL  time.Duration
	rng       *rand.Rand
	rngMu     sync.Mutex
}

// NewBoardService creates a BoardService from c.
func NewBoardService(c *Config) (*BoardService, error) {
	if c == nil || c.Repo == nil || c.Locker == nil || c.Tokenizer == nil {
		return nil, fmt.Errorf("%w: repo, locker and tokenizer are required", ErrMissingDependency)
	}
	if c.Defaults.InitialRows <= 0 || c.Defaults.InitialCols <= 0 ||
		c.Defaults.InitialRows > MaxDimension || c.Defaults.InitialCols > MaxDimension {
		return nil, fmt.Errorf("%w: default %dx%d", ErrInvalidDimensions, c.Defaults.InitialRows, c.Defaults.InitialCols)
	}

	bs := &BoardService{
		repo:      c.Repo,
		locker:    c.Locker,
		publisher: c.Publisher,
		tokenizer: c.Tokenizer,
		logger:    c.Logger,
		defaults:  c.Defaults,
		tokenTTL:  c.TokenTTL,
		rng:       c.Rand,
	}
	bs.defaults.OnChange = nil

	if bs.logger == nil {
		bs.logger = log.New(os.Stdout, "BOARD: ", log.LstdFlags)
	}
	if bs.tokenTTL <= 0 {
		bs.tokenTTL = defaultTokenTTL
	}
	if bs.rng == nil {
		bs.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return bs, nil
}

// Create initializes a board with the default size and issues its edit token.
func (bs *BoardService) Create(ctx context.Context) (*dmn.Board, string, error) {
	board := &dmn.Board{ID: uuid.New()}
	store := bs.newStore(board, nil)
	store.Initialize()
	bs.commit(board, store)

	if err := bs.repo.Save(ctx, board); err != nil {
		bs.logger.Printf("%s[ERROR]%s saving new board %s: %s", config.LogErrorColor, config.LogColorReset, board.ID, err)
		return nil, "", err
	}

	token, err := bs.tokenizer.Generate(map[string]interface{}{
		ClaimBoardID: board.ID.String(),
	}, bs.tokenTTL)
	if err != nil {
		bs.logger.Printf("%s[ERROR]%s issuing token for board %s: %s", config.LogErrorColor, config.LogColorReset, board.ID, err)
		return nil, "", err
	}

	bs.publish(ctx, board, dmn.ActionCreate)
	bs.logger.Printf("%s[INFO]%s created board %s (%dx%d)", config.LogInfoColor, config.LogColorReset, board.ID, board.Rows, board.Cols)
	return board, token, nil
}

// Get returns the current state of a board.
func (bs *BoardService) Get(ctx context.Context, id uuid.UUID) (*dmn.Board, error) {
	return bs.repo.ByID(ctx, id)
}

// Delete removes a board.
func (bs *BoardService) Delete(ctx context.Context, id uuid.UUID) error {
	unlock, err := bs.locker.Lock(ctx, id.String())
	if err != nil {
		return err
	}
	defer unlock()

	if err := bs.repo.Delete(ctx, id); err != nil {
		return err
	}
	bs.logger.Printf("%s[INFO]%s deleted board %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}

// Apply runs req against the board with the given id. The board is saved and
// a change event published only when the action changed the grid.
func (bs *BoardService) Apply(ctx context.Context, id uuid.UUID, req i.ActionRequest) (*dmn.Board, error) {
	board, err := bs.apply(ctx, id, req)
	actionsTotal.WithLabelValues(actionLabel(req.Action), resultLabel(err)).Inc()
	return board, err
}

func (bs *BoardService) apply(ctx context.Context, id uuid.UUID, req i.ActionRequest) (*dmn.Board, error) {
	if _, err := grid.ParseAction(string(req.Action)); err != nil {
		return nil, err
	}

	unlock, err := bs.locker.Lock(ctx, id.String())
	if err != nil {
		return nil, err
	}
	defer unlock()

	board, err := bs.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	store := bs.newStore(board, func(grid.Grid) { changed = true })
	if err := bs.dispatch(store, req); err != nil {
		return nil, err
	}

	rows, cols := store.Counters()
	if !changed && rows == board.Rows && cols == board.Cols {
		return board, nil
	}

	bs.commit(board, store)
	if err := bs.repo.Save(ctx, board); err != nil {
		bs.logger.Printf("%s[ERROR]%s saving board %s after %s: %s", config.LogErrorColor, config.LogColorReset, id, req.Action, err)
		return nil, err
	}

	bs.publish(ctx, board, req.Action)
	return board, nil
}

// dispatch runs req on store.
func (bs *BoardService) dispatch(store *grid.Store, req i.ActionRequest) error {
	if store.Apply(req.Action) {
		return nil
	}

	switch req.Action {
	case grid.ActionToggleWall:
		if !store.ToggleWall(req.Row, req.Col) {
			return fmt.Errorf("%w: (%d, %d)", ErrInvalidCell, req.Row, req.Col)
		}
	case grid.ActionResize:
		if !validDimensions(req.Rows, req.Cols) {
			return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, req.Rows, req.Cols)
		}
		store.SetCounters(req.Rows, req.Cols)
		store.Initialize()
	case grid.ActionCarveMaze:
		bs.rngMu.Lock()
		defer bs.rngMu.Unlock()
		store.Replace(maze.Carve(store.Grid(), bs.rng))
	case grid.ActionScatterWalls:
		bs.rngMu.Lock()
		defer bs.rngMu.Unlock()
		g, err := maze.Scatter(store.Grid(), req.Density, bs.rng)
		if err != nil {
			return err
		}
		store.Replace(g)
	default:
		return fmt.Errorf("%w: %q", grid.ErrUnknownAction, req.Action)
	}
	return nil
}

// newStore wraps board in a grid.Store seeded with the board's grid and counters.
func (bs *BoardService) newStore(board *dmn.Board, onChange func(grid.Grid)) *grid.Store {
	cfg := bs.defaults
	cfg.OnChange = onChange
	store := grid.NewStore(cfg)
	if board.Version > 0 {
		store.SetCounters(board.Rows, board.Cols)
		store.Load(board.Grid)
	}
	return store
}

// commit copies the store state back into board and bumps its version.
func (bs *BoardService) commit(board *dmn.Board, store *grid.Store) {
	board.Grid = store.Grid()
	board.Rows, board.Cols = store.Counters()
	board.Version++
	board.UpdatedAt = time.Now().UTC()
}

func (bs *BoardService) publish(ctx context.Context, board *dmn.Board, action grid.Action) {
	if bs.publisher == nil {
		return
	}
	if err := bs.publisher.Publish(ctx, dmn.NewBoardChanged(board, action)); err != nil {
		bs.logger.Printf("%s[ERROR]%s publishing %s for board %s: %s", config.LogErrorColor, config.LogColorReset, action, board.ID, err)
	}
}

func validDimensions(rows, cols int) bool {
	return rows > 0 && cols > 0 && rows <= MaxDimension && cols <= MaxDimension
}
