package grid

// StoreConfig holds the settings used to build a Store.
type StoreConfig struct {
	InitialRows int        // Rows used by Reset and the initial counters
	InitialCols int        // Columns used by Reset and the initial counters
	Start       Coord      // Coordinates flagged IsStart on creation
	Finish      Coord      // Coordinates flagged IsFinish on creation
	OnChange    func(Grid) // Called with every newly published grid
}

// Store owns the current grid and publishes a new value after every edit.
// It is meant to be driven from a single goroutine.
type Store struct {
	grid        Grid
	rows        int
	cols        int
	initialRows int
	initialCols int
	factory     *NodeFactory
	onChange    func(Grid)
}

// NewStore creates a Store with an empty grid. Call Initialize to populate it.
func NewStore(c StoreConfig) *Store {
	return &Store{
		grid:        Grid{},
		rows:        c.InitialRows,
		cols:        c.InitialCols,
		initialRows: c.InitialRows,
		initialCols: c.InitialCols,
		factory:     NewNodeFactory(c.Start, c.Finish),
		onChange:    c.OnChange,
	}
}

// Grid returns the current grid.
func (s *Store) Grid() Grid { return s.grid }

// Factory returns the node factory used for new nodes.
func (s *Store) Factory() *NodeFactory { return s.factory }

// Counters returns the requested row and column counts.
func (s *Store) Counters() (rows, cols int) { return s.rows, s.cols }

// SetCounters records the requested size without touching the grid.
func (s *Store) SetCounters(rows, cols int) {
	s.rows, s.cols = rows, cols
}

// Load adopts g as the current grid without notifying.
func (s *Store) Load(g Grid) {
	if g == nil {
		g = Grid{}
	}
	s.grid = g
}

// Initialize replaces the grid with a fresh one sized by the counters.
func (s *Store) Initialize() {
	s.publish(Initialize(s.rows, s.cols, s.factory))
}

// Reset restores the initial counters and rebuilds the grid from them.
// Walls and algorithm state are discarded.
func (s *Store) Reset() {
	s.rows, s.cols = s.initialRows, s.initialCols
	s.Initialize()
}

// Structural edits. Each one publishes the resulting grid unless the
// operation was a no-op on an empty grid.

func (s *Store) AddRowAfter()     { s.update(AddRowAfter(s.grid, s.factory)) }
func (s *Store) AddRowBefore()    { s.update(AddRowBefore(s.grid, s.factory)) }
func (s *Store) AddColumnAfter()  { s.update(AddColumnAfter(s.grid, s.factory)) }
func (s *Store) AddColumnBefore() { s.update(AddColumnBefore(s.grid, s.factory)) }
func (s *Store) DeleteColumn()    { s.update(DeleteColumn(s.grid)) }
func (s *Store) DeleteRow()       { s.update(DeleteRow(s.grid)) }
func (s *Store) Transpose()       { s.update(Transpose(s.grid)) }

// ToggleWall flips the wall flag of the node at (row, col).
func (s *Store) ToggleWall(row, col int) bool {
	g, ok := ToggleWall(s.grid, row, col)
	if ok {
		s.publish(g)
	}
	return ok
}

// Replace publishes g as the new grid.
func (s *Store) Replace(g Grid) {
	s.update(g)
}

// Apply runs a structural action. It returns false for actions it does not
// handle.
func (s *Store) Apply(a Action) bool {
	switch a {
	case ActionAddRowAfter:
		s.AddRowAfter()
	case ActionAddRowBefore:
		s.AddRowBefore()
	case ActionAddColumnBefore:
		s.AddColumnBefore()
	case ActionAddColumnAfter:
		s.AddColumnAfter()
	case ActionDeleteColumn:
		s.DeleteColumn()
	case ActionDeleteRow:
		s.DeleteRow()
	case ActionTranspose:
		s.Transpose()
	case ActionReset:
		s.Reset()
	default:
		return false
	}
	return true
}

// update publishes g unless the operation hit a no-op guard and returned the
// current grid itself.
func (s *Store) update(g Grid) {
	if sameGrid(g, s.grid) {
		return
	}
	s.publish(g)
}

func (s *Store) publish(g Grid) {
	s.grid = g
	if s.onChange != nil {
		s.onChange(g)
	}
}

// sameGrid reports whether a and b are the same slice value.
func sameGrid(a, b Grid) bool {
	if len(a) != len(b) || cap(a) != cap(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
