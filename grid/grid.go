/*
Package grid provides the rectangular cell grid used by the pathfinding
visualizer together with its shape-editing operations.

A Grid is an ordered collection of rows of *Node handles. Every operation in
this package returns a new Grid value and never writes into the one it was
given: rows that change are rebuilt on fresh slices, nodes are shared by
handle so their identity survives edits.

Several operations deliberately keep the coordinate labelling of the
visualizer they were built for: rows and columns inserted in front of the
grid are labelled with the pre-insertion size, and Transpose moves nodes
without rewriting their Row/Col fields.
*/
package grid

import (
	"strings"

	"github.com/google/uuid"
)

// Grid is an ordered sequence of rows of nodes.
type Grid [][]*Node

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the length of the first row, or 0 for a grid without rows.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsEmpty reports whether the grid has no rows.
func (g Grid) IsEmpty() bool {
	return len(g) == 0
}

// Size returns the number of nodes held by the grid.
func (g Grid) Size() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// IsRectangular reports whether all rows have the same length.
func (g Grid) IsRectangular() bool {
	for _, row := range g {
		if len(row) != g.Cols() {
			return false
		}
	}
	return true
}

// InBound reports whether (row, col) addresses a node of the grid.
func (g Grid) InBound(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g[row])
}

// At returns the node at (row, col) or nil when out of range.
func (g Grid) At(row, col int) *Node {
	if !g.InBound(row, col) {
		return nil
	}
	return g[row][col]
}

// Find returns the node with the given id and its position in the grid.
func (g Grid) Find(id uuid.UUID) (*Node, Coord, bool) {
	for r, row := range g {
		for c, n := range row {
			if n != nil && n.ID == id {
				return n, Coord{Row: r, Col: c}, true
			}
		}
	}
	return nil, Coord{}, false
}

// Previous resolves the back reference of n within g.
func (g Grid) Previous(n *Node) (*Node, bool) {
	if n == nil || !n.Previous.Valid {
		return nil, false
	}
	prev, _, ok := g.Find(n.Previous.UUID)
	return prev, ok
}

// Clone returns a grid with fresh row slices holding the same nodes.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = cloneRow(row)
	}
	return out
}

// String renders the grid with one character per node:
// S start, F finish, # wall, . open.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, n := range row {
			switch {
			case n == nil:
				sb.WriteByte(' ')
			case n.IsStart:
				sb.WriteByte('S')
			case n.IsFinish:
				sb.WriteByte('F')
			case n.IsWall:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func cloneRow(row []*Node) []*Node {
	out := make([]*Node, len(row), len(row)+1)
	copy(out, row)
	return out
}

// Initialize builds a rows x cols grid of fresh nodes.
func Initialize(rows, cols int, f *NodeFactory) Grid {
	if rows <= 0 || cols <= 0 {
		return Grid{}
	}
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]*Node, cols)
		for c := range g[r] {
			g[r][c] = f.CreateNode(r, c)
		}
	}
	return g
}

// newRow builds the row that AddRowAfter and AddRowBefore insert. Its nodes
// are labelled with the pre-insertion row count.
func newRow(g Grid, f *NodeFactory) []*Node {
	row := make([]*Node, g.Cols())
	for c := range row {
		row[c] = f.CreateNode(len(g), c)
	}
	return row
}

// AddRowAfter appends a new row. A grid without rows is returned unchanged.
func AddRowAfter(g Grid, f *NodeFactory) Grid {
	if g.IsEmpty() {
		return g
	}
	out := make(Grid, 0, len(g)+1)
	out = append(out, g...)
	return append(out, newRow(g, f))
}

// AddRowBefore prepends a new row. The new nodes carry Row = len(g), not 0.
func AddRowBefore(g Grid, f *NodeFactory) Grid {
	if g.IsEmpty() {
		return g
	}
	out := make(Grid, 0, len(g)+1)
	out = append(out, newRow(g, f))
	return append(out, g...)
}

// AddColumnAfter appends a node to every row, labelled (r, len(row)).
func AddColumnAfter(g Grid, f *NodeFactory) Grid {
	if g.IsEmpty() {
		return g
	}
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append(cloneRow(row), f.CreateNode(r, len(row)))
	}
	return out
}

// AddColumnBefore prepends a node to every row. Like AddColumnAfter the new
// node is labelled (r, len(row)), not (r, 0).
func AddColumnBefore(g Grid, f *NodeFactory) Grid {
	if g.IsEmpty() {
		return g
	}
	out := make(Grid, len(g))
	for r, row := range g {
		next := make([]*Node, 0, len(row)+1)
		next = append(next, f.CreateNode(r, len(row)))
		out[r] = append(next, row...)
	}
	return out
}

// DeleteColumn drops the last node of every row. Empty rows stay empty.
func DeleteColumn(g Grid) Grid {
	if g.IsEmpty() {
		return g
	}
	out := make(Grid, len(g))
	for r, row := range g {
		if len(row) == 0 {
			out[r] = []*Node{}
			continue
		}
		out[r] = cloneRow(row[:len(row)-1])
	}
	return out
}

// DeleteRow drops the last row.
func DeleteRow(g Grid) Grid {
	if g.IsEmpty() {
		return g
	}
	out := make(Grid, len(g)-1)
	copy(out, g)
	return out
}

// Transpose reflects the grid across its main diagonal. Nodes keep their
// declared Row/Col. The grid must be rectangular.
func Transpose(g Grid) Grid {
	if g.IsEmpty() || g.Cols() == 0 {
		return g
	}
	out := make(Grid, g.Cols())
	for i := range out {
		out[i] = make([]*Node, len(g))
		for j := range g {
			out[i][j] = g[j][i]
		}
	}
	return out
}

// ToggleWall returns a grid in which the node at (row, col) is replaced by a
// copy with IsWall flipped. Start and finish nodes cannot become walls.
func ToggleWall(g Grid, row, col int) (Grid, bool) {
	n := g.At(row, col)
	if n == nil || n.IsStart || n.IsFinish {
		return g, false
	}
	flipped := n.clone()
	flipped.IsWall = !flipped.IsWall
	return Replace(g, row, col, flipped), true
}

// Replace returns a grid in which position (row, col) holds n. Only the
// affected row is copied.
func Replace(g Grid, row, col int, n *Node) Grid {
	if !g.InBound(row, col) {
		return g
	}
	out := make(Grid, len(g))
	copy(out, g)
	out[row] = cloneRow(g[row])
	out[row][col] = n
	return out
}

// Map returns a grid whose nodes are fn applied to copies of the original
// nodes. fn reports whether it changed the copy; untouched nodes keep their
// original handle.
func Map(g Grid, fn func(pos Coord, n *Node) bool) Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = cloneRow(row)
		for c, n := range row {
			if n == nil {
				continue
			}
			cp := n.clone()
			if fn(Coord{Row: r, Col: c}, cp) {
				out[r][c] = cp
			}
		}
	}
	return out
}
