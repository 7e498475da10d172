package grid

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
)

// Coord identifies a grid position by row and column.
type Coord struct {
	Row int `json:"row" bson:"row"` // Row index, 0-based
	Col int `json:"col" bson:"col"` // Column index, 0-based
}

// Node represents a single addressable cell of the grid.
// Row and Col are the coordinates the node was created with; structural
// operations move nodes around without rewriting them.
type Node struct {
	ID        uuid.UUID     `json:"id" bson:"id"`               // Stable identity of the node.
	Row       int           `json:"row" bson:"row"`             // Declared row index.
	Col       int           `json:"col" bson:"col"`             // Declared column index.
	Distance  float64       `json:"distance" bson:"distance"`   // Owned by pathfinding algorithms.
	IsWall    bool          `json:"isWall" bson:"isWall"`       // Blocks traversal when true.
	IsVisited bool          `json:"isVisited" bson:"isVisited"` // Owned by pathfinding algorithms.
	Previous  uuid.NullUUID `json:"previousNode" bson:"previousNode"`
	IsStart   bool          `json:"isStart" bson:"isStart"`
	IsFinish  bool          `json:"isFinish" bson:"isFinish"`
}

// Coord returns the declared coordinates of the node.
func (n *Node) Coord() Coord {
	return Coord{Row: n.Row, Col: n.Col}
}

// clone returns a shallow copy sharing the same identity.
func (n *Node) clone() *Node {
	c := *n
	return &c
}

// nodeJSON mirrors Node with an encodable distance; +Inf travels as null.
type nodeJSON struct {
	ID        uuid.UUID  `json:"id"`
	Row       int        `json:"row"`
	Col       int        `json:"col"`
	Distance  *float64   `json:"distance"`
	IsWall    bool       `json:"isWall"`
	IsVisited bool       `json:"isVisited"`
	Previous  *uuid.UUID `json:"previousNode"`
	IsStart   bool       `json:"isStart"`
	IsFinish  bool       `json:"isFinish"`
}

// MarshalJSON implements json.Marshaler.
func (n Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		ID:        n.ID,
		Row:       n.Row,
		Col:       n.Col,
		IsWall:    n.IsWall,
		IsVisited: n.IsVisited,
		IsStart:   n.IsStart,
		IsFinish:  n.IsFinish,
	}
	if !math.IsInf(n.Distance, 0) && !math.IsNaN(n.Distance) {
		d := n.Distance
		out.Distance = &d
	}
	if n.Previous.Valid {
		id := n.Previous.UUID
		out.Previous = &id
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in nodeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*n = Node{
		ID:        in.ID,
		Row:       in.Row,
		Col:       in.Col,
		Distance:  math.Inf(1),
		IsWall:    in.IsWall,
		IsVisited: in.IsVisited,
		IsStart:   in.IsStart,
		IsFinish:  in.IsFinish,
	}
	if in.Distance != nil {
		n.Distance = *in.Distance
	}
	if in.Previous != nil {
		n.Previous = uuid.NullUUID{UUID: *in.Previous, Valid: true}
	}
	return nil
}

// NodeFactory creates nodes, flagging the ones that sit on the configured
// start and finish coordinates.
type NodeFactory struct {
	start  Coord
	finish Coord
	newID  func() uuid.UUID
}

// NewNodeFactory returns a factory for the given start and finish coordinates.
func NewNodeFactory(start, finish Coord) *NodeFactory {
	return &NodeFactory{
		start:  start,
		finish: finish,
		newID:  uuid.New,
	}
}

// Start returns the configured start coordinates.
func (f *NodeFactory) Start() Coord { return f.start }

// Finish returns the configured finish coordinates.
func (f *NodeFactory) Finish() Coord { return f.finish }

// CreateNode returns a fresh node for (row, col) with a new id.
func (f *NodeFactory) CreateNode(row, col int) *Node {
	pos := Coord{Row: row, Col: col}
	return &Node{
		ID:       f.newID(),
		Row:      row,
		Col:      col,
		Distance: math.Inf(1),
		IsStart:  pos == f.start,
		IsFinish: pos == f.finish,
	}
}
