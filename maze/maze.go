/*
Package maze fills a grid with wall patterns.

Carve lays a perfect maze over the grid with Wilson's algorithm: nodes at
even (row, col) positions are passages, every other node starts as a wall and
the walls between neighbouring passages are opened along loop-erased random
walks. Scatter drops walls at random with a given density.

Both functions return a new grid and leave their input untouched; start and
finish nodes are never turned into walls.
*/
package maze

import (
	"errors"
	"math/rand"

	"github.com/nhanhuynh123/pathgrid/grid"
)

var (
	// Directions lists the lattice steps in a fixed order so that a seeded
	// generator yields the same maze every time.
	Directions = []grid.Coord{
		{Row: -1, Col: 0}, // North
		{Row: 1, Col: 0},  // South
		{Row: 0, Col: 1},  // East
		{Row: 0, Col: -1}, // West
	}

	ErrInvalidDensity = errors.New("density must be between 0 and 1")
)

// lattice is the set of passage cells of a grid, addressed in lattice
// coordinates (grid position divided by two).
type lattice struct {
	Width  int // Number of passage columns
	Height int // Number of passage rows
}

func newLattice(g grid.Grid) lattice {
	return lattice{Width: (g.Cols() + 1) / 2, Height: (g.Rows() + 1) / 2}
}

func (l lattice) size() int {
	return l.Width * l.Height
}

// randomCellPosition generates a random position within the lattice.
func (l lattice) randomCellPosition(rng *rand.Rand) grid.Coord {
	return grid.Coord{Row: rng.Intn(l.Height), Col: rng.Intn(l.Width)}
}

// randomUnvisitedCellPosition selects a random position that has not been visited.
func (l lattice) randomUnvisitedCellPosition(rng *rand.Rand, visited map[grid.Coord]struct{}) grid.Coord {
	for {
		pos := l.randomCellPosition(rng)
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors finds all lattice positions adjacent to pos.
func (l lattice) neighbors(pos grid.Coord) []grid.Coord {
	var result []grid.Coord
	for _, delta := range Directions {
		n := grid.Coord{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
		if n.Row >= 0 && n.Row < l.Height && n.Col >= 0 && n.Col < l.Width {
			result = append(result, n)
		}
	}
	return result
}

// randomWalk walks from an unvisited cell until it reaches the visited set.
// Only the last exit taken from each cell is kept, which erases loops.
func (l lattice) randomWalk(rng *rand.Rand, visited map[grid.Coord]struct{}) (grid.Coord, map[grid.Coord]grid.Coord) {
	start := l.randomUnvisitedCellPosition(rng, visited)
	exits := make(map[grid.Coord]grid.Coord)
	cell := start

	for {
		neighbors := l.neighbors(cell)
		next := neighbors[rng.Intn(len(neighbors))]
		exits[cell] = next
		if _, included := visited[next]; included {
			break
		}
		cell = next
	}

	return start, exits
}

// openings returns the grid positions that are open in a maze carved over l.
func (l lattice) openings(rng *rand.Rand) map[grid.Coord]struct{} {
	open := make(map[grid.Coord]struct{}, 2*l.size())
	for r := 0; r < l.Height; r++ {
		for c := 0; c < l.Width; c++ {
			open[grid.Coord{Row: 2 * r, Col: 2 * c}] = struct{}{}
		}
	}
	if l.size() < 2 {
		return open
	}

	visited := map[grid.Coord]struct{}{l.randomCellPosition(rng): {}}
	for len(visited) < l.size() {
		start, exits := l.randomWalk(rng, visited)
		for cell := start; ; {
			if _, done := visited[cell]; done {
				break
			}
			next := exits[cell]
			open[grid.Coord{Row: cell.Row + next.Row, Col: cell.Col + next.Col}] = struct{}{}
			visited[cell] = struct{}{}
			cell = next
		}
	}

	return open
}

// Carve returns g with a perfect maze laid over it.
func Carve(g grid.Grid, rng *rand.Rand) grid.Grid {
	if g.IsEmpty() || g.Cols() == 0 {
		return g
	}

	open := newLattice(g).openings(rng)
	return grid.Map(g, func(pos grid.Coord, n *grid.Node) bool {
		_, isOpen := open[pos]
		wall := !isOpen && !n.IsStart && !n.IsFinish
		if n.IsWall == wall {
			return false
		}
		n.IsWall = wall
		return true
	})
}

// Scatter returns g where every node other than start and finish is a wall
// with probability density.
func Scatter(g grid.Grid, density float64, rng *rand.Rand) (grid.Grid, error) {
	if density < 0 || density > 1 {
		return nil, ErrInvalidDensity
	}

	return grid.Map(g, func(_ grid.Coord, n *grid.Node) bool {
		wall := rng.Float64() < density && !n.IsStart && !n.IsFinish
		if n.IsWall == wall {
			return false
		}
		n.IsWall = wall
		return true
	}), nil
}

// RandomInt returns a uniform integer in [min, max].
func RandomInt(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return rng.Intn(max-min+1) + min
}
