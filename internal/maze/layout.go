// Package maze implements the maze kernel: the occupancy grid and its
// collision queries, the all-or-nothing movement resolver, A* routing, the
// frightened escape heuristic and the ghost state machine.
//
// Everything here is pure game logic driven by the caller's tick: there is no
// clock, no goroutine and no I/O in this package.
package maze

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/vovakirdan/mazechase/internal/core"
)

var (
	// ErrNotFound reports that no map exists for the requested level.
	ErrNotFound = errors.New("maze: map not found")

	// ErrCorruptMap reports map data that fails schema checks.
	ErrCorruptMap = errors.New("maze: corrupt map")
)

// CellKind is the occupancy of one grid cell. The numeric values are the
// persisted encoding.
type CellKind uint8

const (
	Open CellKind = 0
	Wall CellKind = 1
)

// Cell addresses one grid square by column and row.
type Cell struct {
	X, Y int
}

// Key returns the "x,y" form used by map files and logs.
func (c Cell) Key() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return "(" + c.Key() + ")"
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns |dx|+|dy| between two cells.
func (c Cell) Manhattan(other Cell) int {
	return core.Abs(c.X-other.X) + core.Abs(c.Y-other.Y)
}

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a cell.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Has reports whether the cell is in the set. A nil set is empty.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Layout is the persisted description of one level: the wall grid, its wall
// color, the power pellet cells and optional spawn cells. Every open cell that
// is not a power pellet holds a dot.
type Layout struct {
	Rows         [][]CellKind
	WallColor    string
	PowerPellets CellSet
	PlayerSpawn  *Cell
	GhostSpawns  []Cell
}

// Width returns the number of columns.
func (l Layout) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

// Height returns the number of rows.
func (l Layout) Height() int {
	return len(l.Rows)
}

// KindAt returns the cell kind, treating out-of-range cells as walls.
func (l Layout) KindAt(c Cell) CellKind {
	if c.Y < 0 || c.Y >= len(l.Rows) || c.X < 0 || c.X >= len(l.Rows[c.Y]) {
		return Wall
	}
	return l.Rows[c.Y][c.X]
}

// Validate checks the layout's shape and markers. Errors wrap ErrCorruptMap.
func (l Layout) Validate() error {
	if l.Height() == 0 || l.Width() == 0 {
		return fmt.Errorf("%w: empty grid", ErrCorruptMap)
	}
	w := l.Width()
	for y, row := range l.Rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrCorruptMap, y, len(row), w)
		}
		for x, k := range row {
			if k != Open && k != Wall {
				return fmt.Errorf("%w: cell %d,%d has kind %d", ErrCorruptMap, x, y, k)
			}
		}
	}
	for c := range l.PowerPellets {
		if l.KindAt(c) != Open {
			return fmt.Errorf("%w: power pellet %s is not on an open cell", ErrCorruptMap, c.Key())
		}
	}
	if l.PlayerSpawn != nil && l.KindAt(*l.PlayerSpawn) != Open {
		return fmt.Errorf("%w: player spawn %s is not on an open cell", ErrCorruptMap, l.PlayerSpawn.Key())
	}
	for _, c := range l.GhostSpawns {
		if l.KindAt(c) != Open {
			return fmt.Errorf("%w: ghost spawn %s is not on an open cell", ErrCorruptMap, c.Key())
		}
	}
	return nil
}
