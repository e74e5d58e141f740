package maze

import (
	"fmt"

	"github.com/vovakirdan/mazechase/internal/core"
)

// Blocker answers rectangle occupancy queries.
type Blocker interface {
	IsBlocked(r core.Rect) bool
}

// Navigator lists the passable neighbours of a cell.
type Navigator interface {
	Neighbors(c Cell) []Cell
}

// neighborOrder is the expansion order used by Neighbors. A* tie-breaking
// depends on it, so it must not change.
var neighborOrder = [4]Direction{Down, Right, Up, Left}

// Grid is the immutable occupancy grid of a level.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	w, h     int
	cellSize int
	cells    []CellKind
	walls    []core.Rect
}

// NewGrid builds a grid from layout rows. All rows must have the same length.
func NewGrid(rows [][]CellKind, cellSize int) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("maze: cell size must be positive, got %d", cellSize)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrCorruptMap)
	}

	g := &Grid{
		w:        len(rows[0]),
		h:        len(rows),
		cellSize: cellSize,
	}
	g.cells = make([]CellKind, 0, g.w*g.h)
	for y, row := range rows {
		if len(row) != g.w {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrCorruptMap, y, len(row), g.w)
		}
		for x, k := range row {
			g.cells = append(g.cells, k)
			if k == Wall {
				g.walls = append(g.walls, g.CellRect(Cell{X: x, Y: y}))
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// CellSize returns the side of one cell in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// Bounds returns the pixel rectangle covered by the grid.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.w*g.cellSize, g.h*g.cellSize)
}

// Walls returns one pixel rectangle per wall cell, row-major.
// The slice is shared; callers must not modify it.
func (g *Grid) Walls() []core.Rect {
	return g.walls
}

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Kind returns the kind of an in-grid cell. Asking for a cell outside the grid
// is a caller bug and panics.
func (g *Grid) Kind(c Cell) CellKind {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("maze: cell %s outside %dx%d grid", c, g.w, g.h))
	}
	return g.cells[c.Y*g.w+c.X]
}

// CellRect returns the pixel rectangle of a cell.
func (g *Grid) CellRect(c Cell) core.Rect {
	return core.NewRect(c.X*g.cellSize, c.Y*g.cellSize, g.cellSize, g.cellSize)
}

// PixelToCell converts a pixel position to the cell containing it (floor
// division, so negative pixels map to negative cells).
func (g *Grid) PixelToCell(x, y int) Cell {
	return Cell{X: floorDiv(x, g.cellSize), Y: floorDiv(y, g.cellSize)}
}

// CellToPixel returns the top-left pixel of a cell.
func (g *Grid) CellToPixel(c Cell) (int, int) {
	return c.X * g.cellSize, c.Y * g.cellSize
}

// IsBlocked reports whether r overlaps any wall cell or extends past the grid
// edge. Rectangles with negative size panic.
func (g *Grid) IsBlocked(r core.Rect) bool {
	if !r.Valid() {
		panic(fmt.Sprintf("maze: malformed rect %+v", r))
	}
	if r.W == 0 || r.H == 0 {
		return false
	}
	b := g.Bounds()
	if r.X < b.X || r.Y < b.Y || r.Right() > b.Right() || r.Bottom() > b.Bottom() {
		return true
	}

	// Only the cells under the rect can overlap it.
	first := g.PixelToCell(r.X, r.Y)
	last := g.PixelToCell(r.Right()-1, r.Bottom()-1)
	for y := first.Y; y <= last.Y; y++ {
		for x := first.X; x <= last.X; x++ {
			if g.cells[y*g.w+x] == Wall {
				return true
			}
		}
	}
	return false
}

// Neighbors returns the in-grid orthogonal neighbours of c that are not
// blocked, ordered down, right, up, left.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOrder {
		n := c.Step(d)
		if !g.InBounds(n) {
			continue
		}
		if g.IsBlocked(g.CellRect(n)) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
