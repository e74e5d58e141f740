package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazechase/internal/core"
)

func TestNewGridRejectsBadShapes(t *testing.T) {
	_, err := NewGrid(nil, testCellSize)
	assert.True(t, errors.Is(err, ErrCorruptMap))

	_, err = NewGrid(parseRows("...", ".."), testCellSize)
	assert.True(t, errors.Is(err, ErrCorruptMap))

	_, err = NewGrid(parseRows("..."), 0)
	assert.Error(t, err)
}

func TestGridWallsAndKinds(t *testing.T) {
	g := mustGrid(t,
		"#.#",
		"...",
	)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, []core.Rect{
		core.NewRect(0, 0, 16, 16),
		core.NewRect(32, 0, 16, 16),
	}, g.Walls())
	assert.Equal(t, Wall, g.Kind(Cell{X: 0, Y: 0}))
	assert.Equal(t, Open, g.Kind(Cell{X: 1, Y: 0}))
	assert.Panics(t, func() { g.Kind(Cell{X: 3, Y: 0}) })
}

func TestGridIsBlocked(t *testing.T) {
	g := mustGrid(t,
		"...",
		".#.",
		"...",
	)

	tests := []struct {
		name string
		r    core.Rect
		want bool
	}{
		{"open cell", core.NewRect(0, 0, 16, 16), false},
		{"wall cell", core.NewRect(16, 16, 16, 16), true},
		{"one pixel into wall", core.NewRect(1, 16, 16, 16), true},
		{"touching wall edge", core.NewRect(0, 16, 16, 16), false},
		{"past left edge", core.NewRect(-1, 0, 16, 16), true},
		{"past bottom edge", core.NewRect(0, 33, 16, 16), true},
		{"flush with far corner", core.NewRect(32, 32, 16, 16), false},
		{"empty rect", core.NewRect(20, 20, 0, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsBlocked(tc.r))
		})
	}

	assert.Panics(t, func() { g.IsBlocked(core.NewRect(0, 0, -1, 16)) })
}

func TestGridNeighborsOrder(t *testing.T) {
	g := openGrid(t, 3, 3)

	assert.Equal(t,
		[]Cell{{1, 2}, {2, 1}, {1, 0}, {0, 1}},
		g.Neighbors(Cell{X: 1, Y: 1}),
		"neighbours must come down, right, up, left")

	// Corners drop the out-of-grid cells.
	assert.Equal(t, []Cell{{0, 1}, {1, 0}}, g.Neighbors(Cell{X: 0, Y: 0}))
}

func TestGridNeighborsSkipWalls(t *testing.T) {
	g := mustGrid(t,
		".#.",
		"...",
		".#.",
	)
	assert.Equal(t, []Cell{{2, 1}, {0, 1}}, g.Neighbors(Cell{X: 1, Y: 1}))
}

func TestPixelCellConversion(t *testing.T) {
	g := openGrid(t, 4, 4)

	assert.Equal(t, Cell{X: 0, Y: 0}, g.PixelToCell(15, 15))
	assert.Equal(t, Cell{X: 1, Y: 2}, g.PixelToCell(16, 47))
	assert.Equal(t, Cell{X: -1, Y: 0}, g.PixelToCell(-1, 0))

	x, y := g.CellToPixel(Cell{X: 3, Y: 2})
	assert.Equal(t, 48, x)
	assert.Equal(t, 32, y)

	// Round trip loses the sub-cell offset.
	c := g.PixelToCell(37, 21)
	x, y = g.CellToPixel(c)
	assert.Equal(t, 32, x)
	assert.Equal(t, 16, y)
}

func TestLayoutValidate(t *testing.T) {
	valid := Layout{
		Rows:         parseRows("#####", "#...#", "#####"),
		PowerPellets: NewCellSet(Cell{X: 1, Y: 1}),
		PlayerSpawn:  &Cell{X: 2, Y: 1},
		GhostSpawns:  []Cell{{X: 3, Y: 1}},
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.PowerPellets = NewCellSet(Cell{X: 0, Y: 0})
	assert.ErrorIs(t, bad.Validate(), ErrCorruptMap)

	bad = valid
	bad.GhostSpawns = []Cell{{X: 9, Y: 9}}
	assert.ErrorIs(t, bad.Validate(), ErrCorruptMap)

	bad = valid
	bad.Rows = [][]CellKind{{0, 1}, {0}}
	assert.ErrorIs(t, bad.Validate(), ErrCorruptMap)

	bad = valid
	bad.Rows = [][]CellKind{{0, 2}}
	bad.PlayerSpawn = nil
	bad.GhostSpawns = nil
	bad.PowerPellets = nil
	assert.ErrorIs(t, bad.Validate(), ErrCorruptMap)
}

func TestCellKeys(t *testing.T) {
	c := Cell{X: 12, Y: 7}
	assert.Equal(t, "12,7", c.Key())

	set := NewCellSet(Cell{X: 3, Y: 1}, Cell{X: 1, Y: 2}, Cell{X: 0, Y: 1})
	assert.Equal(t, []Cell{{0, 1}, {3, 1}, {1, 2}}, set.Sorted())
	assert.False(t, CellSet(nil).Has(Cell{}))
}
