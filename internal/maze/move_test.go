package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazechase/internal/core"
)

func TestTryMoveOpenAndBlocked(t *testing.T) {
	g := mustGrid(t,
		"...",
		".#.",
	)
	start := core.NewRect(0, 0, 16, 16)

	next, ok := TryMove(start, Right, 2, g)
	assert.True(t, ok)
	assert.Equal(t, core.NewRect(2, 0, 16, 16), next)

	// Moving down from (16, 0) would enter the wall cell.
	atTop := core.NewRect(16, 0, 16, 16)
	next, ok = TryMove(atTop, Down, 1, g)
	assert.False(t, ok)
	assert.Equal(t, atTop, next, "a blocked move keeps the original rect")

	// The grid edge blocks as well.
	next, ok = TryMove(start, Up, 1, g)
	assert.False(t, ok)
	assert.Equal(t, start, next)
}

func TestTryMoveNeverEntersWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		w, h := 4+rng.Intn(8), 4+rng.Intn(8)
		rows := make([][]CellKind, h)
		var open []Cell
		for y := range rows {
			rows[y] = make([]CellKind, w)
			for x := range rows[y] {
				if rng.Intn(3) == 0 {
					rows[y][x] = Wall
				} else {
					open = append(open, Cell{X: x, Y: y})
				}
			}
		}
		if len(open) == 0 {
			continue
		}
		g, err := NewGrid(rows, testCellSize)
		require.NoError(t, err)

		c := open[rng.Intn(len(open))]
		r := g.CellRect(c)
		for step := 0; step < 200; step++ {
			d := Direction(rng.Intn(4))
			speed := 1 + rng.Intn(testCellSize)
			r, _ = TryMove(r, d, speed, g)

			for _, wall := range g.Walls() {
				if r.Intersects(wall) {
					t.Fatalf("trial %d step %d: rect %+v overlaps wall %+v", trial, step, r, wall)
				}
			}
			require.False(t, g.IsBlocked(r))
		}
	}
}

func TestToward(t *testing.T) {
	from := Cell{X: 2, Y: 2}
	cases := map[Cell]Direction{
		{X: 3, Y: 2}: Right,
		{X: 1, Y: 2}: Left,
		{X: 2, Y: 3}: Down,
		{X: 2, Y: 1}: Up,
	}
	for to, want := range cases {
		got, ok := Toward(from, to)
		assert.True(t, ok)
		assert.Equal(t, want, got, "toward %s", to)
	}
	_, ok := Toward(from, from)
	assert.False(t, ok)
}

func TestDirectionHelpers(t *testing.T) {
	assert.Equal(t, "down", Down.String())

	c := Cell{X: 1, Y: 1}
	assert.Equal(t, Cell{X: 1, Y: 0}, c.Step(Up))
	assert.Equal(t, 5, c.Manhattan(Cell{X: 4, Y: 3}))
}

func TestPlayerBufferedTurn(t *testing.T) {
	g := mustGrid(t,
		"...",
		"#.#",
	)
	p := NewPlayer(0, 0, 16, 4)
	p.Dir = Right

	// Down is walled at x=0, so the request waits while the player keeps going.
	p.Steer(Down)
	for i := 0; i < 3; i++ {
		assert.True(t, p.Update(g))
		assert.True(t, p.hasWant)
		assert.Equal(t, Right, p.Dir)
	}

	// At x=12 the turn is still blocked; at x=16 the corridor opens.
	assert.True(t, p.Update(g))
	assert.Equal(t, 16, p.Rect.X)
	assert.True(t, p.Update(g))
	assert.Equal(t, Down, p.Dir)
	assert.Equal(t, core.NewRect(16, 4, 16, 16), p.Rect)
	assert.False(t, p.hasWant)
}
