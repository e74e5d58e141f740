package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSoundPath checks that a route starts and ends where asked and that
// every step is one open, orthogonally adjacent cell.
func assertSoundPath(t *testing.T, g *Grid, path []Cell, start, goal Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Manhattan(path[i]), "step %d is not adjacent", i)
		assert.False(t, g.IsBlocked(g.CellRect(path[i])), "step %d is blocked", i)
	}
}

func TestFindPathThreeByOne(t *testing.T) {
	g := openGrid(t, 3, 1)

	path := FindPath(Cell{X: 0, Y: 0}, Cell{X: 2, Y: 0}, g)
	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {2, 0}}, path)
}

func TestFindPathOpenGridIsManhattan(t *testing.T) {
	g := openGrid(t, 5, 4)

	for sy := 0; sy < g.Height(); sy++ {
		for sx := 0; sx < g.Width(); sx++ {
			for gy := 0; gy < g.Height(); gy++ {
				for gx := 0; gx < g.Width(); gx++ {
					start, goal := Cell{X: sx, Y: sy}, Cell{X: gx, Y: gy}
					path := FindPath(start, goal, g)
					if start == goal {
						assert.Empty(t, path)
						continue
					}
					require.Len(t, path, start.Manhattan(goal)+1, "%s -> %s", start, goal)
					assertSoundPath(t, g, path, start, goal)
				}
			}
		}
	}
}

func TestFindPathAroundWalls(t *testing.T) {
	g := mustGrid(t,
		".......",
		".#####.",
		".#...#.",
		".#.#.#.",
		"...#...",
	)
	start, goal := Cell{X: 2, Y: 2}, Cell{X: 4, Y: 4}

	path := FindPath(start, goal, g)
	assertSoundPath(t, g, path, start, goal)
	// The bottom row is cut by the centre wall; the route goes over it.
	assert.Len(t, path, 5)
}

func TestFindPathUnreachable(t *testing.T) {
	g := mustGrid(t,
		".....",
		"..#..",
		".#.#.",
		"..#..",
	)
	assert.Nil(t, FindPath(Cell{X: 0, Y: 0}, Cell{X: 2, Y: 2}, g))
}

func TestFindPathDeterministicTieBreak(t *testing.T) {
	g := openGrid(t, 3, 3)

	want := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, FindPath(Cell{X: 0, Y: 0}, Cell{X: 2, Y: 2}, g))
	}
}

func TestFindPathShortestInMaze(t *testing.T) {
	g := mustGrid(t,
		"#########",
		"#.......#",
		"#.##.##.#",
		"#.#...#.#",
		"#.#.#.#.#",
		"#...#...#",
		"#########",
	)
	start, goal := Cell{X: 1, Y: 1}, Cell{X: 7, Y: 5}

	path := FindPath(start, goal, g)
	assertSoundPath(t, g, path, start, goal)
	// Along the top corridor and down the right side.
	assert.Len(t, path, 11)
}
