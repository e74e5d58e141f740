package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/mazechase/internal/core"
)

func TestEscapeDirectionPrefersAway(t *testing.T) {
	g := openGrid(t, 5, 5)
	ghost := g.CellRect(Cell{X: 2, Y: 2})

	tests := []struct {
		name   string
		player Cell
		want   Direction
	}{
		{"player on the left", Cell{X: 0, Y: 2}, Right},
		{"player on the right", Cell{X: 4, Y: 2}, Left},
		{"player above", Cell{X: 2, Y: 0}, Down},
		{"player below", Cell{X: 2, Y: 4}, Up},
		{"diagonal tie goes vertical", Cell{X: 1, Y: 1}, Down},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EscapeDirection(ghost, 1, g.CellRect(tc.player), g, Left)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEscapeDirectionFallsBackToPerpendicular(t *testing.T) {
	g := mustGrid(t,
		".....",
		".....",
		"...#.",
		".....",
		".....",
	)
	ghost := g.CellRect(Cell{X: 2, Y: 2})
	player := g.CellRect(Cell{X: 0, Y: 2})

	// Right is walled, Down is next in line.
	assert.Equal(t, Down, EscapeDirection(ghost, 1, player, g, Up))

	g = mustGrid(t,
		".....",
		".....",
		"...#.",
		"..#..",
		".....",
	)
	// Right and Down walled, Up remains.
	assert.Equal(t, Up, EscapeDirection(ghost, 1, player, g, Left))
}

func TestEscapeDirectionBoxedInKeepsCurrent(t *testing.T) {
	g := mustGrid(t,
		"###",
		"#.#",
		"###",
	)
	ghost := g.CellRect(Cell{X: 1, Y: 1})

	for _, current := range []Direction{Right, Down, Left, Up} {
		got := EscapeDirection(ghost, 1, core.NewRect(0, 0, 16, 16), g, current)
		assert.Equal(t, current, got)
	}
}
