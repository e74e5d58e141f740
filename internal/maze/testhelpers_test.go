package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCellSize = 16

// parseRows turns an ASCII picture ('#' = wall, anything else open) into rows.
func parseRows(lines ...string) [][]CellKind {
	rows := make([][]CellKind, len(lines))
	for y, line := range lines {
		rows[y] = make([]CellKind, len(line))
		for x, ch := range line {
			if ch == '#' {
				rows[y][x] = Wall
			}
		}
	}
	return rows
}

func mustGrid(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := NewGrid(parseRows(lines...), testCellSize)
	require.NoError(t, err)
	return g
}

func openGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return mustGrid(t, lines...)
}
