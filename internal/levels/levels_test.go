package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/mazechase/internal/maze"
)

const smallMap = `level: 4
name: Tiny
wall_color: green
layout:
  - "#######"
  - "#o.P..#"
  - "#.#G#.#"
  - "#....o#"
  - "#######"
`

func TestParseYAML(t *testing.T) {
	m, err := ParseYAML([]byte(smallMap))
	require.NoError(t, err)

	assert.Equal(t, 4, m.Level)
	assert.Equal(t, "Tiny", m.Name)
	assert.Equal(t, "green", m.Layout.WallColor)
	assert.Equal(t, 7, m.Layout.Width())
	assert.Equal(t, 5, m.Layout.Height())

	assert.Equal(t, maze.Wall, m.Layout.KindAt(maze.Cell{X: 0, Y: 0}))
	assert.Equal(t, maze.Open, m.Layout.KindAt(maze.Cell{X: 1, Y: 1}))
	assert.Equal(t, maze.Wall, m.Layout.KindAt(maze.Cell{X: 2, Y: 2}))

	assert.Equal(t, []maze.Cell{{X: 1, Y: 1}, {X: 5, Y: 3}}, m.Layout.PowerPellets.Sorted())
	require.NotNil(t, m.Layout.PlayerSpawn)
	assert.Equal(t, maze.Cell{X: 3, Y: 1}, *m.Layout.PlayerSpawn)
	assert.Equal(t, []maze.Cell{{X: 3, Y: 2}}, m.Layout.GhostSpawns)
	// Marker cells are open.
	assert.Equal(t, maze.Open, m.Layout.KindAt(maze.Cell{X: 3, Y: 2}))
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		corrupt bool
	}{
		{"bad yaml", "level: [", false},
		{"no level", "layout: [\"#\"]\n", false},
		{"ragged rows", "level: 1\nlayout:\n  - \"###\"\n  - \"##\"\n", true},
		{"unknown char", "level: 1\nlayout:\n  - \"#x#\"\n", true},
		{"two players", "level: 1\nlayout:\n  - \"#PP#\"\n", true},
		{"empty layout", "level: 1\nlayout: []\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.corrupt, errors.Is(err, maze.ErrCorruptMap))
		})
	}
}

func TestParseLayoutReportsRuneColumn(t *testing.T) {
	_, err := ParseLayout([]string{
		"#####",
		"#P.é#",
	})
	require.ErrorIs(t, err, maze.ErrCorruptMap)
	assert.Contains(t, err.Error(), `'é' at 3,1`)

	_, err = ParseLayout([]string{"#.P.x"})
	require.ErrorIs(t, err, maze.ErrCorruptMap)
	assert.Contains(t, err.Error(), "at 4,0")
}

func TestEncodeRoundTrip(t *testing.T) {
	m, err := ParseYAML([]byte(smallMap))
	require.NoError(t, err)

	data, err := EncodeYAML(m)
	require.NoError(t, err)

	back, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestFormatLayoutRejectsStackedMarkers(t *testing.T) {
	spawn := maze.Cell{X: 1, Y: 0}
	l := maze.Layout{
		Rows:         [][]maze.CellKind{{maze.Open, maze.Open}},
		PowerPellets: maze.NewCellSet(spawn),
		PlayerSpawn:  &spawn,
	}
	_, err := FormatLayout(l)
	assert.Error(t, err)
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(smallMap), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "a.yml"),
		[]byte("level: 2\nlayout:\n  - \"#P.#\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("level: 3\nlayout:\n  - \"?\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	loader := NewLoader(dir)
	maps, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, 2, maps[0].Level)
	assert.Equal(t, 4, maps[1].Level)
	assert.Equal(t, filepath.Join(dir, "b.yaml"), maps[1].FilePath)

	layout, err := loader.LoadMap(4)
	require.NoError(t, err)
	assert.Equal(t, 7, layout.Width())

	_, err = loader.LoadMap(3)
	assert.ErrorIs(t, err, ErrMapNotFound)
	assert.ErrorIs(t, err, maze.ErrNotFound)
}

func TestBundledMapsAreValid(t *testing.T) {
	b, err := LoadBundled()
	require.NoError(t, err)

	maps := b.Maps()
	require.NotEmpty(t, maps)
	for i, m := range maps {
		assert.Equal(t, i+1, m.Level, "bundled levels are numbered from 1 without gaps")
		require.NoError(t, m.Layout.Validate())
		require.NotNil(t, m.Layout.PlayerSpawn, "level %d", m.Level)
		assert.NotEmpty(t, m.Layout.GhostSpawns, "level %d", m.Level)
		assert.NotEmpty(t, m.Layout.PowerPellets, "level %d", m.Level)

		grid, err := maze.NewGrid(m.Layout.Rows, 16)
		require.NoError(t, err)
		assertConnected(t, m, grid)
	}

	_, err = b.LoadMap(len(maps) + 1)
	assert.ErrorIs(t, err, maze.ErrNotFound)
}

// assertConnected checks every open cell is reachable from the player spawn.
func assertConnected(t *testing.T, m Map, grid *maze.Grid) {
	t.Helper()
	start := *m.Layout.PlayerSpawn
	seen := map[maze.Cell]bool{start: true}
	queue := []maze.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range grid.Neighbors(c) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			if grid.Kind(c) == maze.Open {
				assert.True(t, seen[c], "level %d: cell %s unreachable", m.Level, c.Key())
			}
		}
	}
}
