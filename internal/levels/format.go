// Package levels reads and writes maze map files and provides the bundled
// maps compiled into the binary.
//
// A map file is YAML with an ASCII layout:
//
//	level: 1
//	name: Classic
//	wall_color: blue
//	layout:
//	  - "#####"
//	  - "#o.P#"
//	  - "#####"
//
// '#' is a wall, '.' or ' ' an open cell holding a dot, 'o' a power pellet,
// 'P' the player spawn and 'G' a ghost spawn (row-major order).
package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mazechase/internal/maze"
	"gopkg.in/yaml.v3"
)

// Layout characters.
const (
	charWall   = '#'
	charDot    = '.'
	charBlank  = ' '
	charPellet = 'o'
	charPlayer = 'P'
	charGhost  = 'G'
)

// YAMLMap represents the YAML structure for a map file.
type YAMLMap struct {
	Level     int      `yaml:"level"`
	Name      string   `yaml:"name,omitempty"`
	WallColor string   `yaml:"wall_color,omitempty"`
	Layout    []string `yaml:"layout"`
}

// Map is a parsed map file.
type Map struct {
	Level    int
	Name     string
	Layout   maze.Layout
	FilePath string
}

// ParseYAML parses a YAML map file. Layout errors wrap maze.ErrCorruptMap.
func ParseYAML(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.Level <= 0 {
		return Map{}, fmt.Errorf("level must be positive, got %d", ym.Level)
	}

	layout, err := ParseLayout(ym.Layout)
	if err != nil {
		return Map{}, err
	}
	layout.WallColor = ym.WallColor

	return Map{
		Level:  ym.Level,
		Name:   ym.Name,
		Layout: layout,
	}, nil
}

// ParseLayout converts ASCII rows into a validated layout.
func ParseLayout(rows []string) (maze.Layout, error) {
	layout := maze.Layout{
		Rows:         make([][]maze.CellKind, len(rows)),
		PowerPellets: maze.NewCellSet(),
	}

	for y, line := range rows {
		row := make([]maze.CellKind, 0, len(line))
		x := -1
		for _, ch := range line {
			x++
			c := maze.Cell{X: x, Y: y}
			switch ch {
			case charWall:
				row = append(row, maze.Wall)
				continue
			case charDot, charBlank:
			case charPellet:
				layout.PowerPellets.Add(c)
			case charPlayer:
				if layout.PlayerSpawn != nil {
					return maze.Layout{}, fmt.Errorf("%w: second player spawn at %s", maze.ErrCorruptMap, c.Key())
				}
				layout.PlayerSpawn = &c
			case charGhost:
				layout.GhostSpawns = append(layout.GhostSpawns, c)
			default:
				return maze.Layout{}, fmt.Errorf("%w: unknown character %q at %s", maze.ErrCorruptMap, ch, c.Key())
			}
			row = append(row, maze.Open)
		}
		layout.Rows[y] = row
	}

	if err := layout.Validate(); err != nil {
		return maze.Layout{}, err
	}
	return layout, nil
}

// EncodeYAML renders a map back into the file format.
func EncodeYAML(m Map) ([]byte, error) {
	rows, err := FormatLayout(m.Layout)
	if err != nil {
		return nil, err
	}
	ym := YAMLMap{
		Level:     m.Level,
		Name:      m.Name,
		WallColor: m.Layout.WallColor,
		Layout:    rows,
	}
	return yaml.Marshal(ym)
}

// FormatLayout renders a layout as ASCII rows. A cell cannot carry two
// markers in this format.
func FormatLayout(l maze.Layout) ([]string, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	grid := make([][]rune, l.Height())
	for y, row := range l.Rows {
		grid[y] = make([]rune, len(row))
		for x, k := range row {
			if k == maze.Wall {
				grid[y][x] = charWall
			} else {
				grid[y][x] = charDot
			}
		}
	}

	mark := func(c maze.Cell, ch rune) error {
		if cur := grid[c.Y][c.X]; cur != charDot {
			return fmt.Errorf("cell %s carries both %q and %q", c.Key(), cur, ch)
		}
		grid[c.Y][c.X] = ch
		return nil
	}
	for _, c := range l.PowerPellets.Sorted() {
		if err := mark(c, charPellet); err != nil {
			return nil, err
		}
	}
	if l.PlayerSpawn != nil {
		if err := mark(*l.PlayerSpawn, charPlayer); err != nil {
			return nil, err
		}
	}
	for _, c := range l.GhostSpawns {
		if err := mark(c, charGhost); err != nil {
			return nil, err
		}
	}

	out := make([]string, len(grid))
	for y, row := range grid {
		out[y] = string(row)
	}
	return out, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
