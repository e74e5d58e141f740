package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vovakirdan/mazechase/internal/maze"
)

// ErrMapNotFound reports a level with no map file. It wraps maze.ErrNotFound.
var ErrMapNotFound = fmt.Errorf("levels: %w", maze.ErrNotFound)

// Loader handles loading maps from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Returns maps sorted by level; invalid files are skipped.
func (l *Loader) LoadAll() ([]Map, error) {
	var maps []Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		m, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		maps = append(maps, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortMaps(maps)
	return maps, nil
}

// LoadMap returns the layout for a level.
func (l *Loader) LoadMap(level int) (maze.Layout, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return maze.Layout{}, err
	}
	return findLevel(maps, level)
}

// LoadFile loads a single map file.
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	m, err := ParseYAML(data)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

func findLevel(maps []Map, level int) (maze.Layout, error) {
	for _, m := range maps {
		if m.Level == level {
			return m.Layout, nil
		}
	}
	return maze.Layout{}, fmt.Errorf("%w: level %d", ErrMapNotFound, level)
}

// sortMaps orders by level, then by file path so duplicates resolve
// deterministically to the first.
func sortMaps(maps []Map) {
	sort.SliceStable(maps, func(i, j int) bool {
		if maps[i].Level != maps[j].Level {
			return maps[i].Level < maps[j].Level
		}
		return maps[i].FilePath < maps[j].FilePath
	})
}
