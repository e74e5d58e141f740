package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/vovakirdan/mazechase/internal/maze"
)

//go:embed maps/*.yaml
var bundledFS embed.FS

// Bundled is the set of maps compiled into the binary.
type Bundled struct {
	maps []Map
}

// LoadBundled parses the embedded maps.
func LoadBundled() (*Bundled, error) {
	entries, err := fs.ReadDir(bundledFS, "maps")
	if err != nil {
		return nil, fmt.Errorf("levels: read bundled maps: %w", err)
	}

	b := &Bundled{}
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(path.Ext(e.Name())) {
			continue
		}
		p := path.Join("maps", e.Name())
		data, err := bundledFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", p, err)
		}
		m, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: parse %s: %w", p, err)
		}
		m.FilePath = p
		b.maps = append(b.maps, m)
	}
	sortMaps(b.maps)
	return b, nil
}

// Maps returns the bundled maps ordered by level.
func (b *Bundled) Maps() []Map {
	out := make([]Map, len(b.maps))
	copy(out, b.maps)
	return out
}

// LoadMap returns the bundled layout for a level.
func (b *Bundled) LoadMap(level int) (maze.Layout, error) {
	return findLevel(b.maps, level)
}
