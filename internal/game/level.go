package game

import (
	"fmt"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/maze"
)

// PickupKind distinguishes dots from power pellets.
type PickupKind int

const (
	Dot PickupKind = iota
	PowerPellet
)

// Pickup is a collectible occupying one whole cell.
type Pickup struct {
	Cell maze.Cell
	Rect core.Rect
	Kind PickupKind
}

// Level is the playable form of a map: the collision grid, the remaining
// pickups and the spawn cells.
type Level struct {
	Number      int
	Grid        *maze.Grid
	WallColor   core.Color
	Dots        []Pickup
	Pellets     []Pickup
	PlayerSpawn maze.Cell
	GhostSpawns []maze.Cell
}

// BuildLevel turns a layout into a Level. Spawns missing from the layout
// come from cfg; a spawn that is not an open in-grid cell is reported as
// maze.ErrCorruptMap.
func BuildLevel(number int, layout maze.Layout, cfg config.MazeConfig) (*Level, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	grid, err := maze.NewGrid(layout.Rows, cfg.Grid.CellSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", maze.ErrCorruptMap, err)
	}

	wall, ok := core.ParseColor(layout.WallColor)
	if !ok {
		wall = core.ColorBlue
	}

	lvl := &Level{
		Number:    number,
		Grid:      grid,
		WallColor: wall,
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			if grid.Kind(c) != maze.Open {
				continue
			}
			p := Pickup{Cell: c, Rect: grid.CellRect(c), Kind: Dot}
			if layout.PowerPellets.Has(c) {
				p.Kind = PowerPellet
				lvl.Pellets = append(lvl.Pellets, p)
			} else {
				lvl.Dots = append(lvl.Dots, p)
			}
		}
	}

	if layout.PlayerSpawn != nil {
		lvl.PlayerSpawn = *layout.PlayerSpawn
	} else {
		lvl.PlayerSpawn = maze.Cell{X: cfg.Player.Spawn.X, Y: cfg.Player.Spawn.Y}
	}
	if err := checkSpawn(grid, "player", lvl.PlayerSpawn); err != nil {
		return nil, err
	}

	if len(layout.GhostSpawns) > 0 {
		lvl.GhostSpawns = append(lvl.GhostSpawns, layout.GhostSpawns...)
	} else {
		for _, s := range cfg.Ghosts.Spawns {
			lvl.GhostSpawns = append(lvl.GhostSpawns, maze.Cell{X: s.X, Y: s.Y})
		}
	}
	for _, c := range lvl.GhostSpawns {
		if err := checkSpawn(grid, "ghost", c); err != nil {
			return nil, err
		}
	}

	return lvl, nil
}

func checkSpawn(grid *maze.Grid, who string, c maze.Cell) error {
	if !grid.InBounds(c) || grid.Kind(c) != maze.Open {
		return fmt.Errorf("%w: %s spawn %s is not an open cell", maze.ErrCorruptMap, who, c.Key())
	}
	return nil
}

// Remaining returns the number of uncollected pickups.
func (l *Level) Remaining() int {
	return len(l.Dots) + len(l.Pellets)
}

// Cleared reports whether every dot and power pellet has been collected.
func (l *Level) Cleared() bool {
	return l.Remaining() == 0
}

// collect removes every pickup overlapping r and returns how many were taken.
func collect(pickups *[]Pickup, r core.Rect) int {
	kept := (*pickups)[:0]
	taken := 0
	for _, p := range *pickups {
		if p.Rect.Intersects(r) {
			taken++
			continue
		}
		kept = append(kept, p)
	}
	*pickups = kept
	return taken
}
