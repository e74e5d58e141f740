package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/mazechase/internal/maze"
)

// ErrMapNotFound reports a level with no stored map. It wraps maze.ErrNotFound.
var ErrMapNotFound = fmt.Errorf("storage: %w", maze.ErrNotFound)

const (
	markerPellet = "pellet"
	markerPlayer = "player"
	markerGhost  = "ghost"
)

// SaveMap stores a layout for a level, replacing any existing map.
func (s *Store) SaveMap(level int, layout maze.Layout) error {
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("storage: cannot save map %d: %w", level, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO maps (level, width, height, cells, wall_color) VALUES (?, ?, ?, ?, ?)",
		level, layout.Width(), layout.Height(), encodeCells(layout), layout.WallColor,
	); err != nil {
		return fmt.Errorf("storage: cannot save map %d: %w", level, err)
	}
	if _, err := tx.Exec("DELETE FROM map_markers WHERE level = ?", level); err != nil {
		return fmt.Errorf("storage: cannot clear markers for map %d: %w", level, err)
	}

	insert := func(kind string, ord int, c maze.Cell) error {
		_, err := tx.Exec(
			"INSERT INTO map_markers (level, kind, ord, x, y) VALUES (?, ?, ?, ?, ?)",
			level, kind, ord, c.X, c.Y,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save %s marker for map %d: %w", kind, level, err)
		}
		return nil
	}
	for i, c := range layout.PowerPellets.Sorted() {
		if err := insert(markerPellet, i, c); err != nil {
			return err
		}
	}
	if layout.PlayerSpawn != nil {
		if err := insert(markerPlayer, 0, *layout.PlayerSpawn); err != nil {
			return err
		}
	}
	for i, c := range layout.GhostSpawns {
		if err := insert(markerGhost, i, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit map %d: %w", level, err)
	}
	return nil
}

// LoadMap returns the stored layout for a level. A missing level yields
// ErrMapNotFound; data failing the schema checks wraps maze.ErrCorruptMap.
func (s *Store) LoadMap(level int) (maze.Layout, error) {
	var (
		width, height int
		cells         []byte
		wallColor     string
	)
	err := s.db.QueryRow(
		"SELECT width, height, cells, wall_color FROM maps WHERE level = ?",
		level,
	).Scan(&width, &height, &cells, &wallColor)
	if errors.Is(err, sql.ErrNoRows) {
		return maze.Layout{}, fmt.Errorf("%w: level %d", ErrMapNotFound, level)
	}
	if err != nil {
		return maze.Layout{}, fmt.Errorf("storage: cannot query map %d: %w", level, err)
	}

	layout, err := decodeCells(width, height, cells)
	if err != nil {
		return maze.Layout{}, fmt.Errorf("storage: map %d: %w", level, err)
	}
	layout.WallColor = wallColor

	if err := s.loadMarkers(level, &layout); err != nil {
		return maze.Layout{}, err
	}
	if err := layout.Validate(); err != nil {
		return maze.Layout{}, fmt.Errorf("storage: map %d: %w", level, err)
	}
	return layout, nil
}

func (s *Store) loadMarkers(level int, layout *maze.Layout) error {
	rows, err := s.db.Query(
		"SELECT kind, x, y FROM map_markers WHERE level = ? ORDER BY kind, ord",
		level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot query markers for map %d: %w", level, err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var c maze.Cell
		if err := rows.Scan(&kind, &c.X, &c.Y); err != nil {
			return fmt.Errorf("storage: cannot scan marker row: %w", err)
		}
		if c.X < 0 || c.Y < 0 || c.X >= layout.Width() || c.Y >= layout.Height() {
			return fmt.Errorf("storage: map %d: %w: %s marker %s out of bounds", level, maze.ErrCorruptMap, kind, c.Key())
		}

		switch kind {
		case markerPellet:
			layout.PowerPellets.Add(c)
		case markerPlayer:
			if layout.PlayerSpawn != nil {
				return fmt.Errorf("storage: map %d: %w: more than one player spawn", level, maze.ErrCorruptMap)
			}
			layout.PlayerSpawn = &c
		case markerGhost:
			layout.GhostSpawns = append(layout.GhostSpawns, c)
		default:
			return fmt.Errorf("storage: map %d: %w: unknown marker kind %q", level, maze.ErrCorruptMap, kind)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: row iteration error: %w", err)
	}
	return nil
}

// Levels returns the stored level numbers in ascending order.
func (s *Store) Levels() ([]int, error) {
	rows, err := s.db.Query("SELECT level FROM maps ORDER BY level")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var levels []int
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		levels = append(levels, level)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return levels, nil
}

// DeleteMap removes a level and its markers. A level with no stored map
// reports ErrMapNotFound.
func (s *Store) DeleteMap(level int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM map_markers WHERE level = ?", level); err != nil {
		return fmt.Errorf("storage: cannot delete markers for map %d: %w", level, err)
	}
	res, err := tx.Exec("DELETE FROM maps WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot delete map %d: %w", level, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: level %d", ErrMapNotFound, level)
	}
	return tx.Commit()
}

// encodeCells flattens the layout row-major, one byte per cell.
func encodeCells(l maze.Layout) []byte {
	out := make([]byte, 0, l.Width()*l.Height())
	for _, row := range l.Rows {
		for _, k := range row {
			out = append(out, byte(k))
		}
	}
	return out
}

// decodeCells rebuilds the rows and checks the byte grid against its
// declared dimensions.
func decodeCells(width, height int, cells []byte) (maze.Layout, error) {
	if width <= 0 || height <= 0 {
		return maze.Layout{}, fmt.Errorf("%w: bad dimensions %dx%d", maze.ErrCorruptMap, width, height)
	}
	if len(cells) != width*height {
		return maze.Layout{}, fmt.Errorf("%w: %d cells for %dx%d grid", maze.ErrCorruptMap, len(cells), width, height)
	}

	rows := make([][]maze.CellKind, height)
	for y := range rows {
		rows[y] = make([]maze.CellKind, width)
		for x := range rows[y] {
			b := cells[y*width+x]
			if b != byte(maze.Open) && b != byte(maze.Wall) {
				return maze.Layout{}, fmt.Errorf("%w: cell %d,%d has value %d", maze.ErrCorruptMap, x, y, b)
			}
			rows[y][x] = maze.CellKind(b)
		}
	}
	return maze.Layout{Rows: rows, PowerPellets: maze.NewCellSet()}, nil
}
