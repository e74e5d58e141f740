package maze

import "github.com/vovakirdan/mazechase/internal/core"

// Direction is a facing direction. The numeric order matches the persisted
// and rendered order: right, down, left, up.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Delta returns the unit vector of the direction in screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Toward returns the direction from one cell to an orthogonally adjacent
// cell. Horizontal offsets win over vertical ones; equal cells report false.
func Toward(from, to Cell) (Direction, bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx > 0:
		return Right, true
	case dx < 0:
		return Left, true
	case dy > 0:
		return Down, true
	case dy < 0:
		return Up, true
	}
	return Right, false
}

// TryMove offsets r by speed pixels in direction d. When the new position is
// blocked the entity stays put: the original rect and false are returned.
// There is no sliding and no partial step.
func TryMove(r core.Rect, d Direction, speed int, walls Blocker) (core.Rect, bool) {
	dx, dy := d.Delta()
	next := r.Translate(dx*speed, dy*speed)
	if walls.IsBlocked(next) {
		return r, false
	}
	return next, true
}
