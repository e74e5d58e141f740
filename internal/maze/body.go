package maze

import "github.com/vovakirdan/mazechase/internal/core"

// Body is the movable part shared by the player and the ghosts.
type Body struct {
	Rect  core.Rect
	Dir   Direction
	Speed int
}

// Move attempts one step in the facing direction and reports whether the body
// moved.
func (b *Body) Move(walls Blocker) bool {
	next, ok := TryMove(b.Rect, b.Dir, b.Speed, walls)
	b.Rect = next
	return ok
}

// CanMove reports whether a step in direction d would be unblocked.
func (b *Body) CanMove(d Direction, walls Blocker) bool {
	_, ok := TryMove(b.Rect, d, b.Speed, walls)
	return ok
}

// PlayerStartDir is the facing direction of a freshly spawned player.
const PlayerStartDir = Left

// Player is the user-controlled body. Turn requests are buffered until the
// maze lets the player take them.
type Player struct {
	Body
	want    Direction
	hasWant bool
}

// NewPlayer creates a player at pixel position (x, y).
func NewPlayer(x, y, size, speed int) *Player {
	return &Player{
		Body: Body{
			Rect:  core.NewRect(x, y, size, size),
			Dir:   PlayerStartDir,
			Speed: speed,
		},
	}
}

// Steer buffers a turn request. It replaces any earlier request.
func (p *Player) Steer(d Direction) {
	p.want = d
	p.hasWant = true
}

// Update takes the buffered turn when it is open, then moves one step.
func (p *Player) Update(walls Blocker) bool {
	if p.hasWant && p.CanMove(p.want, walls) {
		p.Dir = p.want
		p.hasWant = false
	}
	return p.Move(walls)
}
