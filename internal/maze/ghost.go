package maze

import (
	"time"

	"github.com/vovakirdan/mazechase/internal/core"
)

// Mode is a ghost's behavioral state.
type Mode int

const (
	Normal     Mode = iota // chasing the player
	Frightened             // fleeing, capturable, time-boxed in ticks
	Captured               // eaten, waiting to respawn
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Frightened:
		return "frightened"
	case Captured:
		return "captured"
	default:
		return "unknown"
	}
}

// GhostStartDir is the facing direction of a spawned or respawned ghost.
const GhostStartDir = Up

// GhostTiming holds the ghost's timers.
type GhostTiming struct {
	FrightTicks   int           // Frightened duration, counted in Update calls
	RespawnDelay  time.Duration // Captured duration, wall clock
	RouteInterval time.Duration // Navigation cadence, wall clock
}

// Ghost is a pursuer. It owns its mode, timers and route; only its own
// methods mutate them.
type Ghost struct {
	Body
	Color core.Color

	spawn       core.Rect
	timing      GhostTiming
	mode        Mode
	frightLeft  int
	route       []Cell
	routed      bool
	lastRouteAt time.Time
	capturedAt  time.Time
	visible     bool
}

// NewGhost creates a ghost at pixel position (x, y), which is also its
// respawn point.
func NewGhost(x, y, size, speed int, color core.Color, timing GhostTiming) *Ghost {
	r := core.NewRect(x, y, size, size)
	return &Ghost{
		Body: Body{
			Rect:  r,
			Dir:   GhostStartDir,
			Speed: speed,
		},
		Color:   color,
		spawn:   r,
		timing:  timing,
		mode:    Normal,
		visible: true,
	}
}

// Mode returns the current behavioral state.
func (g *Ghost) Mode() Mode { return g.mode }

// Visible reports whether the ghost is in play.
func (g *Ghost) Visible() bool { return g.visible }

// FrightLeft returns the remaining frightened ticks.
func (g *Ghost) FrightLeft() int { return g.frightLeft }

// Frighten switches a normal ghost to Frightened and (re)starts the fright
// countdown. Captured ghosts are not affected.
func (g *Ghost) Frighten() {
	if g.mode == Captured {
		return
	}
	g.mode = Frightened
	g.frightLeft = g.timing.FrightTicks
	if g.frightLeft <= 0 {
		g.mode = Normal
	}
}

// Capture takes a frightened ghost out of play at time now. Ghosts in any
// other mode are left alone and false is returned.
func (g *Ghost) Capture(now time.Time) bool {
	if g.mode != Frightened {
		return false
	}
	g.mode = Captured
	g.frightLeft = 0
	g.capturedAt = now
	g.visible = false
	g.route = nil
	return true
}

// Update advances the ghost by one tick. target is the player's rect.
//
// A captured ghost only checks its respawn deadline. Otherwise the fright
// countdown runs, navigation is recomputed when the route cadence has elapsed,
// and the ghost tries to step in its facing direction. The facing direction
// only changes on a cadence tick; a blocked step simply waits.
func (g *Ghost) Update(now time.Time, target core.Rect, grid *Grid) {
	if g.mode == Captured {
		if now.Sub(g.capturedAt) >= g.timing.RespawnDelay {
			g.respawn()
		}
		return
	}

	if g.mode == Frightened && g.frightLeft > 0 {
		g.frightLeft--
		if g.frightLeft == 0 {
			g.mode = Normal
		}
	}

	if !g.routed || now.Sub(g.lastRouteAt) >= g.timing.RouteInterval {
		g.routed = true
		g.lastRouteAt = now
		g.navigate(target, grid)
	}

	g.Move(grid)
}

// navigate picks the facing direction for the next cadence interval.
func (g *Ghost) navigate(target core.Rect, grid *Grid) {
	if g.mode == Frightened {
		g.route = nil
		g.Dir = EscapeDirection(g.Rect, g.Speed, target, grid, g.Dir)
		return
	}

	from := grid.PixelToCell(g.Rect.X, g.Rect.Y)
	to := grid.PixelToCell(target.X, target.Y)
	if !grid.InBounds(from) || !grid.InBounds(to) {
		g.route = nil
		return
	}
	g.route = FindPath(from, to, grid)
	if len(g.route) >= 2 {
		if d, ok := Toward(g.route[0], g.route[1]); ok {
			g.Dir = d
		}
	}
}

func (g *Ghost) respawn() {
	g.mode = Normal
	g.Rect = g.spawn
	g.Dir = GhostStartDir
	g.visible = true
	g.frightLeft = 0
	g.route = nil
	g.capturedAt = time.Time{}
}
