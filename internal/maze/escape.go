package maze

import "github.com/vovakirdan/mazechase/internal/core"

// EscapeDirection picks a direction that takes a frightened ghost away from
// the player. It compares top-left pixel offsets: along the dominant axis the
// ghost prefers the direction pointing away, then the two perpendicular
// directions. The first candidate that can move speed pixels unblocked wins;
// when all of them are blocked current is returned.
//
// This is a single greedy step and can trap a ghost in a dead end.
func EscapeDirection(body core.Rect, speed int, player core.Rect, walls Blocker, current Direction) Direction {
	dx := body.X - player.X
	dy := body.Y - player.Y

	var candidates [3]Direction
	if core.Abs(dx) > core.Abs(dy) {
		if dx > 0 {
			candidates = [3]Direction{Right, Down, Up}
		} else {
			candidates = [3]Direction{Left, Down, Up}
		}
	} else {
		if dy > 0 {
			candidates = [3]Direction{Down, Right, Left}
		} else {
			candidates = [3]Direction{Up, Right, Left}
		}
	}

	for _, d := range candidates {
		if _, ok := TryMove(body, d, speed, walls); ok {
			return d
		}
	}
	return current
}
