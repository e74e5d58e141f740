package game

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick        uint64
	Phase       int
	Score       int
	Lives       int
	Level       int
	Completed   int
	Won         bool
	ClearDelay  int
	DotsLeft    int
	PelletsLeft int

	PlayerX   int
	PlayerY   int
	PlayerDir int

	// Each ghost is 6 ints: X, Y, Dir, Mode, FrightLeft, Visible
	GhostData []int
}

// Snapshot returns the current game state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		Phase:      int(s.phase),
		Score:      s.score,
		Lives:      s.lives,
		Level:      s.State().Level,
		Completed:  s.completed,
		Won:        s.won,
		ClearDelay: s.clearDelay,
	}
	if s.level != nil {
		snap.DotsLeft = len(s.level.Dots)
		snap.PelletsLeft = len(s.level.Pellets)
	}
	if s.player != nil {
		snap.PlayerX = s.player.Rect.X
		snap.PlayerY = s.player.Rect.Y
		snap.PlayerDir = int(s.player.Dir)
	}

	snap.GhostData = make([]int, 0, len(s.ghosts)*6)
	for _, g := range s.ghosts {
		visible := 0
		if g.Visible() {
			visible = 1
		}
		snap.GhostData = append(snap.GhostData,
			g.Rect.X, g.Rect.Y, int(g.Dir), int(g.Mode()), g.FrightLeft(), visible)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Completed)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ClearDelay)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DotsLeft)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PelletsLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerDir)   //#nosec G115 -- hash computation
	if snap.Won {
		h = h*31 + 1
	}

	for _, v := range snap.GhostData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
