// Package game runs one play-through of the maze game: it owns the level,
// the player and the ghosts, advances them one tick at a time and resolves
// pickups, captures and life loss.
package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/maze"
)

// MapSource supplies the layout for a level number. A missing level is
// reported with an error wrapping maze.ErrNotFound.
type MapSource interface {
	LoadMap(level int) (maze.Layout, error)
}

// ScoreRecorder persists a finished game.
type ScoreRecorder interface {
	RecordScore(sessionID string, score, completedLevel int) error
}

// Clock is the wall-clock source for route cadence and ghost respawn.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Phase is the session's top-level state.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Options configures a Session. Maps is required; the rest have defaults.
type Options struct {
	Config     config.MazeConfig
	Maps       MapSource
	Scores     ScoreRecorder // nil disables recording
	Clock      Clock         // nil means SystemClock
	Logger     *log.Logger   // nil discards
	StartLevel int           // 0 means Config.Gameplay.StartLevel
	BestScore  int           // stored high score shown in the HUD
}

// Session is one play-through. It is not safe for concurrent use; the
// frontend drives it from a single goroutine.
type Session struct {
	id         string
	cfg        config.MazeConfig
	maps       MapSource
	scores     ScoreRecorder
	clock      Clock
	log        *log.Logger
	difficulty *config.DifficultyManager
	startLevel int
	runtime    core.RuntimeConfig

	layout maze.Layout
	level  *Level
	player *maze.Player
	ghosts []*maze.Ghost

	score      int
	best       int
	lives      int
	completed  int // highest level cleared
	phase      Phase
	won        bool
	tick       uint64
	clearDelay int
	recorded   bool
	message    string
}

// NewSession creates a session. Call Reset before stepping it.
func NewSession(opts Options) *Session {
	s := &Session{
		cfg:        opts.Config,
		maps:       opts.Maps,
		scores:     opts.Scores,
		clock:      opts.Clock,
		log:        opts.Logger,
		startLevel: opts.StartLevel,
		best:       opts.BestScore,
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	if s.startLevel <= 0 {
		s.startLevel = s.cfg.Gameplay.StartLevel
	}
	if s.startLevel <= 0 {
		s.startLevel = 1
	}
	return s
}

// ID returns the session identifier recorded with the score.
func (s *Session) ID() string { return s.id }

// Title returns the display name.
func (s *Session) Title() string { return "Maze Chase" }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Level returns the current level, nil if none could be loaded.
func (s *Session) Level() *Level { return s.level }

// Player returns the player.
func (s *Session) Player() *maze.Player { return s.player }

// Ghosts returns the ghosts in update order.
func (s *Session) Ghosts() []*maze.Ghost { return s.ghosts }

// Reset starts a new play-through with a fresh session ID.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	s.id = uuid.NewString()
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)

	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.completed = 0
	s.won = false
	s.tick = 0
	s.clearDelay = 0
	s.recorded = false
	s.message = ""
	s.phase = PhaseReady
	s.level = nil
	s.player = nil
	s.ghosts = nil

	s.log.Info("session started", "session", s.id, "level", s.startLevel, "lives", s.lives)
	s.loadLevel(s.startLevel)
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && s.phase == PhaseOver {
		s.Reset(s.runtime)
		return core.StepResult{State: s.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch s.phase {
		case PhasePlaying:
			s.phase = PhasePaused
		case PhasePaused:
			s.phase = PhasePlaying
		}
	}

	if s.phase == PhaseReady {
		if in.Has(core.ActionConfirm) || steerInput(in) != nil {
			s.phase = PhasePlaying
		} else {
			return core.StepResult{State: s.State()}
		}
	}

	if s.phase != PhasePlaying {
		return core.StepResult{State: s.State()}
	}

	s.tick++

	// Level-clear pause
	if s.clearDelay > 0 {
		s.clearDelay--
		if s.clearDelay == 0 {
			s.advanceLevel()
		}
		return core.StepResult{State: s.State()}
	}

	if d := steerInput(in); d != nil {
		s.player.Steer(*d)
	}

	grid := s.level.Grid
	s.player.Update(grid)

	now := s.clock.Now()
	for _, g := range s.ghosts {
		g.Update(now, s.player.Rect, grid)
	}

	if s.resolveCollisions(now) {
		return core.StepResult{State: s.State()}
	}

	if s.level.Cleared() {
		s.completed = s.level.Number
		s.log.Info("level cleared", "session", s.id, "level", s.level.Number, "score", s.score)
		if s.cfg.Gameplay.LevelClearTicks > 0 {
			s.clearDelay = s.cfg.Gameplay.LevelClearTicks
		} else {
			s.advanceLevel()
		}
	}

	return core.StepResult{State: s.State()}
}

// resolveCollisions applies pickups and ghost contacts in that order. It
// returns true when a life was lost and the rest of the tick must be skipped.
func (s *Session) resolveCollisions(now time.Time) bool {
	pr := s.player.Rect

	if n := collect(&s.level.Dots, pr); n > 0 {
		s.score += n * s.cfg.Scoring.Dot
	}

	if n := collect(&s.level.Pellets, pr); n > 0 {
		s.score += n * s.cfg.Scoring.PowerPellet
		for _, g := range s.ghosts {
			g.Frighten()
		}
	}

	for i, g := range s.ghosts {
		if !g.Visible() || !g.Rect.Intersects(pr) {
			continue
		}
		switch g.Mode() {
		case maze.Frightened:
			if g.Capture(now) {
				s.score += s.cfg.Scoring.Ghost
				s.log.Debug("ghost captured", "session", s.id, "ghost", i, "score", s.score)
			}
		case maze.Normal:
			s.loseLife()
			return true
		}
	}
	return false
}

// loseLife handles contact with a chasing ghost.
func (s *Session) loseLife() {
	s.lives--
	s.log.Debug("life lost", "session", s.id, "level", s.level.Number, "lives", s.lives)

	if s.lives <= 0 {
		s.finish(false)
		return
	}

	if s.cfg.Gameplay.KeepPickupsOnDeath {
		s.spawnEntities()
		return
	}
	s.rebuildLevel()
}

// advanceLevel loads the level after the current one.
func (s *Session) advanceLevel() {
	s.loadLevel(s.level.Number + 1)
}

// loadLevel fetches and builds a level. A missing or unusable map ends the
// game; the player has won if at least one level was cleared.
func (s *Session) loadLevel(number int) {
	layout, err := s.maps.LoadMap(number)
	if err != nil {
		s.endOnMapError(number, err)
		return
	}
	lvl, err := BuildLevel(number, layout, s.cfg)
	if err != nil {
		s.endOnMapError(number, err)
		return
	}

	s.layout = layout
	s.level = lvl
	s.spawnEntities()
	s.log.Debug("level loaded", "session", s.id, "level", number,
		"size", [2]int{lvl.Grid.Width(), lvl.Grid.Height()}, "pickups", lvl.Remaining())
}

func (s *Session) endOnMapError(number int, err error) {
	switch {
	case errors.Is(err, maze.ErrNotFound):
		s.log.Info("no more levels", "session", s.id, "level", number)
	default:
		s.log.Warn("cannot load level", "session", s.id, "level", number, "err", err)
		s.message = fmt.Sprintf("Level %d could not be loaded", number)
	}
	if s.completed == 0 && s.message == "" {
		s.message = fmt.Sprintf("No map for level %d", number)
	}
	s.finish(s.lives > 0 && s.completed > 0)
}

// rebuildLevel restores the current level's pickups and entities.
func (s *Session) rebuildLevel() {
	lvl, err := BuildLevel(s.level.Number, s.layout, s.cfg)
	if err != nil {
		// The layout built once already; treat a failure like a bad map.
		s.endOnMapError(s.level.Number, err)
		return
	}
	s.level = lvl
	s.spawnEntities()
}

// spawnEntities places the player and ghosts at their spawns with
// per-level difficulty applied.
func (s *Session) spawnEntities() {
	grid := s.level.Grid
	size := grid.CellSize()
	number := s.level.Number

	px, py := grid.CellToPixel(s.level.PlayerSpawn)
	s.player = maze.NewPlayer(px, py, size, s.cfg.Player.Speed)

	timing := maze.GhostTiming{
		FrightTicks:   s.difficulty.FrightTicks(s.cfg.Ghosts.FrightTicks, number),
		RespawnDelay:  s.cfg.Ghosts.RespawnDelay,
		RouteInterval: s.difficulty.RouteInterval(s.cfg.Ghosts.RouteInterval, number),
	}
	speed := s.difficulty.GhostSpeed(s.cfg.Ghosts.Speed, size, number)

	s.ghosts = make([]*maze.Ghost, 0, len(s.level.GhostSpawns))
	for i, c := range s.level.GhostSpawns {
		gx, gy := grid.CellToPixel(c)
		s.ghosts = append(s.ghosts, maze.NewGhost(gx, gy, size, speed, s.ghostColor(i), timing))
	}
}

func (s *Session) ghostColor(i int) core.Color {
	colors := s.cfg.Ghosts.Colors
	if len(colors) == 0 {
		return core.ColorRed
	}
	c, ok := core.ParseColor(colors[i%len(colors)])
	if !ok {
		return core.ColorRed
	}
	return c
}

// finish enters the Over phase and records the score once.
func (s *Session) finish(won bool) {
	s.phase = PhaseOver
	s.won = won
	s.clearDelay = 0
	s.best = s.Best()
	s.log.Info("game over", "session", s.id, "score", s.score, "won", won, "completed", s.completed)
	snap := s.Snapshot()
	s.log.Debug("final state", "session", s.id, "tick", s.tick, "hash", snap.Hash())

	// Nothing was played if the first level never loaded.
	if s.recorded || s.scores == nil || s.level == nil {
		return
	}
	s.recorded = true
	if err := s.scores.RecordScore(s.id, s.score, s.completed); err != nil {
		s.log.Warn("cannot record score", "session", s.id, "err", err)
	}
}

// Best returns the higher of the stored high score and the current score.
func (s *Session) Best() int {
	return max(s.best, s.score)
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	level := s.startLevel
	if s.level != nil {
		level = s.level.Number
	}
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		Level:    level,
		GameOver: s.phase == PhaseOver,
		Won:      s.won,
		Paused:   s.phase == PhasePaused,
	}
}

// steerInput maps a directional action to a direction. Up wins over Down,
// Left over Right when several are held.
func steerInput(in core.InputFrame) *maze.Direction {
	var d maze.Direction
	switch {
	case in.Has(core.ActionUp):
		d = maze.Up
	case in.Has(core.ActionDown):
		d = maze.Down
	case in.Has(core.ActionLeft):
		d = maze.Left
	case in.Has(core.ActionRight):
		d = maze.Right
	default:
		return nil
	}
	return &d
}
