package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/game"
	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagLevel      int
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Maze Chase.

Controls:
  Arrows/WASD/hjkl - Move
  Space/Enter      - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, ghosts start slow and speed up every level
  normal - 3 lives, ghosts start at 30% difficulty
  hard   - 2 lives, ghosts start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Maps come from the database. An empty database is seeded with the
bundled maps; without a database the bundled maps are used directly
and no score is recorded.

Examples:
  mazechase play
  mazechase play --level 3
  mazechase play --difficulty hard
  mazechase play --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start from (0 = config start level)")
	playCmd.Flags().StringVar(&flagConfig, "config", envOr(envConfig, ""), "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	mazeCfg, err := loadMazeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	maps, scores, store, err := openSources(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	session := game.NewSession(game.Options{
		Config:     mazeCfg,
		Maps:       maps,
		Scores:     scores,
		Logger:     logger,
		StartLevel: flagLevel,
		BestScore:  storedBest(store, logger),
	})

	runErr := tui.Run(session, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadMazeConfig loads the game config and applies --difficulty on top.
func loadMazeConfig() (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyMazePreset(&cfg, preset)
	}
	return cfg, nil
}

// openSources picks where maps come from and where scores go. The store is
// returned so the caller can close it; it is nil when the database could
// not be opened.
func openSources(logger *log.Logger) (game.MapSource, game.ScoreRecorder, *storage.Store, error) {
	bundled, err := levels.LoadBundled()
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("database unavailable, using bundled maps", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return bundled, nil, nil, nil
	}

	seeded, err := seedMaps(store, bundled, false)
	if err != nil {
		logger.Warn("could not seed maps, using bundled maps", "error", err)
		return bundled, store, store, nil
	}
	if seeded > 0 {
		logger.Info("seeded bundled maps", "count", seeded)
	}

	return store, store, store, nil
}

// storedBest reads the leaderboard's top score. A nil store has none.
func storedBest(store *storage.Store, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore()
	if err != nil {
		logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// seedMaps stores the bundled maps. Unless overwrite is set it does nothing
// when the database already holds maps. It returns the number stored.
func seedMaps(store *storage.Store, bundled *levels.Bundled, overwrite bool) (int, error) {
	if !overwrite {
		existing, err := store.Levels()
		if err != nil {
			return 0, err
		}
		if len(existing) > 0 {
			return 0, nil
		}
	}

	n := 0
	for _, m := range bundled.Maps() {
		if err := store.SaveMap(m.Level, m.Layout); err != nil {
			return n, fmt.Errorf("seed level %d: %w", m.Level, err)
		}
		n++
	}
	return n, nil
}
