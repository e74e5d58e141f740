// mazechase is a single-player maze-chase game for the terminal.
//
// Usage:
//
//	mazechase play             - Play from the first level
//	mazechase scores           - Show the leaderboard
//	mazechase maps list        - List stored maps
//	mazechase maps seed        - Store the bundled maps
//	mazechase maps import      - Store maps from YAML files
//	mazechase maps export <n>  - Print a stored map as YAML
//	mazechase serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.mazechase/mazechase.db)
//	--log <path>    - Set log file (default: ~/.mazechase/mazechase.log)
//
// MAZECHASE_DB, MAZECHASE_CONFIG and MAZECHASE_LOG override the defaults and
// may be set in a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	envDB     = "MAZECHASE_DB"
	envConfig = "MAZECHASE_CONFIG"
	envLog    = "MAZECHASE_LOG"

	envLogLevel = "MAZECHASE_LOG_LEVEL"
)

// dotenvErr is set before any flag default is read.
var dotenvErr = godotenv.Load()

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - Eat the dots, dodge the ghosts",
	Long: `Maze Chase is a terminal maze game: clear every dot while four
ghosts hunt you down. Power pellets turn the tables for a few seconds.

Available commands:
  play     - Start a game
  scores   - View high scores
  maps     - Manage stored maps
  serve    - Start SSH server for remote play

Examples:
  mazechase play
  mazechase play --level 2 --difficulty hard
  mazechase scores --limit 20
  mazechase maps import ./my-maps
  mazechase serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr(envDB, "~/.mazechase/mazechase.db"), "Path to maps and scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", envOr(envLog, "~/.mazechase/mazechase.log"), "Path to log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(serveCmd)
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogger opens the log file named by --log. The game owns the terminal,
// so nothing is logged to stdout. A logger that cannot open its file
// discards everything.
func openLogger() (*log.Logger, func()) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	if flagLogPath != "" {
		path := expandHome(flagLogPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazechase",
	})
	if name := os.Getenv(envLogLevel); name != "" {
		if lvl, err := log.ParseLevel(name); err == nil {
			logger.SetLevel(lvl)
		}
	}
	if dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		logger.Warn("could not read .env", "error", dotenvErr)
	}
	return logger, closeFn
}
