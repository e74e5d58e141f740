package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/game"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Maze Chase SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game session. Maps and scores come from
the server's database, so all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mazechase/host_key

Examples:
  mazechase serve                           # Listen on :23234 with auto-generated key
  mazechase serve --ssh :2222               # Listen on port 2222
  mazechase serve --host-key ./my_host_key  # Use specific host key
  mazechase serve --db ./mazechase.db       # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", envOr(envConfig, ""), "Path to custom game config YAML")
}

// connectHint returns the ssh command that reaches a listen address.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port == "" || port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}

func runServe(_ *cobra.Command, _ []string) {
	flagConfig = flagServeConfig
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
	if store != nil {
		defer store.Close()
	}

	newGame := func(user string) tui.Game {
		return game.NewSession(game.Options{
			Config:    mazeCfg,
			Maps:      maps,
			Scores:    scores,
			Logger:    logger.With("user", user),
			BestScore: storedBest(store, logger),
		})
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	server, err := tui.NewSSHServer(cfg, newGame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Maze Chase SSH server on %s\n", server.Addr())
	fmt.Println("Connect with:", connectHint(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
