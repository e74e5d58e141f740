package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const mazeConfigFile = "mazechase.yaml"

// LoadMaze loads the maze game configuration.
// Search order: customPath -> ~/.mazechase/configs/mazechase.yaml -> ./configs/mazechase.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadMaze(customPath string) (MazeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMazeConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseMaze(data)
		if err != nil {
			return DefaultMazeConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(mazeConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseMaze(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", mazeConfigFile)); err == nil {
		if cfg, err := ParseMaze(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseMaze(DefaultYAML())
	if err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseMaze decodes YAML over DefaultMazeConfig and validates the result.
func ParseMaze(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values the game cannot run without.
func (c MazeConfig) Validate() error {
	switch {
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize)
	case c.Player.Speed <= 0 || c.Player.Speed > c.Grid.CellSize:
		return fmt.Errorf("player.speed must be in 1..%d, got %d", c.Grid.CellSize, c.Player.Speed)
	case c.Grid.CellSize%c.Player.Speed != 0:
		return fmt.Errorf("player.speed %d must divide grid.cell_size %d", c.Player.Speed, c.Grid.CellSize)
	case c.Ghosts.Speed <= 0 || c.Ghosts.Speed > c.Grid.CellSize:
		return fmt.Errorf("ghosts.speed must be in 1..%d, got %d", c.Grid.CellSize, c.Ghosts.Speed)
	case c.Grid.CellSize%c.Ghosts.Speed != 0:
		return fmt.Errorf("ghosts.speed %d must divide grid.cell_size %d", c.Ghosts.Speed, c.Grid.CellSize)
	case c.Ghosts.RouteInterval < 0:
		return fmt.Errorf("ghosts.route_interval must not be negative")
	case c.Ghosts.RespawnDelay < 0:
		return fmt.Errorf("ghosts.respawn_delay must not be negative")
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	case c.Gameplay.StartLevel <= 0:
		return fmt.Errorf("gameplay.start_level must be positive, got %d", c.Gameplay.StartLevel)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}

// ApplyMazePreset modifies the config based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}

// ParsePreset maps a flag value to a preset. Empty selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}
