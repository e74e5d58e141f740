package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagSeedOverwrite bool
	flagExportOut     string
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Manage stored maps",
	Long: `List, seed, import and export the maps stored in the database.

Map files are YAML with an ASCII layout:
  '#' wall, '.' or ' ' dot, 'o' power pellet, 'P' player, 'G' ghost

Examples:
  mazechase maps list
  mazechase maps seed --overwrite
  mazechase maps import level04.yaml ./more-maps
  mazechase maps export 1 -o level01.yaml
  mazechase maps delete 4`,
}

var mapsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored maps",
	Args:  cobra.NoArgs,
	Run:   runMapsList,
}

var mapsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the bundled maps",
	Args:  cobra.NoArgs,
	Run:   runMapsSeed,
}

var mapsImportCmd = &cobra.Command{
	Use:   "import <file|dir>...",
	Short: "Store maps from YAML files or directories",
	Args:  cobra.MinimumNArgs(1),
	Run:   runMapsImport,
}

var mapsExportCmd = &cobra.Command{
	Use:   "export <level>",
	Short: "Print a stored map as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runMapsExport,
}

var mapsDeleteCmd = &cobra.Command{
	Use:   "delete <level>",
	Short: "Remove a stored map",
	Args:  cobra.ExactArgs(1),
	Run:   runMapsDelete,
}

func init() {
	mapsSeedCmd.Flags().BoolVar(&flagSeedOverwrite, "overwrite", false, "Replace maps already in the database")
	mapsExportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Write to file instead of stdout")

	mapsCmd.AddCommand(mapsListCmd)
	mapsCmd.AddCommand(mapsSeedCmd)
	mapsCmd.AddCommand(mapsImportCmd)
	mapsCmd.AddCommand(mapsExportCmd)
	mapsCmd.AddCommand(mapsDeleteCmd)
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runMapsList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	nums, err := store.Levels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing maps: %v\n", err)
		return
	}

	if len(nums) == 0 {
		fmt.Println("No maps stored.")
		fmt.Println()
		fmt.Println("Run 'mazechase maps seed' to store the bundled maps.")
		return
	}

	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %s\n", "Level", "Size", "Pellets", "Ghosts", "Status")
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %s\n", "-----", "----", "-------", "------", "------")
	for _, n := range nums {
		layout, err := store.LoadMap(n)
		if err != nil {
			fmt.Printf("  %-5d  %-7s  %-7s  %-6s  %v\n", n, "-", "-", "-", err)
			continue
		}
		size := fmt.Sprintf("%dx%d", layout.Width(), layout.Height())
		fmt.Printf("  %-5d  %-7s  %-7d  %-6d  ok\n", n, size, len(layout.PowerPellets), len(layout.GhostSpawns))
	}
}

func runMapsSeed(_ *cobra.Command, _ []string) {
	bundled, err := levels.LoadBundled()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	n, err := seedMaps(store, bundled, flagSeedOverwrite)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding maps: %v\n", err)
		return
	}
	if n == 0 {
		fmt.Println("Database already holds maps; use --overwrite to replace them.")
		return
	}
	fmt.Printf("Stored %d bundled maps.\n", n)
}

func runMapsImport(_ *cobra.Command, args []string) {
	var maps []levels.Map
	for _, arg := range args {
		found, err := readMaps(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		maps = append(maps, found...)
	}

	if len(maps) == 0 {
		fmt.Println("No maps found.")
		return
	}

	store := mustOpenStore()
	defer store.Close()

	for _, m := range maps {
		if err := store.SaveMap(m.Level, m.Layout); err != nil {
			fmt.Fprintf(os.Stderr, "Error storing %s: %v\n", m.FilePath, err)
			continue
		}
		fmt.Printf("Stored level %d from %s\n", m.Level, m.FilePath)
	}
}

// readMaps reads one map file, or every valid map under a directory.
func readMaps(path string) ([]levels.Map, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return levels.NewLoader(path).LoadAll()
	}
	m, err := levels.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []levels.Map{m}, nil
}

// parseLevel parses a level argument or exits.
func parseLevel(arg string) int {
	level, err := strconv.Atoi(arg)
	if err != nil || level <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", arg)
		os.Exit(1)
	}
	return level
}

func runMapsExport(_ *cobra.Command, args []string) {
	level := parseLevel(args[0])

	store := mustOpenStore()
	layout, err := store.LoadMap(level)
	store.Close()
	if err != nil {
		if errors.Is(err, storage.ErrMapNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no map stored for level %d\n", level)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	data, err := levels.EncodeYAML(levels.Map{
		Level:  level,
		Name:   fmt.Sprintf("Level %d", level),
		Layout: layout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagExportOut == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote level %d to %s\n", level, flagExportOut)
}

func runMapsDelete(_ *cobra.Command, args []string) {
	level := parseLevel(args[0])

	store := mustOpenStore()
	err := store.DeleteMap(level)
	store.Close()

	if err != nil {
		if errors.Is(err, storage.ErrMapNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no map stored for level %d\n", level)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Deleted level %d.\n", level)
}
