package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voxel-cube/internal/config"
	"github.com/vovakirdan/voxel-cube/internal/core"
	"github.com/vovakirdan/voxel-cube/internal/platform/tui"
	"github.com/vovakirdan/voxel-cube/internal/sim"
	"github.com/vovakirdan/voxel-cube/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the cube interactively",
	Long: `Start an interactive cube session in the terminal.

Controls:
  A/Tab       - Cycle selected axis
  Left/Right  - Select slice
  T/Enter     - Turn selected slice clockwise
  Shift+T     - Turn counter-clockwise
  2           - Half turn
  S           - Scramble
  V           - Solve (replay history in reverse)
  R           - Reset to solved
  +/-         - Animation speed
  Q/Ctrl+C    - Quit

Examples:
  voxelcube play
  voxelcube play --size 4
  voxelcube play --config ./my-cube.yaml
  voxelcube play --fps 30`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom cube config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	cubeCfg, err := config.LoadCube(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSize > 0 {
		cubeCfg.Cube.Size = flagSize
	}

	engine, err := sim.New(sim.Config{
		Size:          cubeCfg.Cube.Size,
		FramesPerTurn: cubeCfg.Animation.FramesPerTurn,
		Speed:         cubeCfg.Animation.Speed,
		ScrambleMoves: cubeCfg.Scramble.Moves,
		Seed:          flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating cube: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - the session still works
		store = nil
	}

	runErr := tui.Run(engine, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
