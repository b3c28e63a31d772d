// voxelcube is a terminal simulator for an NxNxN twisty cube built from
// voxel cubelets.
//
// Usage:
//
//	voxelcube play              - Play interactively in the terminal
//	voxelcube scramble          - Print a deterministic scramble sequence
//	voxelcube solves            - Show recorded solves
//	voxelcube serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible scrambles
//	--db <path>     - Set database path (default: ~/.voxelcube/solves.db)
//	--size <n>      - Cube edge length (default from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagSize   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voxelcube",
	Short: "Voxel Cube - An NxNxN twisty puzzle in your terminal",
	Long: `Voxel Cube simulates an NxNxN twisty cube as a lattice of voxel
cubelets, with animated slice turns, scrambles, and solve tracking.

Available commands:
  play      - Play interactively in the terminal
  scramble  - Print a deterministic scramble sequence
  solves    - View recorded solves
  serve     - Start SSH server for remote play

Examples:
  voxelcube play
  voxelcube play --size 4
  voxelcube scramble --moves 25 --seed-text daily
  voxelcube solves
  voxelcube serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.voxelcube/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Cube edge length (0 = use config value)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(solvesCmd)
	rootCmd.AddCommand(serveCmd)
}
