package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voxel-cube/internal/platform/tui"
	"github.com/vovakirdan/voxel-cube/internal/storage"
)

var flagSolvesBoard bool

var solvesCmd = &cobra.Command{
	Use:   "solves",
	Short: "Show recorded solves",
	Long: `Display recorded solves. With --size, shows the best solves for
that cube size; otherwise the most recent solves across all sizes.

Examples:
  voxelcube solves
  voxelcube solves --size 3
  voxelcube solves --board`,
	Run: runSolves,
}

func init() {
	solvesCmd.Flags().BoolVar(&flagSolvesBoard, "board", false, "Browse solves in an interactive table")
}

func runSolves(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSolvesBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunSolvesBoard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var solves []storage.SolveEntry
	if flagSize > 0 {
		solves, err = store.SolvesForSize(flagSize, 10)
	} else {
		solves, err = store.RecentSolves(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	if flagSize > 0 {
		fmt.Printf("Best Solves - %d³\n", flagSize)
	} else {
		fmt.Println("Recent Solves")
	}
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'voxelcube play', scramble the cube, and bring it back!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %-8s  %s\n", "Rank", "Size", "Moves", "Scramble", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %-8s  %s\n", "----", "----", "-----", "--------", "----", "----")

	for i, e := range solves {
		fmt.Printf("  %-4d  %-6d  %-6d  %-10d  %-8s  %s\n",
			i+1, e.CubeSize, e.MoveCount, e.ScrambleMoves,
			e.Duration.Round(100*time.Millisecond),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagSize > 0 {
		if best, bestErr := store.BestSolve(flagSize); bestErr == nil && best != nil {
			fmt.Println()
			fmt.Printf("Best: %d moves\n", best.MoveCount)
		}
	}
}
