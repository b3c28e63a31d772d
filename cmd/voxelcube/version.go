package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the voxelcube version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("voxelcube", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
