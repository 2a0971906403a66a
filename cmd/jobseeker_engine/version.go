package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the engine version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("jobseeker_engine " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
