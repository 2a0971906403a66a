// Package main provides the entry point for the Jobseeker Engine CLI
// and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobseeker_engine",
	Short: "Jobseeker skill-matching engine",
	Long:  "Jobseeker Engine extracts skills from resume text, recommends matching jobs from a catalog, analyzes skill gaps against role roadmaps, and scores resume quality.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
