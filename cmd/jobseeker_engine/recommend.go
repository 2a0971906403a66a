package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arvind/jobseeker-engine/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend jobs for a set of skills or a resume",
	Long:  "Scores every job in the catalog against the given skills (or skills extracted from a resume) and prints the top matches as JSON.",
	RunE:  runRecommend,
}

var (
	recConfigPath   string
	recTaxonomyPath string
	recCatalogPath  string
	recSkills       string
	recText         string
	recFile         string
	recTopN         int
	recLevel        string
	recLocation     string
	recVerbose      bool
)

func init() {
	recommendCmd.Flags().StringVar(&recConfigPath, "config", "", "Path to config.json file")
	recommendCmd.Flags().StringVar(&recTaxonomyPath, "taxonomy", "", "Path to skills taxonomy JSON")
	recommendCmd.Flags().StringVar(&recCatalogPath, "catalog", "", "Path to job catalog CSV")
	recommendCmd.Flags().StringVarP(&recSkills, "skills", "s", "", "Comma-separated skill list (mutually exclusive with --text/--file)")
	recommendCmd.Flags().StringVar(&recText, "text", "", "Resume text to extract skills from")
	recommendCmd.Flags().StringVarP(&recFile, "file", "f", "", "Path to resume text file")
	recommendCmd.Flags().IntVarP(&recTopN, "top", "n", 0, "Number of recommendations to return (default 5, max 15)")
	recommendCmd.Flags().StringVarP(&recLevel, "level", "l", "", "Filter by experience level (entry/mid/senior)")
	recommendCmd.Flags().StringVar(&recLocation, "location", "", "Filter by location substring")
	recommendCmd.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Debug-level logging")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	eng, err := loadEngines(cmd, recConfigPath, recTaxonomyPath, recCatalogPath, recVerbose)
	if err != nil {
		return err
	}

	opts := recommend.Options{
		TopN:            recTopN,
		ExperienceLevel: recLevel,
		Location:        recLocation,
	}

	var result *recommend.Result
	if recSkills != "" {
		if recText != "" || recFile != "" {
			return fmt.Errorf("cannot use --skills with --text/--file")
		}
		result, err = eng.recommender.Recommend(splitCSVFlag(recSkills), opts)
	} else {
		text, readErr := readTextArg(recText, recFile)
		if readErr != nil {
			return readErr
		}
		result, err = eng.recommender.RecommendFromResume(text, opts)
	}
	if err != nil {
		return err
	}
	return printJSON(result)
}
