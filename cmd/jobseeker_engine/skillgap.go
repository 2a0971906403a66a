package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arvind/jobseeker-engine/internal/gap"
)

var skillGapCmd = &cobra.Command{
	Use:   "skill-gap",
	Short: "Analyze the skill gap toward a target role",
	Long:  "Compares the given skills (or skills extracted from a resume) against the roadmap for a target role and prints the gap report as JSON.",
	RunE:  runSkillGap,
}

var (
	gapConfigPath   string
	gapTaxonomyPath string
	gapCatalogPath  string
	gapSkills       string
	gapText         string
	gapFile         string
	gapRole         string
	gapLevel        string
	gapVerbose      bool
)

func init() {
	skillGapCmd.Flags().StringVar(&gapConfigPath, "config", "", "Path to config.json file")
	skillGapCmd.Flags().StringVar(&gapTaxonomyPath, "taxonomy", "", "Path to skills taxonomy JSON")
	skillGapCmd.Flags().StringVar(&gapCatalogPath, "catalog", "", "Path to job catalog CSV")
	skillGapCmd.Flags().StringVarP(&gapSkills, "skills", "s", "", "Comma-separated skill list (mutually exclusive with --text/--file)")
	skillGapCmd.Flags().StringVar(&gapText, "text", "", "Resume text to extract skills from")
	skillGapCmd.Flags().StringVarP(&gapFile, "file", "f", "", "Path to resume text file")
	skillGapCmd.Flags().StringVarP(&gapRole, "role", "r", "", "Target role, e.g. \"Data Scientist\" (required)")
	skillGapCmd.Flags().StringVarP(&gapLevel, "level", "l", "", "Target level: beginner, intermediate or advanced (default intermediate)")
	skillGapCmd.Flags().BoolVarP(&gapVerbose, "verbose", "v", false, "Debug-level logging")

	_ = skillGapCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(skillGapCmd)
}

func runSkillGap(cmd *cobra.Command, _ []string) error {
	eng, err := loadEngines(cmd, gapConfigPath, gapTaxonomyPath, gapCatalogPath, gapVerbose)
	if err != nil {
		return err
	}

	var report *gap.Report
	if gapSkills != "" {
		if gapText != "" || gapFile != "" {
			return fmt.Errorf("cannot use --skills with --text/--file")
		}
		report = eng.analyzer.Analyze(splitCSVFlag(gapSkills), gapRole, gapLevel)
	} else {
		text, readErr := readTextArg(gapText, gapFile)
		if readErr != nil {
			return readErr
		}
		report = eng.analyzer.AnalyzeFromResume(text, gapRole, gapLevel)
	}
	return printJSON(report)
}
