package main

import (
	"github.com/spf13/cobra"
)

var resumeTipsCmd = &cobra.Command{
	Use:   "resume-tips",
	Short: "Score a resume and suggest improvements",
	Long:  "Runs the resume-quality rubric (length, impact verbs, quantification, contact info, sections, ATS keywords) and prints the scored report as JSON.",
	RunE:  runResumeTips,
}

var (
	tipsConfigPath   string
	tipsTaxonomyPath string
	tipsCatalogPath  string
	tipsText         string
	tipsFile         string
	tipsRole         string
	tipsVerbose      bool
)

func init() {
	resumeTipsCmd.Flags().StringVar(&tipsConfigPath, "config", "", "Path to config.json file")
	resumeTipsCmd.Flags().StringVar(&tipsTaxonomyPath, "taxonomy", "", "Path to skills taxonomy JSON")
	resumeTipsCmd.Flags().StringVar(&tipsCatalogPath, "catalog", "", "Path to job catalog CSV")
	resumeTipsCmd.Flags().StringVar(&tipsText, "text", "", "Resume text to score")
	resumeTipsCmd.Flags().StringVarP(&tipsFile, "file", "f", "", "Path to resume text file")
	resumeTipsCmd.Flags().StringVarP(&tipsRole, "role", "r", "", "Target role for role-specific tips (optional)")
	resumeTipsCmd.Flags().BoolVarP(&tipsVerbose, "verbose", "v", false, "Debug-level logging")

	rootCmd.AddCommand(resumeTipsCmd)
}

func runResumeTips(cmd *cobra.Command, _ []string) error {
	eng, err := loadExtractionEngines(cmd, tipsConfigPath, tipsTaxonomyPath, tipsCatalogPath, tipsVerbose)
	if err != nil {
		return err
	}

	text, err := readTextArg(tipsText, tipsFile)
	if err != nil {
		return err
	}

	report := eng.scorer.Score(text, tipsRole)
	return printJSON(report)
}
