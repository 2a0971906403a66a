package main

import (
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract known skills from free text",
	Long:  "Scans the given text for skills and aliases defined in the taxonomy and prints the canonical skill names as JSON.",
	RunE:  runExtract,
}

var (
	extractConfigPath   string
	extractTaxonomyPath string
	extractCatalogPath  string
	extractText         string
	extractFile         string
	extractVerbose      bool
)

func init() {
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to config.json file")
	extractCmd.Flags().StringVar(&extractTaxonomyPath, "taxonomy", "", "Path to skills taxonomy JSON")
	extractCmd.Flags().StringVar(&extractCatalogPath, "catalog", "", "Path to job catalog CSV")
	extractCmd.Flags().StringVar(&extractText, "text", "", "Text to scan for skills")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to text file to scan")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Debug-level logging")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	eng, err := loadExtractionEngines(cmd, extractConfigPath, extractTaxonomyPath, extractCatalogPath, extractVerbose)
	if err != nil {
		return err
	}

	text, err := readTextArg(extractText, extractFile)
	if err != nil {
		return err
	}

	detected := eng.extractor.Extract(text)
	return printJSON(map[string]any{
		"detected_skills": detected,
		"count":           len(detected),
		"by_category":     eng.extractor.CategorizeDetected(detected),
	})
}
