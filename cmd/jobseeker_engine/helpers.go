package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arvind/jobseeker-engine/internal/config"
	"github.com/arvind/jobseeker-engine/internal/gap"
	"github.com/arvind/jobseeker-engine/internal/logger"
	"github.com/arvind/jobseeker-engine/internal/recommend"
	"github.com/arvind/jobseeker-engine/internal/resume"
	"github.com/arvind/jobseeker-engine/internal/skills"
	"github.com/arvind/jobseeker-engine/internal/taxonomy"
)

// engines bundles everything a subcommand needs to answer a query.
type engines struct {
	cfg         *config.Config
	log         *zap.Logger
	extractor   *skills.Extractor
	recommender *recommend.Recommender
	analyzer    *gap.Analyzer
	scorer      *resume.Scorer
}

// loadEngines resolves configuration (file, flags, defaults) and builds
// the engine set backed by the taxonomy and catalog on disk.
func loadEngines(cmd *cobra.Command, configPath, taxonomyPath, catalogPath string, verbose bool) (*engines, error) {
	return buildEngines(cmd, configPath, taxonomyPath, catalogPath, verbose, false)
}

// loadExtractionEngines is loadEngines for subcommands that only extract
// skills from text. When the taxonomy file cannot be loaded it falls back to
// the compiled-in taxonomy instead of failing, so extract and resume-tips
// keep working without reference data on disk.
func loadExtractionEngines(cmd *cobra.Command, configPath, taxonomyPath, catalogPath string, verbose bool) (*engines, error) {
	return buildEngines(cmd, configPath, taxonomyPath, catalogPath, verbose, true)
}

func buildEngines(cmd *cobra.Command, configPath, taxonomyPath, catalogPath string, verbose, extractionOnly bool) (*engines, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	// Command-line flags override config file values.
	if cmd.Flags().Changed("taxonomy") {
		cfg.TaxonomyPath = taxonomyPath
	}
	if cmd.Flags().Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if verbose {
		cfg.Verbose = true
	}

	// Extraction-only commands never touch the catalog and can survive a
	// missing taxonomy, so the reference-data checks do not apply to them.
	if !extractionOnly {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	tax, err := taxonomy.Load(cfg.TaxonomyPath)
	if err != nil {
		var loadErr *taxonomy.LoadError
		if !extractionOnly || !errors.As(err, &loadErr) {
			return nil, err
		}
		log.Warn("taxonomy unavailable, using built-in fallback",
			zap.String("path", cfg.TaxonomyPath), zap.Error(err))
		tax = taxonomy.Builtin()
	}

	extractor := skills.NewExtractor(tax)
	return &engines{
		cfg:         cfg,
		log:         log,
		extractor:   extractor,
		recommender: recommend.New(cfg.CatalogPath, extractor, log),
		analyzer:    gap.New(tax, extractor),
		scorer:      resume.NewScorer(tax, extractor),
	}, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readTextArg returns the resume text from --text or --file, requiring
// exactly one of them.
func readTextArg(text, file string) (string, error) {
	if text != "" && file != "" {
		return "", fmt.Errorf("cannot use --text with --file")
	}
	if text != "" {
		return text, nil
	}
	if file == "" {
		return "", fmt.Errorf("must provide either --text or --file")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}

// splitCSVFlag splits a comma-separated flag value into trimmed items.
func splitCSVFlag(value string) []string {
	out := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
