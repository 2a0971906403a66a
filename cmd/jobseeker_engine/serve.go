package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arvind/jobseeker-engine/internal/config"
	"github.com/arvind/jobseeker-engine/internal/logger"
	"github.com/arvind/jobseeker-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the REST API serving job recommendations, skill-gap analysis, resume scoring, the chatbot webhook, and optional user accounts when DATABASE_URL is set.",
	RunE:  runServe,
}

var (
	serveConfigPath   string
	servePort         int
	serveTaxonomyPath string
	serveCatalogPath  string
	serveDatabaseURL  string
	serveJSONLogs     bool
	serveVerbose      bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (default 8000)")
	serveCmd.Flags().StringVar(&serveTaxonomyPath, "taxonomy", "", "Path to skills taxonomy JSON")
	serveCmd.Flags().StringVar(&serveCatalogPath, "catalog", "", "Path to job catalog CSV")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit JSON logs")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug-level logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg *config.Config
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.TaxonomyPath = serveTaxonomyPath
	}
	if cmd.Flags().Changed("catalog") {
		cfg.CatalogPath = serveCatalogPath
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if serveJSONLogs {
		cfg.JSONLogs = true
	}
	if serveVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}
