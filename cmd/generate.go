package cmd

import (
	"context"
	"fmt"

	"bolt-manager/core/config"
	"bolt-manager/core/logger"
	"bolt-manager/core/sink"
	"bolt-manager/core/storage"
	"bolt-manager/feature/catalog"
	"bolt-manager/feature/geometry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for generate catalogs command
	overwriteCatalogs bool
	publishCatalogs   bool
	catalogOutputDir  string
)

// generateCmd is the parent command for all generate operations.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate importer tables from the geometry registry",
}

// catalogsCmd renders every catalog table and writes it out.
var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Generate the bolt catalog tables",
	Long: `Generate the bolt and assembly type catalogs, the grip-to-length lookup,
the diameter banding table and the geometry parameter dump.

Existing files are left untouched unless --overwrite is given. With
--publish the tables go to object storage instead of the local output
directory.

Examples:
  # Write tables to the configured output directory
  generate catalogs

  # Replace existing tables
  generate catalogs --overwrite

  # Publish to the configured bucket
  generate catalogs --publish --overwrite`,
	RunE: runGenerateCatalogs,
}

func init() {
	generateCmd.AddCommand(catalogsCmd)

	catalogsCmd.Flags().BoolVar(&overwriteCatalogs, "overwrite", false, "Replace existing catalog files")
	catalogsCmd.Flags().BoolVar(&publishCatalogs, "publish", false, "Publish to object storage instead of the local filesystem")
	catalogsCmd.Flags().StringVar(&catalogOutputDir, "output", "", "Override the configured output directory")

	RootCmd.AddCommand(generateCmd)
}

func runGenerateCatalogs(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if catalogOutputDir != "" {
		cfg.Catalog.OutputDir = catalogOutputDir
	}
	if !cfg.Catalog.IsValidDelimiter() {
		return fmt.Errorf("unsupported catalog delimiter %q", cfg.Catalog.Delimiter)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Pick the output sink
	var out sink.Sink
	if publishCatalogs {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		out = sink.NewObject(client, cfg.Storage.Bucket, "catalogs")
		l.Info("Publishing catalogs to object storage", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		out = sink.NewLocal(cfg.Catalog.OutputDir)
		l.Info("Writing catalogs", zap.String("dir", cfg.Catalog.OutputDir))
	}

	gen := catalog.NewGenerator(cfg.Catalog, out, l)
	results := gen.WriteAll(ctx, geometry.Bolts(), overwriteCatalogs)

	var failed int
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d catalog tables failed", failed, len(results))
	}

	l.Info("Catalog generation finished", zap.Int("tables", len(results)))
	return nil
}
