package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"bolt-manager/core/config"
	"bolt-manager/core/database"
	"bolt-manager/core/logger"
	"bolt-manager/core/store"
	"bolt-manager/feature/geometry"
	"bolt-manager/feature/material/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile materials command
	deleteMaterials    bool
	overwriteMaterials bool
	dryRunMaterials    bool
	yesConfirm         bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile derived materials against the template set",
	Long: `Reconcile the derived thread materials of the material library against
the validated template set and the geometry registry.`,
}

// materialsReconcileCmd performs a material reconciliation pass.
var materialsReconcileCmd = &cobra.Command{
	Use:   "materials",
	Short: "Create or delete derived thread materials",
	Long: `Run one reconciliation pass over the material library.

The default mode creates one derived material per valid template and
nominal diameter, skipping ones that already exist. With --overwrite,
existing materials are replaced. With --delete, every derived material is
removed instead; templates are never touched.

Examples:
  # Report what a pass would do (dry-run)
  reconcile materials --dry-run

  # Create missing materials (with interactive confirmation)
  reconcile materials

  # Replace everything, non-interactive
  reconcile materials --overwrite --yes

  # Remove all derived materials
  reconcile materials --delete --yes`,
	RunE: runMaterialsReconcile,
}

func init() {
	reconcileCmd.AddCommand(materialsReconcileCmd)

	materialsReconcileCmd.Flags().BoolVar(&deleteMaterials, "delete", false, "Delete every derived material instead of creating")
	materialsReconcileCmd.Flags().BoolVar(&overwriteMaterials, "overwrite", false, "Replace derived materials that already exist")
	materialsReconcileCmd.Flags().BoolVar(&dryRunMaterials, "dry-run", false, "Report the discovery only, mutate nothing")
	materialsReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runMaterialsReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	opts := reconcile.Options{Mode: reconcile.ModeCreate, Overwrite: overwriteMaterials}
	if deleteMaterials {
		opts.Mode = reconcile.ModeDelete
	}

	l.Info("Starting material reconciliation",
		zap.String("mode", string(opts.Mode)),
		zap.Bool("overwrite", opts.Overwrite),
		zap.String("document", cfg.Server.DocumentID),
	)

	// Connect to the material library
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	dbStore := store.NewDBStore(db)
	if err := dbStore.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate material library: %w", err)
	}

	engine := reconcile.New(geometry.Threads(), dbStore, dbStore, l)

	// Step 1: Discover (always runs, read-only)
	d, err := engine.Discover(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover materials: %w", err)
	}
	if err := engine.Gate(d); err != nil {
		return err
	}

	// Step 2: Print report
	l.Info("Discovery report", d.Counters.Fields()...)

	if dryRunMaterials {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 3: Confirm (delete and overwrite destroy existing materials)
	if opts.Mode == reconcile.ModeDelete || opts.Overwrite {
		prompt := &stdinPrompt{auto: yesConfirm}
		decision, err := prompt.Confirm(opts, d.Counters)
		if err != nil {
			return err
		}
		if decision != reconcile.DecisionProceed {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
	}

	// Step 4: Execute
	counters, err := engine.Execute(ctx, d, opts)
	if err != nil {
		return fmt.Errorf("reconciliation pass failed: %w", err)
	}

	if !counters.Changed() && counters.Failures() == 0 {
		l.Info("Nothing needed doing", counters.Fields()...)
	}
	return nil
}

// stdinPrompt confirms destructive passes on the terminal, or automatically
// when --yes was given.
type stdinPrompt struct {
	auto bool
}

func (p *stdinPrompt) Confirm(opts reconcile.Options, c reconcile.Counters) (reconcile.Decision, error) {
	if p.auto {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return reconcile.DecisionProceed, nil
	}

	fmt.Printf("\n⚠️  Mode %s over %d existing materials. Type 'yes' to confirm: ",
		opts.Mode, c.Existing)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return reconcile.DecisionCancel, nil
	}

	if strings.TrimSpace(response) == "yes" {
		return reconcile.DecisionProceed, nil
	}
	return reconcile.DecisionCancel, nil
}
