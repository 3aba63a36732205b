package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"payment-reconciler/core/archive"
	"payment-reconciler/core/config"
	"payment-reconciler/core/database"
	"payment-reconciler/core/ledger"
	"payment-reconciler/core/logger"
	"payment-reconciler/core/reconcile"
	"payment-reconciler/core/utils"
	"payment-reconciler/feature/orders"
	"payment-reconciler/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileFrom   string
	reconcileTo     string
	reconcileOutput string
	archiveReport   bool
)

// reconcileCmd runs a single reconciliation over a date range.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile orders against the Stripe charge ledger",
	Long: `Run one reconciliation over a date range and print the report as JSON.

The run is read-only and advisory: it reports mismatches and orphaned
charges without touching either data source.

Examples:
  # Reconcile the last 24 hours
  payment-reconciler reconcile

  # Reconcile an explicit range
  payment-reconciler reconcile --from 2025-05-01 --to 2025-05-02

  # Write the report to a file and archive a copy to object storage
  payment-reconciler reconcile --from 2025-05-01 --output report.json --archive`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFrom, "from", "", "Range start (YYYY-MM-DD, default: 24h before --to)")
	reconcileCmd.Flags().StringVar(&reconcileTo, "to", "", "Range end (YYYY-MM-DD, default: now)")
	reconcileCmd.Flags().StringVar(&reconcileOutput, "output", "", "Write the JSON report to this file instead of stdout")
	reconcileCmd.Flags().BoolVar(&archiveReport, "archive", false, "Upload the report to the archive bucket")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
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

	dateFrom, dateTo, err := reconciliation.ParseRange(reconcileFrom, reconcileTo, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
	}

	// Connect to the order database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create the Stripe ledger client
	ledgerClient, err := ledger.NewClient(cfg.Ledger)
	if err != nil {
		return fmt.Errorf("failed to create ledger client: %w", err)
	}

	engine := reconcile.NewEngine(orders.NewStore(db), ledgerClient)
	service := reconciliation.NewService(engine, l,
		time.Duration(cfg.Reconcile.TimeoutSeconds)*time.Second)

	report, err := service.Run(ctx, dateFrom, dateTo)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	printReconcileSummary(l, report)

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	if reconcileOutput != "" {
		if err := os.WriteFile(reconcileOutput, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Report written", zap.String("path", reconcileOutput))
	} else {
		fmt.Println(string(payload))
	}

	if archiveReport {
		client, err := archive.NewClient(cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to create archive client: %w", err)
		}

		archiver := archive.NewArchiver(client, cfg.Archive.Bucket, cfg.Archive.Prefix)
		key, err := archiver.Store(ctx, report)
		if err != nil {
			return fmt.Errorf("failed to archive report: %w", err)
		}
		l.Info("Report archived", zap.String("bucket", cfg.Archive.Bucket), zap.String("key", key))
	}

	return nil
}

// printReconcileSummary logs the run outcome, including the order volume
// that failed to reconcile.
func printReconcileSummary(l *zap.Logger, report *reconcile.Report) {
	var unmatchedVolume int64
	for _, m := range report.OrderFindings() {
		unmatchedVolume += m.OrderAmount
	}

	l.Info("Reconciliation report",
		zap.Int("total_orders", report.TotalOrders),
		zap.Int("total_stripe_charges", report.TotalStripeCharges),
		zap.Int("matched_payments", report.MatchedPayments),
		zap.Int("mismatches", len(report.Mismatches)),
		zap.Int("orphaned_charges", len(report.OrphanFindings())),
		zap.String("unmatched_order_volume", utils.FormatMinorUnits(unmatchedVolume)),
	)
}
