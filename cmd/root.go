package cmd

import (
	"fmt"
	"os"

	"payment-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "payment-reconciler",
	Short: "Payment Reconciliation Service",
	Long: `Payment Reconciler cross-checks locally recorded orders against the
Stripe charge ledger and reports matches, discrepancies, and orphaned
charges. It never mutates either data source.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches CLI expectations; debug level gives
		// ISO8601 timestamps instead of epoch.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
