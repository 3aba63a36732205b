package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-reconciler/core/config"
	"payment-reconciler/core/database"
	"payment-reconciler/core/ledger"
	"payment-reconciler/core/loader"
	"payment-reconciler/core/logger"
	"payment-reconciler/core/middleware/auth"
	"payment-reconciler/core/middleware/rayid"
	"payment-reconciler/core/reconcile"
	"payment-reconciler/feature/orders"
	"payment-reconciler/feature/reconciliation"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server exposing on-demand reconciliation runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the order database. Unlike a serving cache, the
		// engine cannot do anything useful without it.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to order database", zap.Error(err))
		}

		// 4. Create the Stripe ledger client
		ledgerClient, err := ledger.NewClient(cfg.Ledger)
		if err != nil {
			logg.Fatal("Failed to create ledger client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Wire the engine and feature
		engine := reconcile.NewEngine(orders.NewStore(db), ledgerClient)
		service := reconciliation.NewService(engine, logg,
			time.Duration(cfg.Reconcile.TimeoutSeconds)*time.Second)

		mgr := loader.NewManager()
		mgr.Register(reconciliation.NewFeature(service, logg))

		// Middleware Registration
		// RayID first so every log line can be correlated
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Auth gate: reconciliation runs are an operator capability
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
