package reconciliation

import (
	"context"
	"fmt"
	"time"

	"payment-reconciler/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service runs reconciliations on behalf of callers.
type Service struct {
	engine  *reconcile.Engine
	logger  *zap.Logger
	timeout time.Duration

	// group collapses concurrent requests for the same range into one
	// engine run; the engine is idempotent, so sharing the result is safe.
	group singleflight.Group
}

// NewService creates a new reconciliation service. A non-positive timeout
// leaves runs bounded only by the caller's context.
func NewService(engine *reconcile.Engine, logger *zap.Logger, timeout time.Duration) *Service {
	return &Service{
		engine:  engine,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes one reconciliation over [dateFrom, dateTo] and returns the
// report. Identical concurrent ranges share a single run.
func (s *Service) Run(ctx context.Context, dateFrom, dateTo time.Time) (*reconcile.Report, error) {
	key := fmt.Sprintf("%d:%d", dateFrom.Unix(), dateTo.Unix())

	result, err, shared := s.group.Do(key, func() (any, error) {
		runCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		s.logger.Info("Reconciliation started",
			zap.Time("from", dateFrom),
			zap.Time("to", dateTo),
		)

		report, err := s.engine.Reconcile(runCtx, dateFrom, dateTo)
		if err != nil {
			return nil, err
		}

		s.logger.Info("Reconciliation complete",
			zap.Int("total_orders", report.TotalOrders),
			zap.Int("total_stripe_charges", report.TotalStripeCharges),
			zap.Int("matched_payments", report.MatchedPayments),
			zap.Int("mismatches", len(report.Mismatches)),
		)

		return report, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.logger.Debug("Reconciliation result shared with concurrent caller")
	}

	return result.(*reconcile.Report), nil
}
