package reconciliation

import (
	"errors"
	"fmt"
	"time"

	"payment-reconciler/core/logger"
	"payment-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// dateLayout is the textual date format accepted at the HTTP boundary.
const dateLayout = "2006-01-02"

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/reconcile", h.HandleReconcile)
}

// HandleReconcile triggers a reconciliation run over the requested range
// and returns the report.
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	dateFrom, dateTo, err := ParseRange(c.Query("from"), c.Query("to"), time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format. Use YYYY-MM-DD format.",
		})
	}

	report, err := h.service.Run(c.Context(), dateFrom, dateTo)
	if err != nil {
		return h.renderError(c, l, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}

// renderError maps the run-level error taxonomy to HTTP statuses. A failed
// run never carries a report; callers must treat its absence as "did not
// complete", not "completed clean".
func (h *Handler) renderError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var srcErr *reconcile.SourceError

	switch {
	case errors.Is(err, reconcile.ErrInvalidRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "From date must be before to date",
		})
	case errors.Is(err, reconcile.ErrTimeout):
		l.Error("Reconciliation timed out", zap.Error(err))
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error": "Reconciliation run timed out",
		})
	case errors.As(err, &srcErr):
		l.Error("Reconciliation source unavailable",
			zap.String("source", srcErr.Source),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to fetch %s data", srcErr.Source),
		})
	default:
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to run reconciliation",
		})
	}
}

// ParseRange resolves textual date inputs from the CLI or query string.
// Absent values default to the last 24 hours ending now.
func ParseRange(fromParam, toParam string, now time.Time) (time.Time, time.Time, error) {
	dateTo := now
	if toParam != "" {
		parsed, err := time.Parse(dateLayout, toParam)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parsing to date: %w", err)
		}
		dateTo = parsed
	}

	dateFrom := dateTo.Add(-24 * time.Hour)
	if fromParam != "" {
		parsed, err := time.Parse(dateLayout, fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parsing from date: %w", err)
		}
		dateFrom = parsed
	}

	return dateFrom, dateTo, nil
}
