package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/core/reconcile"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Client defines the interface for charge ledger operations.
// It satisfies reconcile.ChargeLedger.
type Client interface {
	// ListCharges returns every charge created within [dateFrom, dateTo],
	// exhausting pagination.
	ListCharges(ctx context.Context, dateFrom, dateTo time.Time) ([]reconcile.Charge, error)
}

// NewClient creates a Stripe-backed ledger client from the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("ledger secret key is not configured")
	}

	pageSize := int64(cfg.PageSize)
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}

	return &stripeClient{
		api:      client.New(cfg.SecretKey, nil),
		pageSize: pageSize,
	}, nil
}

type stripeClient struct {
	api      *client.API
	pageSize int64
}

func (c *stripeClient) ListCharges(ctx context.Context, dateFrom, dateTo time.Time) ([]reconcile.Charge, error) {
	params := &stripe.ChargeListParams{
		CreatedRange: &stripe.RangeQueryParams{
			GreaterThanOrEqual: dateFrom.Unix(),
			LesserThanOrEqual:  dateTo.Unix(),
		},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(c.pageSize)

	charges := []reconcile.Charge{}

	// The iterator follows Stripe's cursor pagination page by page; each
	// page's cursor depends on the previous response.
	iter := c.api.Charges.List(params)
	for iter.Next() {
		charges = append(charges, fromStripe(iter.Charge()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing stripe charges: %w", err)
	}

	return charges, nil
}

// fromStripe maps a Stripe charge to the engine's snapshot type.
func fromStripe(ch *stripe.Charge) reconcile.Charge {
	out := reconcile.Charge{
		ID:       ch.ID,
		Status:   reconcile.ChargeStatus(ch.Status),
		Refunded: ch.Refunded,
		Amount:   ch.Amount,
		Created:  time.Unix(ch.Created, 0).UTC(),
	}
	if ch.PaymentIntent != nil && ch.PaymentIntent.ID != "" {
		intent := ch.PaymentIntent.ID
		out.PaymentIntentID = &intent
	}
	return out
}
