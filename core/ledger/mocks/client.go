package mocks

import (
	"context"
	"time"

	"payment-reconciler/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of ledger.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListCharges(ctx context.Context, dateFrom, dateTo time.Time) ([]reconcile.Charge, error) {
	args := m.Called(ctx, dateFrom, dateTo)
	if charges, ok := args.Get(0).([]reconcile.Charge); ok {
		return charges, args.Error(1)
	}
	return nil, args.Error(1)
}
