package orders

import (
	"context"
	"fmt"
	"time"

	"payment-reconciler/core/reconcile"

	"gorm.io/gorm"
)

// Store reads order snapshots from the database.
// It satisfies reconcile.OrderSource.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new order store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListOrdersInRange returns all orders created within [dateFrom, dateTo],
// including ones without a payment intent, ordered by created_at then id.
func (s *Store) ListOrdersInRange(ctx context.Context, dateFrom, dateTo time.Time) ([]reconcile.Order, error) {
	var rows []Order
	err := s.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", dateFrom, dateTo).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	records := make([]reconcile.Order, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}
	return records, nil
}
