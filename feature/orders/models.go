package orders

import (
	"time"

	"payment-reconciler/core/reconcile"
)

// Order represents a row of the 'orders' table.
type Order struct {
	ID              string    `gorm:"column:id;primaryKey"`
	OrderNumber     string    `gorm:"column:order_number"`
	PaymentIntentID *string   `gorm:"column:stripe_payment_intent_id"`
	PaymentStatus   string    `gorm:"column:payment_status"`
	AmountTotal     int64     `gorm:"column:amount_total"`
	Currency        string    `gorm:"column:currency"`
	CustomerEmail   string    `gorm:"column:customer_email"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (Order) TableName() string {
	return "orders"
}

// ToRecord converts the row to the engine's snapshot type.
func (o Order) ToRecord() reconcile.Order {
	return reconcile.Order{
		ID:              o.ID,
		PaymentIntentID: o.PaymentIntentID,
		PaymentStatus:   reconcile.PaymentStatus(o.PaymentStatus),
		AmountTotal:     o.AmountTotal,
		CreatedAt:       o.CreatedAt,
	}
}
