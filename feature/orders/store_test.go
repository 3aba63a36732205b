package orders

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestListOrdersInRange(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewStore(db)

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	pi := "pi_1"
	rows := sqlmock.NewRows([]string{
		"id", "order_number", "stripe_payment_intent_id", "payment_status",
		"amount_total", "currency", "customer_email", "created_at",
	}).
		AddRow("o1", "ORD-000001", pi, "succeeded", int64(1000), "sgd", "a@example.com", createdAt).
		AddRow("o2", "ORD-000002", nil, "pending", int64(500), "sgd", "b@example.com", createdAt)

	mock.ExpectQuery("SELECT \\* FROM `orders` WHERE created_at >= \\? AND created_at <= \\? ORDER BY created_at, id").
		WithArgs(from, to).
		WillReturnRows(rows)

	records, err := store.ListOrdersInRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "o1", records[0].ID)
	require.NotNil(t, records[0].PaymentIntentID)
	assert.Equal(t, "pi_1", *records[0].PaymentIntentID)
	assert.Equal(t, int64(1000), records[0].AmountTotal)

	// Orders without an intent must still come back.
	assert.Equal(t, "o2", records[1].ID)
	assert.Nil(t, records[1].PaymentIntentID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersInRange_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `orders`").
		WillReturnError(assert.AnError)

	records, err := store.ListOrdersInRange(context.Background(), time.Time{}, time.Time{})
	assert.Nil(t, records)
	assert.ErrorContains(t, err, "listing orders")
}

func TestListOrdersInRange_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `orders`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	records, err := store.ListOrdersInRange(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}
