package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestNewClient_RequiresSecretKey(t *testing.T) {
	c, err := NewClient(Config{})
	assert.Nil(t, c)
	assert.EqualError(t, err, "ledger secret key is not configured")
}

func TestNewClient_ClampsPageSize(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		want     int64
	}{
		{"zero falls back to max", 0, 100},
		{"negative falls back to max", -5, 100},
		{"above stripe cap falls back to max", 500, 100},
		{"valid size kept", 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(Config{SecretKey: "sk_test_123", PageSize: tt.pageSize})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.(*stripeClient).pageSize)
		})
	}
}

func TestFromStripe(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)

	ch := &stripe.Charge{
		ID:            "ch_1",
		Amount:        1000,
		Status:        stripe.ChargeStatusSucceeded,
		Refunded:      true,
		Created:       created.Unix(),
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_1"},
	}

	got := fromStripe(ch)
	assert.Equal(t, "ch_1", got.ID)
	assert.Equal(t, int64(1000), got.Amount)
	assert.Equal(t, "succeeded", string(got.Status))
	assert.True(t, got.Refunded)
	assert.Equal(t, created, got.Created)
	require.NotNil(t, got.PaymentIntentID)
	assert.Equal(t, "pi_1", *got.PaymentIntentID)
}

func TestFromStripe_NoPaymentIntent(t *testing.T) {
	got := fromStripe(&stripe.Charge{ID: "ch_1", Status: stripe.ChargeStatusFailed})
	assert.Nil(t, got.PaymentIntentID)
}
