package reconcile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_JSONShape(t *testing.T) {
	pi := "pi_1"
	status := "succeeded"
	amount := int64(900)

	report := &Report{
		GeneratedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TotalOrders:        1,
		TotalStripeCharges: 1,
		MatchedPayments:    0,
		Mismatches: []Mismatch{
			{
				OrderID:         "o1",
				PaymentIntentID: &pi,
				OrderStatus:     "succeeded",
				OrderAmount:     1000,
				StripeStatus:    &status,
				StripeAmount:    &amount,
				Kind:            IssueAmountMismatch,
				Issue:           "Amount mismatch: order 1000 vs charge 900",
			},
		},
	}

	payload, err := json.Marshal(report)
	require.NoError(t, err)

	// Downstream automation depends on these exact field names.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	for _, key := range []string{"date", "totalOrders", "totalStripeCharges", "matchedPayments", "mismatches"} {
		assert.Contains(t, decoded, key)
	}

	mismatches, ok := decoded["mismatches"].([]any)
	require.True(t, ok)
	require.Len(t, mismatches, 1)
	m := mismatches[0].(map[string]any)
	assert.Equal(t, "o1", m["orderId"])
	assert.Equal(t, "pi_1", m["paymentIntentId"])
	assert.Equal(t, float64(900), m["stripeAmount"])
}

func TestReport_OptionalFieldsOmitted(t *testing.T) {
	report := &Report{
		Mismatches: []Mismatch{
			{OrderID: "o1", OrderStatus: "pending", OrderAmount: 500, Kind: IssueMissingIntent, Issue: "No payment intent ID"},
		},
	}

	payload, err := json.Marshal(report)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "paymentIntentId")
	assert.NotContains(t, string(payload), "stripeStatus")
	assert.NotContains(t, string(payload), "stripeAmount")
}

func TestReport_FindingSplit(t *testing.T) {
	report := &Report{
		Mismatches: []Mismatch{
			{OrderID: "o1", Kind: IssueMissingIntent},
			{OrderID: OrphanOrderID, Kind: IssueOrphanedCharge},
			{OrderID: "o2", Kind: IssueStatusMismatch},
		},
	}

	assert.Len(t, report.OrderFindings(), 2)
	assert.Len(t, report.OrphanFindings(), 1)
}
