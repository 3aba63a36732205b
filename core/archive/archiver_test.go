package archive_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"payment-reconciler/core/archive"
	"payment-reconciler/core/archive/mocks"
	"payment-reconciler/core/reconcile"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testReport() *reconcile.Report {
	return &reconcile.Report{
		GeneratedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TotalOrders:        2,
		TotalStripeCharges: 2,
		MatchedPayments:    2,
		Mismatches:         []reconcile.Mismatch{},
	}
}

func TestArchiver_Store(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "reports", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "reconciliation/2025-06-01/run-")
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	archiver := archive.NewArchiver(client, "reports", "reconciliation")

	key, err := archiver.Store(context.Background(), testReport())
	require.NoError(t, err)
	assert.Contains(t, key, "reconciliation/2025-06-01/run-")
	assert.Contains(t, key, ".json")
	client.AssertExpectations(t)
}

func TestArchiver_Store_MissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reports").Return(false, nil)

	archiver := archive.NewArchiver(client, "reports", "reconciliation")

	key, err := archiver.Store(context.Background(), testReport())
	assert.Empty(t, key)
	assert.ErrorContains(t, err, "does not exist")
}

func TestArchiver_Store_UploadError(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	archiver := archive.NewArchiver(client, "reports", "reconciliation")

	key, err := archiver.Store(context.Background(), testReport())
	assert.Empty(t, key)
	assert.ErrorContains(t, err, "uploading report")
}
