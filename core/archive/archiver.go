package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"payment-reconciler/core/reconcile"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Archiver uploads finished reconciliation reports to object storage.
type Archiver struct {
	client Client
	bucket string
	prefix string
}

// NewArchiver creates a new report archiver.
func NewArchiver(client Client, bucket, prefix string) *Archiver {
	return &Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Store serializes the report and uploads it under a date-partitioned
// key. It returns the object key of the archived report.
func (a *Archiver) Store(ctx context.Context, report *reconcile.Report) (string, error) {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return "", fmt.Errorf("checking archive bucket: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("archive bucket %q does not exist", a.bucket)
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing report: %w", err)
	}

	key := fmt.Sprintf("%s/%s/run-%s.json",
		a.prefix,
		report.GeneratedAt.UTC().Format("2006-01-02"),
		uuid.NewString(),
	)

	_, err = a.client.PutObject(ctx, a.bucket, key,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("uploading report: %w", err)
	}

	return key, nil
}
