// Package snapshot exports periodic JSON copies of the registry to
// S3-compatible object storage.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/songregistry/internal/logging"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
	"github.com/google/uuid"
)

// Source produces a consistent registry snapshot.
type Source interface {
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

type Exporter struct {
	source   Source
	uploader Uploader
	bucket   string
	logger   logging.Logger
}

func NewExporter(source Source, uploader Uploader, bucket string, l logging.Logger) *Exporter {
	return &Exporter{
		source:   source,
		uploader: uploader,
		bucket:   bucket,
		logger:   l.With("module", "snapshot"),
	}
}

// ObjectKey returns a fresh key under snapshots/YYYY/MM/DD/ for t.
func ObjectKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("snapshots/%04d/%02d/%02d/%s.json", t.Year(), t.Month(), t.Day(), uuid.New())
}

// Export takes one snapshot and uploads it, returning the object key.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	snap, err := e.source.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("take snapshot: %w", err)
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := ObjectKey(snap.TakenAt)
	_, err = e.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return key, nil
}

// Run exports every interval until ctx is done. A failed export is logged
// and retried on the next tick.
func (e *Exporter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info(ctx, "Snapshot export started", "bucket", e.bucket, "interval", interval)

	for {
		select {
		case <-ctx.Done():
			e.logger.Info(ctx, "Snapshot export stopped")
			return
		case <-ticker.C:
			key, err := e.Export(ctx)
			if err != nil {
				e.logger.Error(ctx, "snapshot export failed", "error", err)
				continue
			}
			e.logger.Info(ctx, "Snapshot exported", "key", key)
		}
	}
}
