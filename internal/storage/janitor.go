package storage

import (
	"context"
	"log/slog"
)

// Janitor deletes blobs after their last database reference is gone.
// A failed delete leaves an orphaned object behind and is only logged.
type Janitor struct {
	bucket Bucket
	logger *slog.Logger
}

func NewJanitor(bucket Bucket, logger *slog.Logger) *Janitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Janitor{bucket: bucket, logger: logger}
}

func (j *Janitor) Release(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := j.bucket.Delete(ctx, p); err != nil {
			j.logger.Warn("failed to delete blob", "path", p, "error", err)
		}
	}
}
