// Package storage uploads render artefacts and returns their public URLs.
// Three adapters share one interface: local filesystem, S3, and
// backend-presigned PUT.
package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/saramhq/aegis/pkg/config"
)

// Store uploads one artefact under an object key and returns its public URL.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// New selects the adapter from configuration.
func New(cfg config.StorageConfig) (Store, error) {
	switch cfg.Kind {
	case config.StorageLocal:
		return NewLocalStore(cfg), nil
	case config.StorageS3:
		return NewS3Store(cfg)
	case config.StoragePresigned:
		return NewPresignedStore(cfg), nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", cfg.Kind)
	}
}

// AssetKey builds the canonical object key for a render artefact:
// videos/{video_id}/{script_id}/{job_id}/{filename}.
func AssetKey(videoID, scriptID, jobID, filename string) string {
	return path.Join("videos", videoID, scriptID, jobID, filename)
}

// withRetry runs op up to maxAttempts times with exponential backoff
// starting at 200ms. Context cancellation stops the retries.
func withRetry(ctx context.Context, maxAttempts int, op func() error) error {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	return backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(maxAttempts-1)), ctx))
}
