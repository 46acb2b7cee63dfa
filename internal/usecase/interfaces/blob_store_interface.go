package interfaces

import (
	"context"
	"time"
)

// IBlobStore abstracts object storage for rendered exports (S3 or compatible).
type IBlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
