package port

import (
	"context"
	"io"
	"time"
)

// UploadInput carries the data needed to store an object.
type UploadInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ObjectStorage abstracts blob storage for photos and boarding passes.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
