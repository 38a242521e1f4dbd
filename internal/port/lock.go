package port

import (
	"context"
	"time"
)

// Locker provides a best-effort mutual exclusion keyed by string. It backs
// the one-in-flight-AI-request-per-trip rule: Acquire returns false when the
// key is already held.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
