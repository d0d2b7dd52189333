package repository

import (
	"context"
	"time"
)

// StateStore abstracts ephemeral key-value state, currently the set of live
// host dashboard session IDs. Implementations: Redis (production, survives
// restarts) or in-memory (local dev / single-instance).
type StateStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
