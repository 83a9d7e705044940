package outbound

import (
	"context"

	"verse-audio-api/domain"
)

type CacheIndexPort interface {
	// Lookup returns (nil, nil) when no entry exists for the key.
	Lookup(ctx context.Context, key string) (*domain.CacheEntry, error)
	Save(ctx context.Context, entry domain.CacheEntry) error
}
