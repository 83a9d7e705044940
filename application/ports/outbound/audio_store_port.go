package outbound

import "context"

type AudioStorePort interface {
	Save(ctx context.Context, path string, audio []byte) (string, error)
	Fetch(ctx context.Context, path string) ([]byte, error)
	// URL returns the locator a blob at path will be reachable at once
	// saved, without touching storage.
	URL(path string) string
}
