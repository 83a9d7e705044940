package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyText           = errors.New("text cannot be empty")
	ErrPartialScriptureRef = errors.New("scripture reference requires book, chapter and verse")
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// ProviderError is returned when an upstream synthesis backend answers with a
// non-success status. It carries enough of the upstream response to tell a
// quota problem from a bad voice id.
type ProviderError struct {
	Provider   Provider
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrPartialScriptureRef) ||
		errors.Is(err, ErrUnsupportedProvider)
}
