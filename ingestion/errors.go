package ingestion

import "errors"

var (
	// ErrProviderRequired is returned when an AI provider is not provided.
	ErrProviderRequired = errors.New("AI provider required")

	// ErrNoSources is returned when Process is called with no sources.
	ErrNoSources = errors.New("no sources to process")
)
