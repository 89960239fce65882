package search

import "time"

// SortKey selects the ordering of search results.
type SortKey string

const (
	// SortByRelevance orders results by descending score (stable, ties keep
	// discovery order).
	SortByRelevance SortKey = "relevance"
	// SortByName orders results by ascending document display name.
	SortByName SortKey = "name"
)

// Defaults applied when an Options value is not supplied or leaves a field
// at its zero value.
const (
	DefaultMaxResults = 50
	DefaultThreshold  = 0.1
)

// Options configures a single search call.
//
// The zero value is NOT the default configuration; use DefaultOptions and
// override fields, or pass nil to Search to get the defaults.
type Options struct {
	IncludeText     bool    // Scan full text and summary (default true)
	IncludeOCR      bool    // Scan per-image OCR text (default true)
	IncludeMetadata bool    // Check title and author (default true)
	SortBy          SortKey // Sort order; unrecognized keys leave order as-is
	MaxResults      int     // Result cap; values <= 0 fall back to DefaultMaxResults
	Threshold       float64 // Minimum score to keep a match
}

// DefaultOptions returns the documented default configuration: all sources
// enabled, relevance sort, 50 results, 0.1 threshold.
func DefaultOptions() *Options {
	return &Options{
		IncludeText:     true,
		IncludeOCR:      true,
		IncludeMetadata: true,
		SortBy:          SortByRelevance,
		MaxResults:      DefaultMaxResults,
		Threshold:       DefaultThreshold,
	}
}

// normalized returns a copy safe to use internally: nil becomes the default
// configuration and a non-positive MaxResults falls back to the default cap.
func (o *Options) normalized() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.MaxResults <= 0 {
		out.MaxResults = DefaultMaxResults
	}
	return &out
}

// Criteria describes an advanced search: metadata filters applied before the
// optional text query. Zero-valued bounds are unbounded; all ranges are
// inclusive.
type Criteria struct {
	Query          string     // Optional; empty means "match by filter alone"
	FileTypes      []string   // Keep only these file types (empty keeps all)
	UploadedAfter  time.Time  // Inclusive lower bound on upload time
	UploadedBefore time.Time  // Inclusive upper bound on upload time
	MinSize        int64      // Inclusive lower bound in bytes
	MaxSize        int64      // Inclusive upper bound in bytes; 0 is unbounded
	Options        *Options   // Options for the query phase; nil uses defaults
}
