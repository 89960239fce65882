package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docfind/core"
)

// Similarity thresholds gating inclusion in semantic search mode. Summaries
// are short, so noisier overlaps need a higher bar there.
const (
	semanticTextThreshold    = 0.1
	semanticSummaryThreshold = 0.2
)

// excerptLength bounds the synthesized content of filter-only and semantic
// results.
const excerptLength = 200

// Searcher locates and ranks matches across document text, OCR text, tables,
// keywords, and metadata. It holds no per-call state and is safe for
// concurrent use; documents are read-only snapshots supplied per call.
type Searcher struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used to scan documents in parallel.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(opts ...Option) (*Searcher, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(s); optErr != nil {
			s.Release()
			return nil, optErr
		}
	}

	return s, nil
}

// Release releases the worker pool. The searcher degrades to scanning on the
// caller's goroutine afterwards.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Search locates all matches for query across the document collection,
// scores them, deduplicates per scan, filters by threshold, sorts, and
// truncates per opts. A nil opts uses DefaultOptions. An empty query matches
// nothing.
func (s *Searcher) Search(ctx context.Context, query string, docs []*core.Document, opts *Options) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, docs, opts, nil)
}

// SearchWithMonitor is Search with observation hooks; the monitor receives
// callbacks at each stage. A nil monitor is valid.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, docs []*core.Document, opts *Options, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	monitor.Start(query)
	opts = opts.normalized()

	// Empty query matches nothing; callers wanting "list everything" handle
	// that case themselves.
	if strings.TrimSpace(query) == "" {
		results := []*core.SearchResult{}
		monitor.Finish(results)
		return results, nil
	}

	terms := normalize(query)
	monitor.AfterQueryNormalization(terms)

	perDoc := s.scanAll(query, terms, docs, opts)

	candidates := make([]*core.SearchResult, 0, len(docs))
	for i, doc := range docs {
		monitor.AfterDocumentScan(doc.Id, perDoc[i])
		candidates = append(candidates, perDoc[i]...)
	}

	kept := candidates[:0]
	for _, candidate := range candidates {
		if candidate.Score >= opts.Threshold {
			kept = append(kept, candidate)
		}
	}
	monitor.AfterThresholdFilter(kept)

	sortResults(kept, opts.SortBy)

	if len(kept) > opts.MaxResults {
		kept = kept[:opts.MaxResults]
	}

	s.logger.Debug("search finished",
		"query", query,
		"documents", len(docs),
		"results", len(kept))
	monitor.Finish(kept)

	return kept, nil
}

// scanAll runs the per-field matchers over every document, fanning out on
// the worker pool. Results are gathered per document index, so output order
// is deterministic regardless of scheduling.
func (s *Searcher) scanAll(query string, terms []string, docs []*core.Document, opts *Options) [][]*core.SearchResult {
	perDoc := make([][]*core.SearchResult, len(docs))

	var wg sync.WaitGroup
	for i := range docs {
		i, doc := i, docs[i]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			perDoc[i] = matchDocument(doc, query, terms, opts)
		}
		if s.pool == nil || s.pool.Submit(task) != nil {
			// Pool released or saturated: scan on the caller's goroutine.
			task()
		}
	}
	wg.Wait()

	return perDoc
}

// SemanticSearch ranks documents by term-set overlap with the query instead
// of literal matching. Full text and summary are compared independently;
// either can contribute a result when its similarity clears the field's
// threshold. Returns up to maxResults results, highest similarity first.
func (s *Searcher) SemanticSearch(ctx context.Context, query string, docs []*core.Document, maxResults int) ([]*core.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	results := []*core.SearchResult{}
	if strings.TrimSpace(query) == "" {
		return results, nil
	}

	for _, doc := range docs {
		if doc == nil {
			continue
		}

		if sim := similarity(query, doc.Text); sim > semanticTextThreshold {
			content := excerpt(doc.Text, excerptLength)
			results = append(results, &core.SearchResult{
				DocumentId:   doc.Id,
				DocumentName: doc.Name,
				Fragment:     content,
				Score:        sim,
				Type:         core.MatchTypeText,
				Context:      content,
			})
		}

		if doc.Summary == "" {
			continue
		}
		if sim := similarity(query, doc.Summary); sim > semanticSummaryThreshold {
			results = append(results, &core.SearchResult{
				DocumentId:   doc.Id,
				DocumentName: doc.Name,
				Fragment:     doc.Summary,
				Score:        sim,
				Type:         core.MatchTypeText,
				Context:      doc.Summary,
			})
		}
	}

	sortResults(results, SortByRelevance)
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	return results, nil
}

// AdvancedSearch applies the criteria's metadata filters (file type, upload
// date range, size range, all inclusive) and then either runs the full
// search pipeline over the surviving documents, or, when no query is
// supplied, synthesizes one result per survivor at relevance 1.0 using its
// summary or a text excerpt.
func (s *Searcher) AdvancedSearch(ctx context.Context, criteria *Criteria, docs []*core.Document) ([]*core.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if criteria == nil {
		criteria = &Criteria{}
	}

	filtered := filterDocuments(criteria, docs)

	if strings.TrimSpace(criteria.Query) != "" {
		return s.Search(ctx, criteria.Query, filtered, criteria.Options)
	}

	opts := criteria.Options.normalized()
	results := make([]*core.SearchResult, 0, len(filtered))
	for _, doc := range filtered {
		content := doc.Summary
		if content == "" {
			content = excerpt(doc.Text, excerptLength)
		}
		results = append(results, &core.SearchResult{
			DocumentId:   doc.Id,
			DocumentName: doc.Name,
			Fragment:     content,
			Score:        1.0, // match by filter alone
			Type:         core.MatchTypeText,
			Context:      content,
		})
		if len(results) == opts.MaxResults {
			break
		}
	}

	return results, nil
}

// filterDocuments applies, in order, the file-type, upload-date, and size
// filters from criteria.
func filterDocuments(criteria *Criteria, docs []*core.Document) []*core.Document {
	filtered := make([]*core.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if len(criteria.FileTypes) > 0 && !containsString(criteria.FileTypes, doc.FileType) {
			continue
		}
		if !criteria.UploadedAfter.IsZero() && doc.UploadedAt.Before(criteria.UploadedAfter) {
			continue
		}
		if !criteria.UploadedBefore.IsZero() && doc.UploadedAt.After(criteria.UploadedBefore) {
			continue
		}
		if doc.Size < criteria.MinSize {
			continue
		}
		if criteria.MaxSize > 0 && doc.Size > criteria.MaxSize {
			continue
		}
		filtered = append(filtered, doc)
	}
	return filtered
}

// sortResults orders results in place. Sorting is stable: equal keys keep
// discovery order. An unrecognized key leaves the order untouched.
func sortResults(results []*core.SearchResult, key SortKey) {
	switch key {
	case SortByRelevance:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	case SortByName:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DocumentName < results[j].DocumentName
		})
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// excerpt returns the first n bytes of s.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
