package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/core"
)

// Pipeline orchestrates the intake and enrichment of documents.
// It runs OCR and content analysis concurrently across sources.
type Pipeline struct {
	provider  ai.AIProvider
	pool      *ants.Pool
	enrichers []enricher
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		provider: provider,
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Enrichers run in order: OCR first so recognized text feeds analysis.
	p.enrichers = []enricher{
		newOCREnricher(provider.Recognizer(), p.logger),
		newAnalysisEnricher(provider.Analyzer(), p.logger),
	}

	return p, nil
}

// Source describes a document to be ingested. Text, tables, and metadata
// come from the caller's extraction stage; ImageRefs point at page images
// that still need OCR.
type Source struct {
	Name       string
	FileType   string
	Size       int64
	Text       string
	ImageRefs  []string
	Tables     []core.Table
	Metadata   core.Metadata
	UploadedAt time.Time
}

// Process converts the sources into enriched documents. Sources are
// processed concurrently; output order matches input order. Enrichment
// failures are logged and leave the affected document partially enriched;
// invalid sources are logged and dropped. Returns an error only when ctx
// is cancelled or no sources are given.
func (p *Pipeline) Process(ctx context.Context, sources ...*Source) ([]*core.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	perSource := make([]*core.Document, len(sources))

	var wg sync.WaitGroup
	for i := range sources {
		i, src := i, sources[i]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			perSource[i] = p.processSource(ctx, src)
		}
		if p.pool == nil || p.pool.Submit(task) != nil {
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]*core.Document, 0, len(sources))
	for _, doc := range perSource {
		if doc != nil {
			docs = append(docs, doc)
		}
	}

	p.logger.Debug("ingestion finished",
		"sources", len(sources),
		"documents", len(docs))

	return docs, nil
}

// processSource builds and enriches a single document. Returns nil when the
// source is invalid.
func (p *Pipeline) processSource(ctx context.Context, src *Source) *core.Document {
	if src == nil {
		return nil
	}

	doc := newDocument(src)
	if err := core.ValidateDocument(doc); err != nil {
		p.logger.Warn("dropping invalid source", "name", src.Name, "err", err)
		return nil
	}

	for _, e := range p.enrichers {
		if err := e.enrich(ctx, doc); err != nil {
			p.logger.Warn("enrichment aborted",
				"document", doc.Name,
				"err", err)
			break
		}
	}

	return doc
}

// newDocument maps a source onto a document with a content-derived ID.
func newDocument(src *Source) *core.Document {
	uploadedAt := src.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now().UTC()
	}

	images := make([]core.Image, len(src.ImageRefs))
	for i, ref := range src.ImageRefs {
		images[i] = core.Image{
			Id:  core.IDFromContent(src.Name + "/" + ref),
			Ref: ref,
		}
	}

	return &core.Document{
		Id:         core.IDFromContent(src.Name + src.Text),
		Name:       src.Name,
		FileType:   src.FileType,
		Size:       src.Size,
		UploadedAt: uploadedAt,
		Text:       src.Text,
		Images:     images,
		Tables:     src.Tables,
		Metadata:   src.Metadata,
	}
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
