// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package docfind is a multi-source search engine for processed documents.
// A Library holds an in-memory document collection and hands out searchers
// and ingestion pipelines that share its AI provider.
package docfind

import (
	"log/slog"
	"sync"

	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/ai/openai"
	"github.com/poiesic/docfind/core"
	"github.com/poiesic/docfind/ingestion"
	"github.com/poiesic/docfind/search"
)

// Library is the top-level entry point. It owns the document collection and
// the AI provider shared by searchers and ingestion pipelines created from it.
type Library struct {
	mu       sync.RWMutex
	docs     []*core.Document
	provider ai.AIProvider
	logger   *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the configuration used to build the default OpenAI
// provider. Ignored when WithProvider is also given.
func WithAIConfig(config *ai.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a pre-built AI provider, e.g. a mock for tests or
// offline use. The library takes ownership and closes it on Close.
func WithProvider(provider ai.AIProvider) LibraryOption {
	return func(o *libraryOptions) {
		o.provider = provider
	}
}

// NewLibrary creates an empty library.
func NewLibrary(opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	return &Library{
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider. The library should not be used afterwards.
func (l *Library) Close() error {
	if err := l.provider.Close(); err != nil {
		l.logger.Error("error closing AI provider", "err", err)
		return err
	}
	return nil
}

// AddDocuments validates and adds documents to the collection.
// The first invalid document aborts the call; documents before it stay added.
func (l *Library) AddDocuments(docs ...*core.Document) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return err
		}
		l.docs = append(l.docs, doc)
	}
	return nil
}

// Documents returns a snapshot of the collection. The returned slice is the
// caller's to keep; the documents themselves are shared and must be treated
// as read-only.
func (l *Library) Documents() []*core.Document {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make([]*core.Document, len(l.docs))
	copy(snapshot, l.docs)
	return snapshot
}

// Len returns the number of documents in the collection.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.docs)
}

// NewSearcher creates a searcher over this library's documents.
func (l *Library) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(opts...)
}

// NewIngestionPipeline creates an ingestion pipeline backed by the library's
// AI provider.
func (l *Library) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(l.provider, opts...)
}
