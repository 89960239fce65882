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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/ai/mock"
	"github.com/poiesic/docfind/ai/openai"
	"github.com/poiesic/docfind/core"
	"github.com/poiesic/docfind/ingestion"
	"github.com/poiesic/docfind/search"
	"github.com/poiesic/docfind/snapshot"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := &cli.App{
		Name:  "docfind",
		Usage: "Search engine for ingested documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest files into a document snapshot",
				ArgsUsage: "FILE...",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "snapshot",
						Aliases:  []string{"s"},
						Usage:    "Path of the snapshot file to write",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "mock",
						Usage: "Use offline deterministic enrichment instead of an AI service",
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "OpenAI-compatible service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "recognizer-model",
						Usage: "Vision model for OCR",
						Value: "llava:7b",
					},
					&cli.StringFlag{
						Name:  "analyzer-model",
						Usage: "Model for document analysis",
						Value: "qwen2.5:3b",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent enrichment workers",
						Value: 4,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search a document snapshot",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "snapshot",
						Aliases:  []string{"s"},
						Usage:    "Path of the snapshot file to read",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "semantic",
						Usage: "Rank by term overlap instead of literal matching",
					},
					&cli.IntFlag{
						Name:  "max",
						Usage: "Maximum number of results",
						Value: search.DefaultMaxResults,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum relevance score",
						Value: search.DefaultThreshold,
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order (relevance, name)",
						Value: string(search.SortByRelevance),
					},
					&cli.StringSliceFlag{
						Name:  "type",
						Usage: "Only documents of this file type (repeatable)",
					},
					&cli.TimestampFlag{
						Name:   "after",
						Usage:  "Only documents uploaded on or after this date",
						Layout: "2006-01-02",
					},
					&cli.TimestampFlag{
						Name:   "before",
						Usage:  "Only documents uploaded on or before this date",
						Layout: "2006-01-02",
					},
					&cli.Int64Flag{
						Name:  "min-size",
						Usage: "Only documents of at least this many bytes",
					},
					&cli.Int64Flag{
						Name:  "max-size",
						Usage: "Only documents of at most this many bytes (0 = unbounded)",
					},
				},
			},
			{
				Name:   "facets",
				Usage:  "Show collection facet counts",
				Action: facetsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "snapshot",
						Aliases:  []string{"s"},
						Usage:    "Path of the snapshot file to read",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// imageExtensions marks files handed to the OCR stage instead of being read
// as text.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one file is required")
	}

	provider, err := buildProvider(c)
	if err != nil {
		return err
	}
	defer provider.Close()

	// Load sources concurrently; file reading is I/O bound.
	sources := make([]*ingestion.Source, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Int("workers"))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			src, err := loadSource(gctx, path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			sources[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	pipeline, err := ingestion.NewPipeline(provider, ingestion.WithPoolSize(c.Int("workers")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	docs, err := pipeline.Process(ctx, sources...)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	out, err := os.Create(c.String("snapshot"))
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer out.Close()

	if err := snapshot.Write(out, docs); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Ingested %d of %d files into %s\n",
		len(docs), len(paths), c.String("snapshot"))
	return nil
}

// loadSource builds an ingestion source from a file. Images become OCR
// candidates; everything else is read as text.
func loadSource(ctx context.Context, path string) (*ingestion.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	src := &ingestion.Source{
		Name:       filepath.Base(path),
		FileType:   strings.TrimPrefix(ext, "."),
		Size:       info.Size(),
		UploadedAt: time.Now().UTC(),
	}

	if imageExtensions[ext] {
		src.ImageRefs = []string{path}
		return src, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src.Text = string(data)
	return src, nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("a query is required")
	}

	docs, err := loadSnapshot(c.String("snapshot"))
	if err != nil {
		return err
	}

	searcher, err := search.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	var results []*core.SearchResult
	if c.Bool("semantic") {
		results, err = searcher.SemanticSearch(ctx, query, docs, c.Int("max"))
	} else {
		opts := search.DefaultOptions()
		opts.MaxResults = c.Int("max")
		opts.Threshold = c.Float64("threshold")
		opts.SortBy = search.SortKey(c.String("sort"))

		criteria := &search.Criteria{
			Query:     query,
			FileTypes: c.StringSlice("type"),
			MinSize:   c.Int64("min-size"),
			MaxSize:   c.Int64("max-size"),
			Options:   opts,
		}
		if after := c.Timestamp("after"); after != nil {
			criteria.UploadedAfter = *after
		}
		if before := c.Timestamp("before"); before != nil {
			criteria.UploadedBefore = *before
		}

		results, err = searcher.AdvancedSearch(ctx, criteria, docs)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, r := range results {
		fmt.Printf("%.2f  %-10s %s\n", r.Score, r.Type, r.DocumentName)
		fmt.Printf("      %s\n", r.Context)
	}
	fmt.Fprintf(os.Stderr, "\n%d results across %d documents\n", len(results), len(docs))
	return nil
}

func facetsCommand(c *cli.Context) error {
	docs, err := loadSnapshot(c.String("snapshot"))
	if err != nil {
		return err
	}

	searcher, err := search.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	facets := searcher.Facets(docs)

	printFacet("File types", facets.FileTypes)
	printFacet("Languages", facets.Languages)
	printFacet("Topics", facets.Topics)
	printFacet("Authors", facets.Authors)
	return nil
}

func printFacet(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Printf("%s:\n", title)
	for _, key := range keys {
		fmt.Printf("  %-20s %d\n", key, counts[key])
	}
}

func loadSnapshot(path string) ([]*core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	docs, err := snapshot.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return docs, nil
}

func buildProvider(c *cli.Context) (ai.AIProvider, error) {
	if c.Bool("mock") {
		return mock.NewMockProvider(), nil
	}

	config := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithRecognizerModel(c.String("recognizer-model")),
		ai.WithAnalyzerModel(c.String("analyzer-model")),
	)
	provider, err := openai.NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}
	return provider, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
