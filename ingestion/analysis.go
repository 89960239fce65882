package ingestion

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/core"
)

// analysisEnricher derives summary, keywords, topics, and language for a
// document using a DocumentAnalyzer. It runs after OCR so recognized image
// text contributes to the analysis.
type analysisEnricher struct {
	analyzer ai.DocumentAnalyzer
	logger   *slog.Logger
}

func newAnalysisEnricher(analyzer ai.DocumentAnalyzer, logger *slog.Logger) *analysisEnricher {
	return &analysisEnricher{
		analyzer: analyzer,
		logger:   logger.With("component", "analysis-enricher"),
	}
}

func (e *analysisEnricher) enrich(ctx context.Context, doc *core.Document) error {
	text := combinedText(doc)
	if text == "" {
		return nil
	}

	result, err := e.analyzer.Analyze(ctx, text)
	if err != nil {
		e.logger.Warn("analysis failed", "document", doc.Name, "err", err)
		return nil
	}

	doc.Summary = result.Summary
	doc.Keywords = result.Keywords
	doc.Topics = result.Topics
	if doc.Metadata.Language == "" {
		doc.Metadata.Language = result.Language
	}
	if doc.Metadata.WordCount == 0 {
		doc.Metadata.WordCount = len(strings.Fields(doc.Text))
	}

	return nil
}

// combinedText joins the document body with all recognized image text.
func combinedText(doc *core.Document) string {
	parts := make([]string, 0, len(doc.Images)+1)
	if strings.TrimSpace(doc.Text) != "" {
		parts = append(parts, doc.Text)
	}
	for _, img := range doc.Images {
		if strings.TrimSpace(img.OCRText) != "" {
			parts = append(parts, img.OCRText)
		}
	}
	return strings.Join(parts, "\n")
}
