package ingestion

import (
	"context"
	"log/slog"

	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/core"
)

// ocrEnricher fills in OCRText for document images using a TextRecognizer.
type ocrEnricher struct {
	recognizer ai.TextRecognizer
	logger     *slog.Logger
}

func newOCREnricher(recognizer ai.TextRecognizer, logger *slog.Logger) *ocrEnricher {
	return &ocrEnricher{
		recognizer: recognizer,
		logger:     logger.With("component", "ocr-enricher"),
	}
}

// enrich runs OCR over each image that does not yet carry recognized text.
// Per-image failures are logged and skipped; the document keeps whatever
// text was recognized before the failure.
func (e *ocrEnricher) enrich(ctx context.Context, doc *core.Document) error {
	for i := range doc.Images {
		if err := ctx.Err(); err != nil {
			return err
		}

		img := &doc.Images[i]
		if img.OCRText != "" || img.Ref == "" {
			continue
		}

		text, err := e.recognizer.RecognizeText(ctx, img.Ref)
		if err != nil {
			e.logger.Warn("OCR failed for image",
				"document", doc.Name,
				"ref", img.Ref,
				"err", err)
			continue
		}
		img.OCRText = text
	}
	return nil
}
