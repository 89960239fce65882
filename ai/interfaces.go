package ai

import "context"

// TextRecognizer extracts machine-readable text from document images.
// Implementations must be thread-safe for concurrent use.
type TextRecognizer interface {
	// RecognizeText runs OCR over the image identified by ref and returns
	// the recognized text. ref is implementation-defined; the bundled
	// implementations treat it as a filesystem path.
	// Returns an empty string if the image contains no readable text.
	// Returns an error if recognition fails.
	RecognizeText(ctx context.Context, ref string) (string, error)
}

// DocumentAnalyzer derives search-supporting attributes from document text.
// Implementations must be thread-safe for concurrent use.
type DocumentAnalyzer interface {
	// Analyze produces a summary, keywords, topics, and the detected
	// language for the given text. Keywords and topics may be empty when
	// the text carries no salient content.
	// Returns an error if analysis fails.
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

// Analysis is the result of analyzing a document's text.
type Analysis struct {
	// Summary is a short abstract of the document, a few sentences at most.
	Summary string

	// Keywords are the salient terms of the document, lowercase.
	Keywords []string

	// Topics classify the document. Each entry must match one of the
	// predefined topic types.
	Topics []string

	// Language is the ISO 639-1 code of the document's primary language.
	Language string
}

// AIProvider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages TextRecognizer and
// DocumentAnalyzer instances, ensuring they share configuration and resources
// appropriately.
type AIProvider interface {
	// Recognizer returns the OCR service.
	// The returned TextRecognizer is safe for concurrent use.
	Recognizer() TextRecognizer

	// Analyzer returns the document analysis service.
	// The returned DocumentAnalyzer is safe for concurrent use.
	Analyzer() DocumentAnalyzer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
