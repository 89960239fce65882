// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.TextRecognizer,
// ai.DocumentAnalyzer, and ai.AIProvider for use in unit tests. The mocks
// allow tests to run without external AI service dependencies and enable
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	text, err := mockProvider.Recognizer().RecognizeText(ctx, "scan.png")
//
//	// Custom behavior injection
//	mockAnalyzer := mock.NewMockAnalyzer()
//	mockAnalyzer.AnalyzeFunc = func(ctx context.Context, text string) (*ai.Analysis, error) {
//	    return &ai.Analysis{Summary: "fixed", Language: "en"}, nil
//	}
//
//	// Check call counts
//	count := mockAnalyzer.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockRecognizer: Returns deterministic text derived from the image ref
//   - MockAnalyzer: First-sentence summary and stopword-filtered keywords
//   - MockProvider: Aggregates mock recognizer and analyzer
package mock
