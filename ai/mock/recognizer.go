package mock

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// MockRecognizer is a test double for ai.TextRecognizer.
// It allows custom behavior injection via function fields.
type MockRecognizer struct {
	// RecognizeTextFunc is called by RecognizeText if set.
	// If nil, uses default deterministic text synthesis.
	RecognizeTextFunc func(ctx context.Context, ref string) (string, error)

	callCount int
}

// NewMockRecognizer creates a mock OCR recognizer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockRecognizer().
func NewMockRecognizer() *MockRecognizer {
	return &MockRecognizer{}
}

// RecognizeText returns deterministic text derived from the image ref.
// Default behavior: synthesizes a line naming the image, so the same ref
// always yields the same text.
func (m *MockRecognizer) RecognizeText(ctx context.Context, ref string) (string, error) {
	m.callCount++

	if m.RecognizeTextFunc != nil {
		return m.RecognizeTextFunc(ctx, ref)
	}

	if strings.TrimSpace(ref) == "" {
		return "", nil
	}

	base := filepath.Base(ref)
	return fmt.Sprintf("Recognized text from %s", base), nil
}

// CallCount returns the number of times RecognizeText was called.
func (m *MockRecognizer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRecognizer) Reset() {
	m.callCount = 0
	m.RecognizeTextFunc = nil
}
