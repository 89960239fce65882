package mock

import (
	"context"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/poiesic/docfind/ai"
)

// MockAnalyzer is a test double for ai.DocumentAnalyzer.
// It allows custom behavior injection via function fields.
type MockAnalyzer struct {
	// AnalyzeFunc is called by Analyze if set.
	// If nil, uses default frequency-free keyword extraction.
	AnalyzeFunc func(ctx context.Context, text string) (*ai.Analysis, error)

	// MaxKeywords caps the default extraction. Zero means 8.
	MaxKeywords int

	callCount int
}

// NewMockAnalyzer creates a mock document analyzer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnalyzer().
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// Analyze produces a deterministic analysis of text.
// Default behavior: the summary is the first sentence, keywords are the
// first distinct non-stopword terms, the topic is "general", and the
// language is "en".
func (m *MockAnalyzer) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	m.callCount++

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, text)
	}

	if strings.TrimSpace(text) == "" {
		return &ai.Analysis{
			Keywords: []string{},
			Topics:   []string{},
			Language: "en",
		}, nil
	}

	return &ai.Analysis{
		Summary:  firstSentence(text),
		Keywords: extractKeywords(text, m.keywordCap()),
		Topics:   []string{"general"},
		Language: "en",
	}, nil
}

func (m *MockAnalyzer) keywordCap() int {
	if m.MaxKeywords > 0 {
		return m.MaxKeywords
	}
	return 8
}

// CallCount returns the number of times Analyze was called.
func (m *MockAnalyzer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAnalyzer) Reset() {
	m.callCount = 0
	m.AnalyzeFunc = nil
}

// firstSentence returns text up to and including the first period, or the
// first 160 characters when no sentence boundary is found.
func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.IndexAny(text, ".!?"); idx >= 0 {
		return text[:idx+1]
	}
	if len(text) > 160 {
		return text[:160]
	}
	return text
}

// extractKeywords returns up to max distinct non-stopword terms from text,
// lowercase, in order of first appearance.
func extractKeywords(text string, max int) []string {
	cleaned := stopwords.CleanString(text, "en", false)

	seen := make(map[string]bool)
	keywords := make([]string, 0, max)
	for _, word := range strings.Fields(cleaned) {
		word = strings.Trim(strings.ToLower(word), ".,!?;:\"'()[]{}")
		if len(word) < 3 || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}
