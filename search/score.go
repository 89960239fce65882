package search

import "strings"

// Scoring weights for term matches in text and OCR content. Applied in order
// and clamped to 1.0.
const (
	scoreBase          = 0.5  // every genuine match starts here
	scoreExactBonus    = 0.3  // context window contains the term
	scoreFrequencyStep = 0.05 // per occurrence across the whole text
	scoreFrequencyCap  = 0.2
	scorePositionMax   = 0.1 // earlier first occurrence scores higher
)

// Fixed scores for non-scanned sources. These encode a source-authority
// ordering (title > author/keyword > table header > table cell) and are
// relied on by callers; do not reorder.
const (
	scoreTitleMatch       = 0.9
	scoreAuthorMatch      = 0.8
	scoreKeywordMatch     = 0.8
	scoreTableHeaderMatch = 0.7
	scoreTableCellMatch   = 0.6
)

// relevanceScore computes a bounded [0,1] relevance for a term matched in
// fullText, with contextWindow the preview excerpt built for the match.
//
// The exact-match bonus always applies for windows produced by the matchers
// (they are built around genuine occurrences), but the function is general:
// it can be called with a non-matching window and the branch then matters.
func relevanceScore(term, fullText, contextWindow string) float64 {
	score := scoreBase

	lowerTerm := strings.ToLower(term)
	if strings.Contains(strings.ToLower(contextWindow), lowerTerm) {
		score += scoreExactBonus
	}

	lowerText := strings.ToLower(fullText)
	occurrences := 0
	if lowerTerm != "" {
		occurrences = strings.Count(lowerText, lowerTerm)
	}
	frequencyBonus := float64(occurrences) * scoreFrequencyStep
	if frequencyBonus > scoreFrequencyCap {
		frequencyBonus = scoreFrequencyCap
	}
	score += frequencyBonus

	// Position bonus: 0 when the term never occurs or the text is empty.
	if first := strings.Index(lowerText, lowerTerm); first >= 0 && len(fullText) > 0 && lowerTerm != "" {
		relative := float64(first) / float64(len(fullText))
		score += (1 - relative) * scorePositionMax
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
