package search

import "strings"

// Terms shorter than this carry too little signal and are dropped by the
// normalizer.
const minTermLength = 3

// normalize lowercases text, replaces everything outside [a-z0-9] with
// spaces, splits on whitespace runs, and drops terms shorter than
// minTermLength. No stemming, no stop-word removal.
func normalize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, lowered)

	words := strings.Fields(cleaned)
	terms := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) >= minTermLength {
			terms = append(terms, word)
		}
	}
	return terms
}

// termSet builds a membership set from normalized terms.
func termSet(text string) map[string]struct{} {
	terms := normalize(text)
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}
	return set
}

// similarity computes the Jaccard index between the normalized term sets of
// two texts. Returns 0 when the union is empty.
func similarity(query, text string) float64 {
	qs := termSet(query)
	ts := termSet(text)

	if len(qs) == 0 && len(ts) == 0 {
		return 0
	}

	intersection := 0
	for term := range qs {
		if _, ok := ts[term]; ok {
			intersection++
		}
	}

	union := len(qs) + len(ts) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
