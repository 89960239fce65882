package search

// contextRadius is the number of characters kept on each side of a match
// when building its preview window.
const contextRadius = 75

// extractContext returns a bounded window of text around a match, with "..."
// markers on whichever sides were truncated. Pure function: identical inputs
// always produce identical output.
func extractContext(text string, matchOffset, matchLength int) string {
	start := matchOffset - contextRadius
	if start < 0 {
		start = 0
	}
	end := matchOffset + matchLength + contextRadius
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}

	window := text[start:end]
	if start > 0 {
		window = "..." + window
	}
	if end < len(text) {
		window = window + "..."
	}
	return window
}

// fragmentAt returns the matched content fragment for a text occurrence: the
// match itself plus up to contextRadius following characters. Occurrences of
// the same term at different offsets therefore yield distinct fragments, so
// per-scan deduplication only collapses true duplicates.
func fragmentAt(text string, matchOffset, matchLength int) string {
	end := matchOffset + matchLength + contextRadius
	if end > len(text) {
		end = len(text)
	}
	if matchOffset < 0 {
		matchOffset = 0
	}
	if matchOffset > end {
		matchOffset = end
	}
	return text[matchOffset:end]
}
