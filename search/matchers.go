package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/docfind/core"
)

// scanTerms finds every occurrence of every query term in text, emitting one
// candidate per occurrence. The scan cursor always advances past the current
// match, so zero-length or overlapping matches cannot loop. Candidates
// sharing an identical fragment are collapsed, keeping the first; the scope
// of this deduplication is one scan, never the whole search.
func scanTerms(doc *core.Document, terms []string, text string, matchType core.MatchType) []*core.SearchResult {
	if text == "" || len(terms) == 0 {
		return nil
	}

	lowerText := strings.ToLower(text)
	var results []*core.SearchResult
	seen := make(map[string]struct{})

	for _, term := range terms {
		from := 0
		for {
			i := strings.Index(lowerText[from:], term)
			if i < 0 {
				break
			}
			offset := from + i

			fragment := fragmentAt(text, offset, len(term))
			if _, dup := seen[fragment]; !dup {
				seen[fragment] = struct{}{}
				window := extractContext(text, offset, len(term))
				results = append(results, &core.SearchResult{
					DocumentId:   doc.Id,
					DocumentName: doc.Name,
					Fragment:     fragment,
					Score:        relevanceScore(term, text, window),
					Type:         matchType,
					Context:      window,
				})
			}

			advance := len(term)
			if advance < 1 {
				advance = 1
			}
			from = offset + advance
		}
	}

	return results
}

// matchMetadata checks the raw query (untokenized, case-insensitive
// substring) against title and author, emitting at most one candidate per
// field with fixed source-authority scores.
func matchMetadata(doc *core.Document, query string) []*core.SearchResult {
	var results []*core.SearchResult

	if title := doc.Metadata.Title; title != "" && containsFold(title, query) {
		results = append(results, &core.SearchResult{
			DocumentId:   doc.Id,
			DocumentName: doc.Name,
			Fragment:     title,
			Score:        scoreTitleMatch,
			Type:         core.MatchTypeMetadata,
			Context:      "Title: " + title,
		})
	}

	if author := doc.Metadata.Author; author != "" && containsFold(author, query) {
		results = append(results, &core.SearchResult{
			DocumentId:   doc.Id,
			DocumentName: doc.Name,
			Fragment:     author,
			Score:        scoreAuthorMatch,
			Type:         core.MatchTypeMetadata,
			Context:      "Author: " + author,
		})
	}

	return results
}

// matchTables checks the raw query against every header cell and every data
// cell. Cells are addressed purely by position: a ragged row still emits its
// 1-indexed row/column context even when no header exists at that column.
func matchTables(doc *core.Document, query string) []*core.SearchResult {
	var results []*core.SearchResult

	for ti := range doc.Tables {
		table := &doc.Tables[ti]

		for ci, header := range table.Headers {
			if header == "" || !containsFold(header, query) {
				continue
			}
			results = append(results, &core.SearchResult{
				DocumentId:   doc.Id,
				DocumentName: doc.Name,
				Fragment:     header,
				Score:        scoreTableHeaderMatch,
				Type:         core.MatchTypeText,
				Context:      fmt.Sprintf("Table header (Col %d): %s", ci+1, header),
			})
		}

		for ri, row := range table.Rows {
			for ci, cell := range row {
				if cell == "" || !containsFold(cell, query) {
					continue
				}
				results = append(results, &core.SearchResult{
					DocumentId:   doc.Id,
					DocumentName: doc.Name,
					Fragment:     cell,
					Score:        scoreTableCellMatch,
					Type:         core.MatchTypeText,
					Context:      fmt.Sprintf("Table cell (Row %d, Col %d): %s", ri+1, ci+1, cell),
				})
			}
		}
	}

	return results
}

// matchKeywords checks the raw query against each keyword string.
func matchKeywords(doc *core.Document, query string) []*core.SearchResult {
	var results []*core.SearchResult

	for _, keyword := range doc.Keywords {
		if keyword == "" || !containsFold(keyword, query) {
			continue
		}
		results = append(results, &core.SearchResult{
			DocumentId:   doc.Id,
			DocumentName: doc.Name,
			Fragment:     keyword,
			Score:        scoreKeywordMatch,
			Type:         core.MatchTypeText,
			Context:      "Keyword: " + keyword,
		})
	}

	return results
}

// matchDocument runs every enabled matcher against one document and
// concatenates their candidates in call order: text, OCR, summary, metadata,
// tables, keywords.
func matchDocument(doc *core.Document, query string, terms []string, opts *Options) []*core.SearchResult {
	if doc == nil {
		return nil
	}

	var results []*core.SearchResult

	if opts.IncludeText {
		results = append(results, scanTerms(doc, terms, doc.Text, core.MatchTypeText)...)
	}

	if opts.IncludeOCR {
		for i := range doc.Images {
			results = append(results, scanTerms(doc, terms, doc.Images[i].OCRText, core.MatchTypeOCR)...)
		}
	}

	if opts.IncludeText && doc.Summary != "" {
		results = append(results, scanTerms(doc, terms, doc.Summary, core.MatchTypeText)...)
	}

	if opts.IncludeMetadata {
		results = append(results, matchMetadata(doc, query)...)
	}

	results = append(results, matchTables(doc, query)...)
	results = append(results, matchKeywords(doc, query)...)

	return results
}
