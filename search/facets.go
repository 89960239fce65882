package search

import "github.com/poiesic/docfind/core"

// facetUnknown is counted when a document carries no file type or language.
const facetUnknown = "unknown"

// Facets holds corpus-wide occurrence counts grouped by categorical
// document attributes. Counts are recomputed on demand and never cached.
type Facets struct {
	FileTypes map[string]int
	Languages map[string]int
	Topics    map[string]int
	Authors   map[string]int
}

// Facets iterates the document collection once and counts file types,
// detected languages, topic labels, and authors. File-type counts always sum
// to the number of documents. Document order does not affect the counts.
func (s *Searcher) Facets(docs []*core.Document) *Facets {
	facets := &Facets{
		FileTypes: make(map[string]int),
		Languages: make(map[string]int),
		Topics:    make(map[string]int),
		Authors:   make(map[string]int),
	}

	for _, doc := range docs {
		if doc == nil {
			continue
		}

		fileType := doc.FileType
		if fileType == "" {
			fileType = facetUnknown
		}
		facets.FileTypes[fileType]++

		language := doc.Metadata.Language
		if language == "" {
			language = facetUnknown
		}
		facets.Languages[language]++

		for _, topic := range doc.Topics {
			if topic != "" {
				facets.Topics[topic]++
			}
		}

		if author := doc.Metadata.Author; author != "" {
			facets.Authors[author]++
		}
	}

	return facets
}
