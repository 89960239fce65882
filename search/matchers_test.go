package search

import (
	"testing"

	"github.com/poiesic/docfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTerms_EveryOccurrence(t *testing.T) {
	doc := &core.Document{
		Id:   core.IDFromContent("report.pdf"),
		Name: "report.pdf",
	}
	text := "The quarterly revenue report shows revenue growth in Q1 2023."

	results := scanTerms(doc, []string{"revenue"}, text, core.MatchTypeText)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, doc.Id, r.DocumentId)
		assert.Equal(t, core.MatchTypeText, r.Type)
		assert.GreaterOrEqual(t, r.Score, 0.9)
		assert.LessOrEqual(t, r.Score, 1.0)
		assert.Contains(t, r.Context, "revenue")
	}
	assert.NotEqual(t, results[0].Fragment, results[1].Fragment)
}

func TestScanTerms_DeduplicationIdempotent(t *testing.T) {
	doc := &core.Document{Name: "report.pdf"}
	text := "revenue figures and revenue notes"

	once := scanTerms(doc, []string{"revenue"}, text, core.MatchTypeText)
	// A duplicated query term re-scans the same text; dedup must collapse it.
	twice := scanTerms(doc, []string{"revenue", "revenue"}, text, core.MatchTypeText)

	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.Equal(t, once[i].Fragment, twice[i].Fragment)
		assert.Equal(t, once[i].Score, twice[i].Score)
	}
}

func TestScanTerms_EmptyInputs(t *testing.T) {
	doc := &core.Document{Name: "report.pdf"}

	assert.Empty(t, scanTerms(doc, []string{"revenue"}, "", core.MatchTypeText))
	assert.Empty(t, scanTerms(doc, nil, "revenue text", core.MatchTypeText))
	assert.Empty(t, scanTerms(doc, []string{"absent"}, "revenue text", core.MatchTypeText))
}

func TestScanTerms_CaseInsensitive(t *testing.T) {
	doc := &core.Document{Name: "report.pdf"}

	results := scanTerms(doc, []string{"revenue"}, "REVENUE up, Revenue down", core.MatchTypeText)
	assert.Len(t, results, 2)
}

func TestMatchMetadata(t *testing.T) {
	doc := &core.Document{
		Name: "report.pdf",
		Metadata: core.Metadata{
			Title:  "Quarterly Revenue Report",
			Author: "Jane Finance",
		},
	}

	t.Run("title match has fixed score", func(t *testing.T) {
		results := matchMetadata(doc, "revenue")
		require.Len(t, results, 1)
		assert.Equal(t, scoreTitleMatch, results[0].Score)
		assert.Equal(t, core.MatchTypeMetadata, results[0].Type)
		assert.Equal(t, "Title: Quarterly Revenue Report", results[0].Context)
	})

	t.Run("author match has fixed score", func(t *testing.T) {
		results := matchMetadata(doc, "finance")
		require.Len(t, results, 1)
		assert.Equal(t, scoreAuthorMatch, results[0].Score)
		assert.Equal(t, core.MatchTypeMetadata, results[0].Type)
	})

	t.Run("at most one candidate per field", func(t *testing.T) {
		both := &core.Document{
			Name:     "annual.pdf",
			Metadata: core.Metadata{Title: "Annual Report", Author: "Ann Smith"},
		}
		// "ann" appears in both title and author, once per field.
		results := matchMetadata(both, "ann")
		assert.Len(t, results, 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, matchMetadata(doc, "cooking"))
	})

	t.Run("empty fields contribute nothing", func(t *testing.T) {
		assert.Empty(t, matchMetadata(&core.Document{Name: "x"}, "anything"))
	})
}

func TestMatchTables(t *testing.T) {
	doc := &core.Document{
		Id:   core.IDFromContent("accounts.pdf"),
		Name: "accounts.pdf",
		Tables: []core.Table{
			{
				Headers: []string{"Name", "Amount"},
				Rows:    [][]string{{"Alice", "100"}, {"Bob", "200"}},
			},
		},
	}

	t.Run("cell match carries position context", func(t *testing.T) {
		results := matchTables(doc, "Bob")
		require.Len(t, results, 1)
		assert.Equal(t, scoreTableCellMatch, results[0].Score)
		assert.Equal(t, core.MatchTypeText, results[0].Type)
		assert.Equal(t, "Table cell (Row 2, Col 1): Bob", results[0].Context)
	})

	t.Run("header match outranks cell match", func(t *testing.T) {
		results := matchTables(doc, "name")
		require.Len(t, results, 1)
		assert.Equal(t, scoreTableHeaderMatch, results[0].Score)
		assert.Equal(t, "Table header (Col 1): Name", results[0].Context)
	})

	t.Run("ragged row still matched by position", func(t *testing.T) {
		ragged := &core.Document{
			Name: "ragged.pdf",
			Tables: []core.Table{
				{
					Headers: []string{"Name"},
					Rows:    [][]string{{"Alice", "overflow"}},
				},
			},
		}
		results := matchTables(ragged, "overflow")
		require.Len(t, results, 1)
		assert.Equal(t, "Table cell (Row 1, Col 2): overflow", results[0].Context)
	})
}

func TestMatchKeywords(t *testing.T) {
	doc := &core.Document{
		Name:     "report.pdf",
		Keywords: []string{"revenue", "growth", "forecast"},
	}

	results := matchKeywords(doc, "revenue")
	require.Len(t, results, 1)
	assert.Equal(t, scoreKeywordMatch, results[0].Score)
	assert.Equal(t, core.MatchTypeText, results[0].Type)
	assert.Equal(t, "Keyword: revenue", results[0].Context)

	assert.Empty(t, matchKeywords(doc, "cooking"))
}

func TestMatchDocument_SourceGating(t *testing.T) {
	doc := &core.Document{
		Name: "scan.pdf",
		Text: "revenue in the body",
		Images: []core.Image{
			{Ref: "p1.png", OCRText: "revenue in a scanned image"},
		},
		Summary:  "revenue summary",
		Metadata: core.Metadata{Title: "Revenue"},
	}
	terms := normalize("revenue")

	t.Run("all sources enabled", func(t *testing.T) {
		results := matchDocument(doc, "revenue", terms, DefaultOptions())
		types := make(map[core.MatchType]int)
		for _, r := range results {
			types[r.Type]++
		}
		assert.Equal(t, 2, types[core.MatchTypeText]) // body + summary
		assert.Equal(t, 1, types[core.MatchTypeOCR])
		assert.Equal(t, 1, types[core.MatchTypeMetadata])
	})

	t.Run("ocr disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeOCR = false
		results := matchDocument(doc, "revenue", terms, opts)
		for _, r := range results {
			assert.NotEqual(t, core.MatchTypeOCR, r.Type)
		}
	})

	t.Run("metadata disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeMetadata = false
		results := matchDocument(doc, "revenue", terms, opts)
		for _, r := range results {
			assert.NotEqual(t, core.MatchTypeMetadata, r.Type)
		}
	})

	t.Run("text disabled skips body and summary", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeText = false
		results := matchDocument(doc, "revenue", terms, opts)
		for _, r := range results {
			assert.NotEqual(t, "revenue in the body", r.Fragment)
			assert.NotEqual(t, "revenue summary", r.Fragment)
		}
	})
}

func TestMatchDocument_DuplicateFragmentsAcrossMatchersKept(t *testing.T) {
	// The same string found by the body scan and the summary scan is NOT
	// merged: deduplication is scoped per scan.
	doc := &core.Document{
		Name:    "dup.pdf",
		Text:    "revenue",
		Summary: "revenue",
	}
	results := matchDocument(doc, "revenue", normalize("revenue"), DefaultOptions())
	assert.Len(t, results, 2)
}
