package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits",
			text: "Quarterly Revenue Report",
			want: []string{"quarterly", "revenue", "report"},
		},
		{
			name: "strips punctuation",
			text: "revenue, growth! (Q1-2023)",
			want: []string{"revenue", "growth", "2023"},
		},
		{
			name: "drops short terms",
			text: "to be or not 2023",
			want: []string{"not", "2023"},
		},
		{
			name: "collapses whitespace runs",
			text: "  revenue \t\n growth  ",
			want: []string{"revenue", "growth"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "only punctuation",
			text: "?!... --- ;;",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.text)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestNormalize_Restartable(t *testing.T) {
	text := "The quarterly revenue report"
	first := normalize(text)
	second := normalize(text)
	assert.Equal(t, first, second)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  float64
	}{
		{
			name:  "identical term sets",
			query: "financial results",
			text:  "financial results",
			want:  1.0,
		},
		{
			name:  "disjoint term sets",
			query: "financial results",
			text:  "cooking recipes dinner",
			want:  0.0,
		},
		{
			name:  "both empty",
			query: "",
			text:  "",
			want:  0.0,
		},
		{
			name:  "query empty",
			query: "",
			text:  "financial results",
			want:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarity(tt.query, tt.text), 1e-9)
		})
	}
}

func TestSimilarity_PartialOverlap(t *testing.T) {
	// {financial, results} vs {annual, financial, results, and, outlook}:
	// intersection 2, union 5.
	sim := similarity("financial results", "Annual financial results and outlook")
	assert.InDelta(t, 0.4, sim, 1e-9)
}

func TestSimilarity_Bounded(t *testing.T) {
	queries := []string{"revenue", "growth report", "alpha beta gamma", ""}
	texts := []string{"revenue growth", "", "alpha", "completely unrelated words here"}
	for _, q := range queries {
		for _, txt := range texts {
			sim := similarity(q, txt)
			assert.GreaterOrEqual(t, sim, 0.0)
			assert.LessOrEqual(t, sim, 1.0)
		}
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Quarterly Report", "quarterly"))
	assert.True(t, containsFold("bob", "BOB"))
	assert.False(t, containsFold("Quarterly Report", "annual"))
}
