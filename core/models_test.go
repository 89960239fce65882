package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "quarterly revenue report",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "This is a much longer piece of content that should still hash consistently",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("report.pdf")
	id2 := IDFromContent("report2.pdf")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestMatchType_String(t *testing.T) {
	tests := []struct {
		name string
		mt   MatchType
		want string
	}{
		{name: "text", mt: MatchTypeText, want: "text"},
		{name: "ocr", mt: MatchTypeOCR, want: "ocr"},
		{name: "metadata", mt: MatchTypeMetadata, want: "metadata"},
		{name: "zero value", mt: MatchType(0), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mt.String(); got != tt.want {
				t.Errorf("MatchType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
