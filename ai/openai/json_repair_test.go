package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid JSON untouched",
			input: `{"summary": "ok", "keywords": ["a"]}`,
			want:  `{"summary": "ok", "keywords": ["a"]}`,
		},
		{
			name:  "missing opening quote after brace",
			input: `{summary": "ok"}`,
			want:  `{"summary": "ok"}`,
		},
		{
			name:  "missing opening quote after comma",
			input: `{"summary": "ok", language": "en"}`,
			want:  `{"summary": "ok", "language": "en"}`,
		},
		{
			name:  "trailing comma in object",
			input: `{"summary": "ok",}`,
			want:  `{"summary": "ok"}`,
		},
		{
			name:  "trailing comma in array",
			input: `{"keywords": ["a", "b",]}`,
			want:  `{"keywords": ["a", "b"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repairJSON(tt.input)
			assert.Equal(t, tt.want, got)
			assert.True(t, json.Valid([]byte(got)))
		})
	}
}
