package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDocument(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid minimal document",
			doc: &Document{
				Name: "report.pdf",
			},
			wantErr: nil,
		},
		{
			name: "valid full document",
			doc: &Document{
				Id:         IDFromContent("report.pdf"),
				Name:       "report.pdf",
				FileType:   "pdf",
				Size:       2048,
				UploadedAt: now.Add(-time.Hour),
				Text:       "The quarterly revenue report.",
				Images: []Image{
					{Ref: "img/p1.png", OCRText: "Figure 1"},
				},
				Tables: []Table{
					{
						Headers: []string{"Name", "Amount"},
						Rows:    [][]string{{"Alice", "100"}, {"Bob", "200"}},
					},
				},
				Metadata: Metadata{Title: "Q1 Report", Author: "Finance"},
				Summary:  "Revenue summary.",
				Keywords: []string{"revenue"},
				Topics:   []string{"finance"},
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "empty name",
			doc:     &Document{},
			wantErr: ErrEmptyName,
		},
		{
			name: "upload timestamp in the future",
			doc: &Document{
				Name:       "report.pdf",
				UploadedAt: now.Add(time.Hour),
			},
			wantErr: ErrInvalidTimestamp,
		},
		{
			name: "ragged table",
			doc: &Document{
				Name: "report.pdf",
				Tables: []Table{
					{
						Headers: []string{"Name", "Amount"},
						Rows:    [][]string{{"Alice", "100", "extra"}},
					},
				},
			},
			wantErr: ErrRaggedTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name    string
		table   *Table
		wantErr error
	}{
		{
			name: "uniform rows",
			table: &Table{
				Headers: []string{"Name", "Amount"},
				Rows:    [][]string{{"Alice", "100"}, {"Bob", "200"}},
			},
			wantErr: nil,
		},
		{
			name: "no rows",
			table: &Table{
				Headers: []string{"Name"},
			},
			wantErr: nil,
		},
		{
			name:    "nil table",
			table:   nil,
			wantErr: ErrInvalidTable,
		},
		{
			name: "short row",
			table: &Table{
				Headers: []string{"Name", "Amount"},
				Rows:    [][]string{{"Alice"}},
			},
			wantErr: ErrRaggedTable,
		},
		{
			name: "long row",
			table: &Table{
				Headers: []string{"Name"},
				Rows:    [][]string{{"Alice", "100"}},
			},
			wantErr: ErrRaggedTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTable(tt.table)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTable() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTable() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidTimestamp(t *testing.T) {
	if !IsValidTimestamp(time.Now().Add(-time.Minute)) {
		t.Error("IsValidTimestamp() rejected a past timestamp")
	}
	if IsValidTimestamp(time.Now().Add(time.Minute)) {
		t.Error("IsValidTimestamp() accepted a future timestamp")
	}
}
