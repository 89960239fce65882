// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - UploadedAt must not be in the future
//   - Every table must pass ValidateTable
//
// NOT validated (optional, populated by processors):
//   - Text, Summary, Keywords, Topics (all may be empty)
//   - Images and their OCR text
//   - ID (0 is valid before content hashing)
//
// The search engine itself never calls this: missing optional fields simply
// contribute no matches, and ragged tables degrade to positional cell
// matching. Callers that want strict inputs validate upstream.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyName)
	}

	if !doc.UploadedAt.IsZero() && !IsValidTimestamp(doc.UploadedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidTimestamp)
	}

	for i := range doc.Tables {
		if err := ValidateTable(&doc.Tables[i]); err != nil {
			return fmt.Errorf("%w: table %d: %w", ErrInvalidDocument, i, err)
		}
	}

	return nil
}

// ValidateTable checks that every row has the same length as the header row.
// A ragged table is reported here but never rejected by the searcher, which
// matches cells purely by position.
func ValidateTable(table *Table) error {
	if table == nil {
		return fmt.Errorf("%w: table is nil", ErrInvalidTable)
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Headers) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrRaggedTable, i, len(row), len(table.Headers))
		}
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
