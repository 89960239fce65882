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


// Package search provides multi-source content search and relevance ranking
// over processed documents.
//
// The Searcher type scans every content surface of a document collection:
//   - Full extracted text, summaries, and per-image OCR text (term matching)
//   - Table headers and cells, keywords, and title/author metadata
//     (substring matching with fixed source-authority scores)
//
// Matches are scored on a bounded [0,1] scale combining exactness, term
// frequency, and position, then deduplicated, thresholded, sorted, and
// truncated. A separate semantic mode ranks whole documents by term-set
// overlap instead of literal matching, and faceting aggregates corpus-wide
// counts by file type, language, topic, and author.
//
// The engine is stateless: every call receives the document collection as an
// immutable snapshot, so independent callers need no coordination.
package search
