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


package ingestion

import (
	"context"

	"github.com/poiesic/docfind/core"
)

// enricher is an internal interface for document enrichment steps.
// Implementations handle specific tasks like OCR or content analysis.
type enricher interface {
	// enrich mutates the document in place. Partial failures are logged by
	// the implementation; a returned error aborts the remaining steps for
	// this document only.
	enrich(ctx context.Context, doc *core.Document) error
}
