// Package ingestion provides pipeline orchestration for document intake.
//
// The Pipeline type manages the ingestion workflow for documents, including:
//   - Building documents from caller-extracted sources
//   - Running OCR over page images
//   - Deriving summaries, keywords, topics, and language
//
// Processing is performed concurrently using worker pools to maximize
// throughput. Enrichment errors are logged but do not fail the ingestion
// operation; invalid sources are dropped.
package ingestion
