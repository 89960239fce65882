package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing, so identical content always
// maps to the same identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MatchType classifies the origin of a search result.
type MatchType int

const (
	// MatchTypeText marks matches found in body text, summaries, tables, or keywords.
	MatchTypeText MatchType = iota + 1
	// MatchTypeOCR marks matches found in image-derived (OCR) text.
	MatchTypeOCR
	// MatchTypeMetadata marks matches found in title or author metadata.
	MatchTypeMetadata
)

// String returns the display tag for the match type.
func (t MatchType) String() string {
	switch t {
	case MatchTypeText:
		return "text"
	case MatchTypeOCR:
		return "ocr"
	case MatchTypeMetadata:
		return "metadata"
	}
	return "unknown"
}

// Document is a fully processed document as produced by the ingestion
// pipeline. It is an immutable input to the search engine: full extracted
// text, per-image OCR text, tabular data, and AI-derived summary, keywords,
// and topics are all populated before a document reaches the searcher.
type Document struct {
	Id         ID
	Name       string    // Display name shown in results
	FileType   string    // e.g. "pdf", "png", "txt"
	Size       int64     // Size in bytes of the original file
	UploadedAt time.Time // When the document entered the intake pipeline
	Text       string    // Full extracted text
	Images     []Image
	Tables     []Table
	Metadata   Metadata
	Summary    string   // Optional AI-derived summary
	Keywords   []string // Optional AI-derived keywords
	Topics     []string // Optional AI-derived topic labels
}

// Image is an embedded or attached image owned by its parent document.
type Image struct {
	Id      ID
	Ref     string // Reference to the binary (path or URI)
	OCRText string // Recognized text, empty if recognition was skipped or failed
}

// Table holds tabular data extracted from a document.
// Every row is expected to have the same length as the header row; this is
// not enforced here, see ValidateTable.
type Table struct {
	Id      ID
	Title   string
	Headers []string
	Rows    [][]string
}

// Metadata carries optional descriptive fields for a document.
type Metadata struct {
	Title      string
	Author     string
	CreatedAt  time.Time
	ModifiedAt time.Time
	PageCount  int
	WordCount  int
	Language   string // Language tag, e.g. "en"
}

// SearchResult is a single ranked match returned to callers.
type SearchResult struct {
	DocumentId   ID
	DocumentName string
	Fragment     string  // The matched content fragment
	Score        float64 // Relevance in [0,1]; callers display with 2 decimals
	Type         MatchType
	Context      string // Bounded excerpt surrounding the match, for previews
}
