package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/poiesic/docfind/core"
)

// Snapshot stream layout: a 4-byte magic, a uint32 document count, then one
// length-prefixed serialized document per entry. All integers big-endian.
const streamMagic uint32 = 0x44465331 // "DFS1"

// maxRecordSize bounds a single serialized document when reading, guarding
// against corrupt or hostile input.
const maxRecordSize = 64 << 20

var (
	// ErrBadMagic is returned when the stream does not start with the
	// snapshot magic.
	ErrBadMagic = errors.New("not a document snapshot")

	// ErrRecordTooLarge is returned when a record's length prefix exceeds
	// maxRecordSize.
	ErrRecordTooLarge = errors.New("snapshot record too large")
)

// Write serializes the document collection to w.
func Write(w io.Writer, docs []*core.Document) error {
	if err := binary.Write(w, binary.BigEndian, streamMagic); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(docs))); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}

	for _, doc := range docs {
		data := MarshalDocument(doc)
		if err := binary.Write(w, binary.BigEndian, uint32(len(data))); err != nil {
			return fmt.Errorf("writing record %s: %w", doc.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing record %s: %w", doc.Name, err)
		}
	}

	return nil
}

// Read deserializes a document collection from r.
func Read(r io.Reader) ([]*core.Document, error) {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("reading snapshot header: %w", err)
	}
	if magic != streamMagic {
		return nil, ErrBadMagic
	}

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("reading snapshot header: %w", err)
	}

	docs := make([]*core.Document, 0, count)
	for i := uint32(0); i < count; i++ {
		var length uint32
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			return nil, fmt.Errorf("reading record %d: %w", i, err)
		}
		if length > maxRecordSize {
			return nil, ErrRecordTooLarge
		}

		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("reading record %d: %w", i, err)
		}

		doc, err := UnmarshalDocument(data)
		if err != nil {
			return nil, fmt.Errorf("decoding record %d: %w", i, err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
