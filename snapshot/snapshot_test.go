package snapshot

import (
	"bytes"
	"testing"
	"time"

	"github.com/poiesic/docfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("report.pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func testDocument(name string) *core.Document {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &core.Document{
		Id:         core.IDFromContent(name),
		Name:       name,
		FileType:   "pdf",
		Size:       4096,
		UploadedAt: now,
		Text:       "The quarterly revenue report shows revenue growth.",
		Images: []core.Image{
			{Id: core.IDFromContent(name + "/p1"), Ref: "p1.png", OCRText: "Page one text"},
		},
		Tables: []core.Table{
			{
				Id:      core.IDFromContent(name + "/t1"),
				Title:   "Accounts",
				Headers: []string{"Name", "Amount"},
				Rows:    [][]string{{"Alice", "100"}, {"Bob", "200"}},
			},
		},
		Metadata: core.Metadata{
			Title:      "Q1 Report",
			Author:     "Finance Team",
			CreatedAt:  now,
			ModifiedAt: now,
			PageCount:  12,
			WordCount:  3400,
			Language:   "en",
		},
		Summary:  "Revenue grew in the first quarter.",
		Keywords: []string{"revenue", "growth"},
		Topics:   []string{"finance"},
	}
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  *core.Document
	}{
		{"minimal document", &core.Document{Id: 1, Name: "a.txt"}},
		{"full document", testDocument("report.pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalDocument(tt.doc)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalDocument(data)
			require.NoError(t, err)
			assert.Equal(t, tt.doc, decoded)
		})
	}
}

func TestWriteRead(t *testing.T) {
	docs := []*core.Document{
		testDocument("report.pdf"),
		testDocument("invoice.pdf"),
		{Id: 3, Name: "empty.txt"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, docs))

	decoded, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, len(docs))
	for i := range docs {
		assert.Equal(t, docs[i], decoded[i])
	}
}

func TestWriteRead_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	decoded, err := Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestRead_BadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 0}))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestRead_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []*core.Document{testDocument("report.pdf")}))

	truncated := buf.Bytes()[:buf.Len()/2]
	_, err := Read(bytes.NewReader(truncated))
	assert.Error(t, err)
}
