// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice9pJMcth7t5APdIU8htbqOQΞΞ = ord.NewSliceSer[[]string](slices44y6Ex1wUFF1p8BhmbkHAΞΞ)
	sliceBSzFULΔ8E3hC7pCbOMoFrwΞΞ = ord.NewSliceSer[Table](TableMUS)
	sliceWxED55Hl5dm1GysNTLATqQΞΞ = ord.NewSliceSer[Image](ImageMUS)
	slices44y6Ex1wUFF1p8BhmbkHAΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var ImageMUS = imageMUS{}

type imageMUS struct{}

func (s imageMUS) Marshal(v Image, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Ref, bs[n:])
	return n + ord.String.Marshal(v.OCRText, bs[n:])
}

func (s imageMUS) Unmarshal(bs []byte) (v Image, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Ref, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OCRText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s imageMUS) Size(v Image) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Ref)
	return size + ord.String.Size(v.OCRText)
}

func (s imageMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var TableMUS = tableMUS{}

type tableMUS struct{}

func (s tableMUS) Marshal(v Table, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Marshal(v.Headers, bs[n:])
	return n + slice9pJMcth7t5APdIU8htbqOQΞΞ.Marshal(v.Rows, bs[n:])
}

func (s tableMUS) Unmarshal(bs []byte) (v Table, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Headers, n1, err = slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rows, n1, err = slice9pJMcth7t5APdIU8htbqOQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s tableMUS) Size(v Table) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Size(v.Headers)
	return size + slice9pJMcth7t5APdIU8htbqOQΞΞ.Size(v.Rows)
}

func (s tableMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice9pJMcth7t5APdIU8htbqOQΞΞ.Skip(bs[n:])
	n += n1
	return
}

var MetadataMUS = metadataMUS{}

type metadataMUS struct{}

func (s metadataMUS) Marshal(v Metadata, bs []byte) (n int) {
	n = ord.String.Marshal(v.Title, bs)
	n += ord.String.Marshal(v.Author, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.ModifiedAt, bs[n:])
	n += varint.Int.Marshal(v.PageCount, bs[n:])
	n += varint.Int.Marshal(v.WordCount, bs[n:])
	return n + ord.String.Marshal(v.Language, bs[n:])
}

func (s metadataMUS) Unmarshal(bs []byte) (v Metadata, n int, err error) {
	v.Title, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Author, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ModifiedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PageCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.WordCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Language, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s metadataMUS) Size(v Metadata) (size int) {
	size = ord.String.Size(v.Title)
	size += ord.String.Size(v.Author)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	size += raw.TimeUnixMicro.Size(v.ModifiedAt)
	size += varint.Int.Size(v.PageCount)
	size += varint.Int.Size(v.WordCount)
	return size + ord.String.Size(v.Language)
}

func (s metadataMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.FileType, bs[n:])
	n += varint.Int64.Marshal(v.Size, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.UploadedAt, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += sliceWxED55Hl5dm1GysNTLATqQΞΞ.Marshal(v.Images, bs[n:])
	n += sliceBSzFULΔ8E3hC7pCbOMoFrwΞΞ.Marshal(v.Tables, bs[n:])
	n += MetadataMUS.Marshal(v.Metadata, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Marshal(v.Keywords, bs[n:])
	return n + slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Marshal(v.Topics, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FileType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Size, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UploadedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Images, n1, err = sliceWxED55Hl5dm1GysNTLATqQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tables, n1, err = sliceBSzFULΔ8E3hC7pCbOMoFrwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = MetadataMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Topics, n1, err = slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.FileType)
	size += varint.Int64.Size(v.Size)
	size += raw.TimeUnixMicro.Size(v.UploadedAt)
	size += ord.String.Size(v.Text)
	size += sliceWxED55Hl5dm1GysNTLATqQΞΞ.Size(v.Images)
	size += sliceBSzFULΔ8E3hC7pCbOMoFrwΞΞ.Size(v.Tables)
	size += MetadataMUS.Size(v.Metadata)
	size += ord.String.Size(v.Summary)
	size += slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Size(v.Keywords)
	return size + slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Size(v.Topics)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceWxED55Hl5dm1GysNTLATqQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceBSzFULΔ8E3hC7pCbOMoFrwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = MetadataMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slices44y6Ex1wUFF1p8BhmbkHAΞΞ.Skip(bs[n:])
	n += n1
	return
}
