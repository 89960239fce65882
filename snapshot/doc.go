// Package snapshot provides a portable binary interchange format for
// document collections.
//
// Documents are serialized with the MUS format (compact, non-self-describing
// binary encoding; serializers are generated into the core package via go
// generate). A snapshot stream carries a magic header followed by
// length-prefixed records, so collections can be written to a file on one
// device and loaded on another.
//
//	var buf bytes.Buffer
//	if err := snapshot.Write(&buf, docs); err != nil { ... }
//	docs, err := snapshot.Read(&buf)
package snapshot
