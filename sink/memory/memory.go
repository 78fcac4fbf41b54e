package memory

import (
	"github.com/wippyai/formdata/errors"
	"github.com/wippyai/formdata/sink"
)

// EntryKind distinguishes plain string entries from file attachments,
// mirroring the string/File split of browser FormData enumeration.
type EntryKind uint8

const (
	EntryString EntryKind = iota
	EntryFile
)

// Entry is one appended field as the sink observed it.
type Entry struct {
	Name     string
	Kind     EntryKind
	Value    string // set for EntryString
	Blob     *Blob  // set for EntryFile
	FileName string
	HasName  bool
}

// Blob is an in-memory binary object with an embedded content type.
// It implements both sink.Blob and sink.Native, so it can also stand in
// for a host-materialized object passed through a form unchanged.
type Blob struct {
	data        []byte
	contentType string
}

// NewBlob materializes a blob from bytes. An empty contentType leaves
// the type unset.
func NewBlob(data []byte, contentType string) *Blob {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Blob{data: owned, contentType: contentType}
}

// Size returns the byte length of the blob.
func (b *Blob) Size() int {
	return len(b.data)
}

// ContentType returns the blob's embedded media type, or "".
func (b *Blob) ContentType() string {
	return b.contentType
}

// Bytes returns a copy of the blob's contents.
func (b *Blob) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Factory creates in-memory sinks.
type Factory struct{}

// NewFactory creates a factory for in-memory sinks.
func NewFactory() *Factory {
	return &Factory{}
}

// New creates an empty in-memory sink.
func (f *Factory) New() (sink.Sink, error) {
	return NewSink(), nil
}

// BuildBlob materializes an in-memory blob.
func (f *Factory) BuildBlob(data []byte, mediaType string) (sink.Blob, error) {
	return NewBlob(data, mediaType), nil
}

// Sink is an in-memory FormData analogue: an ordered list of entries,
// duplicate names preserved in append order.
type Sink struct {
	entries []Entry
}

// NewSink creates an empty in-memory sink.
func NewSink() *Sink {
	return &Sink{}
}

// AppendString appends a plain string entry.
func (s *Sink) AppendString(name, value string) error {
	s.entries = append(s.entries, Entry{Name: name, Kind: EntryString, Value: value})
	return nil
}

// AppendBlob appends an unnamed file entry.
func (s *Sink) AppendBlob(name string, blob sink.Blob) error {
	b, err := s.ownBlob(blob)
	if err != nil {
		return err
	}
	s.entries = append(s.entries, Entry{Name: name, Kind: EntryFile, Blob: b})
	return nil
}

// AppendBlobNamed appends a file entry reported under fileName.
func (s *Sink) AppendBlobNamed(name string, blob sink.Blob, fileName string) error {
	b, err := s.ownBlob(blob)
	if err != nil {
		return err
	}
	s.entries = append(s.entries, Entry{Name: name, Kind: EntryFile, Blob: b, FileName: fileName, HasName: true})
	return nil
}

// AppendNative appends a native object unchanged, without a file name.
func (s *Sink) AppendNative(name string, obj sink.Native) error {
	return s.AppendBlob(name, obj)
}

// AppendNativeNamed appends a native object unchanged under fileName.
func (s *Sink) AppendNativeNamed(name string, obj sink.Native, fileName string) error {
	return s.AppendBlobNamed(name, obj, fileName)
}

// ownBlob rejects blobs materialized by a different host environment.
func (s *Sink) ownBlob(blob sink.Blob) (*Blob, error) {
	b, ok := blob.(*Blob)
	if !ok {
		return nil, errors.InvalidBlob("blob was not built by the memory factory")
	}
	return b, nil
}

// Entries returns the appended entries in order.
func (s *Sink) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Sink) Len() int {
	return len(s.entries)
}

// Get returns the first entry appended under name.
func (s *Sink) Get(name string) (Entry, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
