package multipart

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/wippyai/formdata/errors"
	"github.com/wippyai/formdata/sink"
	"github.com/wippyai/formdata/sink/memory"
)

func encodeToMemory(t *testing.T, form Form) *memory.Sink {
	t.Helper()
	s, err := Encode(form, memory.NewFactory())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return s.(*memory.Sink)
}

func TestEncode_TextFieldsInOrder(t *testing.T) {
	form := New().
		Text("a", "1").
		Text("b", "2")

	s := encodeToMemory(t, form)

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	want := []struct{ name, value string }{{"a", "1"}, {"b", "2"}}
	for i, w := range want {
		e := entries[i]
		if e.Kind != memory.EntryString {
			t.Errorf("entry %d: expected plain string, got file", i)
		}
		if e.Name != w.name || e.Value != w.value {
			t.Errorf("entry %d: expected (%q,%q), got (%q,%q)", i, w.name, w.value, e.Name, e.Value)
		}
	}
}

func TestEncode_EmptyForm(t *testing.T) {
	form := New()
	if !form.IsEmpty() {
		t.Fatal("new form should be empty")
	}

	s := encodeToMemory(t, form)
	if s.Len() != 0 {
		t.Errorf("expected 0 entries, got %d", s.Len())
	}
}

func TestEncode_DuplicateNamesPreserved(t *testing.T) {
	form := New().
		Text("tag", "x").
		Text("tag", "y").
		Text("tag", "z")

	s := encodeToMemory(t, form)

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"x", "y", "z"} {
		if entries[i].Name != "tag" || entries[i].Value != want {
			t.Errorf("entry %d: got (%q,%q)", i, entries[i].Name, entries[i].Value)
		}
	}
}

func TestEncode_TextWithCustomTypeDowngraded(t *testing.T) {
	// A string value cannot carry an arbitrary content type; the part is
	// promoted to an attachment and the type forced to text/plain.
	part, err := Text("hi").WithMediaTypeString("application/json")
	if err != nil {
		t.Fatalf("WithMediaTypeString: %v", err)
	}

	s := encodeToMemory(t, New().Part("j", part))

	e, ok := s.Get("j")
	if !ok {
		t.Fatal("field j missing")
	}
	if e.Kind != memory.EntryFile {
		t.Fatal("expected an attachment, got a plain string")
	}
	if got := e.Blob.ContentType(); got != "text/plain" {
		t.Errorf("expected content type text/plain, got %q", got)
	}
	if got := string(e.Blob.Bytes()); got != "hi" {
		t.Errorf("expected bytes %q, got %q", "hi", got)
	}
	if e.HasName {
		t.Errorf("expected unnamed attachment, got file name %q", e.FileName)
	}
}

func TestEncode_TextDowngradeWithFileName(t *testing.T) {
	part, err := Text("data").WithMediaTypeString("application/xml")
	if err != nil {
		t.Fatalf("WithMediaTypeString: %v", err)
	}
	part = part.WithFileName("d.xml")

	s := encodeToMemory(t, New().Part("x", part))

	e, _ := s.Get("x")
	if e.Kind != memory.EntryFile {
		t.Fatal("expected an attachment")
	}
	if got := e.Blob.ContentType(); got != "text/plain" {
		t.Errorf("expected forced text/plain, got %q", got)
	}
	if !e.HasName || e.FileName != "d.xml" {
		t.Errorf("expected file name d.xml, got %q", e.FileName)
	}
}

func TestEncode_TextPlainWithParamsDowngraded(t *testing.T) {
	// "text/plain; charset=utf-8" is not the canonical type, so the
	// field still takes the attachment path.
	part, err := Text("hé").WithMediaTypeString("text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("WithMediaTypeString: %v", err)
	}

	s := encodeToMemory(t, New().Part("t", part))

	e, _ := s.Get("t")
	if e.Kind != memory.EntryFile {
		t.Fatal("expected an attachment")
	}
	if got := e.Blob.ContentType(); got != "text/plain" {
		t.Errorf("expected text/plain, got %q", got)
	}
}

func TestEncode_PlainTextWithExplicitTextPlainStaysString(t *testing.T) {
	part, err := Text("v").WithMediaTypeString("text/plain")
	if err != nil {
		t.Fatalf("WithMediaTypeString: %v", err)
	}

	s := encodeToMemory(t, New().Part("p", part))

	e, _ := s.Get("p")
	if e.Kind != memory.EntryString {
		t.Fatal("canonical text/plain without a file name should stay a plain string")
	}
	if e.Value != "v" {
		t.Errorf("expected value %q, got %q", "v", e.Value)
	}
}

func TestEncode_TextWithFileNameOnly(t *testing.T) {
	part := Text("plain").WithFileName("note.txt")

	s := encodeToMemory(t, New().Part("n", part))

	e, _ := s.Get("n")
	if e.Kind != memory.EntryFile {
		t.Fatal("expected a named attachment")
	}
	if !e.HasName || e.FileName != "note.txt" {
		t.Errorf("expected file name note.txt, got %q", e.FileName)
	}
	if got := e.Blob.ContentType(); got != "" {
		t.Errorf("expected unset content type, got %q", got)
	}
	if got := string(e.Blob.Bytes()); got != "plain" {
		t.Errorf("expected bytes %q, got %q", "plain", got)
	}
}

func TestEncode_BytesWithTypeAndFileName(t *testing.T) {
	part := Bytes([]byte{0, 42}).WithFileName("x.bin")
	part, err := part.WithMediaTypeString("application/octet-stream")
	if err != nil {
		t.Fatalf("WithMediaTypeString: %v", err)
	}

	s := encodeToMemory(t, New().Part("f", part))

	e, _ := s.Get("f")
	if e.Kind != memory.EntryFile {
		t.Fatal("expected an attachment")
	}
	if !e.HasName || e.FileName != "x.bin" {
		t.Errorf("expected file name x.bin, got %q", e.FileName)
	}
	if got := e.Blob.ContentType(); got != "application/octet-stream" {
		t.Errorf("expected application/octet-stream, got %q", got)
	}
	if !bytes.Equal(e.Blob.Bytes(), []byte{0, 42}) {
		t.Errorf("unexpected bytes %v", e.Blob.Bytes())
	}
}

func TestEncode_BytesWithoutTypeUnnamed(t *testing.T) {
	s := encodeToMemory(t, New().Part("raw", Bytes([]byte("abc"))))

	e, _ := s.Get("raw")
	if e.Kind != memory.EntryFile {
		t.Fatal("expected an attachment")
	}
	if e.HasName {
		t.Error("expected unnamed attachment")
	}
	if got := e.Blob.ContentType(); got != "" {
		t.Errorf("expected unset content type, got %q", got)
	}
}

func TestEncode_StreamReader(t *testing.T) {
	part := Stream(bytes.NewReader([]byte("streamed"))).WithFileName("s.dat")
	part, err := part.WithMediaTypeString("application/octet-stream")
	if err != nil {
		t.Fatalf("WithMediaTypeString: %v", err)
	}

	s := encodeToMemory(t, New().Part("s", part))

	e, _ := s.Get("s")
	if e.Kind != memory.EntryFile {
		t.Fatal("expected an attachment")
	}
	if got := string(e.Blob.Bytes()); got != "streamed" {
		t.Errorf("expected bytes %q, got %q", "streamed", got)
	}
	if got := e.Blob.ContentType(); got != "application/octet-stream" {
		t.Errorf("expected application/octet-stream, got %q", got)
	}
	if !e.HasName || e.FileName != "s.dat" {
		t.Errorf("expected file name s.dat, got %q", e.FileName)
	}
}

func TestEncode_NativeObjectTypeAuthoritative(t *testing.T) {
	// The object's embedded type wins over anything configured on the part.
	native := memory.NewBlob([]byte{0, 42}, "image/jpeg")
	part, err := Stream(native).WithMediaTypeString("application/pdf")
	if err != nil {
		t.Fatalf("WithMediaTypeString: %v", err)
	}
	part = part.WithFileName("blob")

	s := encodeToMemory(t, New().Part("blob", part))

	e, _ := s.Get("blob")
	if e.Kind != memory.EntryFile {
		t.Fatal("expected an attachment")
	}
	if got := e.Blob.ContentType(); got != "image/jpeg" {
		t.Errorf("embedded type should be authoritative, got %q", got)
	}
	if !e.HasName || e.FileName != "blob" {
		t.Errorf("expected file name blob, got %q", e.FileName)
	}
	if e.Blob.Size() != 2 {
		t.Errorf("expected size 2, got %d", e.Blob.Size())
	}
}

func TestEncode_NativeObjectUnnamed(t *testing.T) {
	native := memory.NewBlob([]byte("n"), "application/cbor")

	s := encodeToMemory(t, New().Part("n", Stream(native)))

	e, _ := s.Get("n")
	if e.HasName {
		t.Error("expected unnamed append for native object without file name")
	}
	if got := e.Blob.ContentType(); got != "application/cbor" {
		t.Errorf("expected application/cbor, got %q", got)
	}
}

func TestEncode_NestedFormRejected(t *testing.T) {
	inner := New().Text("a", "1")

	_, err := Encode(New().Part("bad", Stream(inner)), memory.NewFactory())
	if err == nil {
		t.Fatal("expected error for nested form")
	}
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if e.Kind != errors.KindNestedMultipart {
		t.Errorf("expected nested_multipart, got %v", e.Kind)
	}
	if e.Field != "bad" {
		t.Errorf("expected field 'bad', got %q", e.Field)
	}

	_, err = Encode(New().Part("bad", Stream(&inner)), memory.NewFactory())
	if err == nil {
		t.Fatal("expected error for nested *Form")
	}
}

func TestEncode_UnsupportedStreamSource(t *testing.T) {
	_, err := Encode(New().Part("x", Stream(42)), memory.NewFactory())
	if err == nil {
		t.Fatal("expected error for unclassifiable stream source")
	}
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindUnsupportedValue {
		t.Fatalf("expected unsupported_value, got %v", err)
	}
}

func TestWithMediaTypeString_Invalid(t *testing.T) {
	_, err := Text("x").WithMediaTypeString("not a valid mime")
	if err == nil {
		t.Fatal("expected invalid_mime error")
	}
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if e.Kind != errors.KindInvalidMime || e.Phase != errors.PhaseBuild {
		t.Errorf("expected build/invalid_mime, got %v/%v", e.Phase, e.Kind)
	}
}

// failSink fails on the nth append to verify fail-fast wrapping.
type failSink struct {
	appends int
	failAt  int
}

type failFactory struct {
	sink      *failSink
	createErr error
}

func (f *failFactory) New() (sink.Sink, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.sink, nil
}

func (f *failFactory) BuildBlob(data []byte, mediaType string) (sink.Blob, error) {
	return memory.NewBlob(data, mediaType), nil
}

func (s *failSink) append() error {
	s.appends++
	if s.appends >= s.failAt {
		return fmt.Errorf("sink rejected append %d", s.appends)
	}
	return nil
}

func (s *failSink) AppendString(name, value string) error { return s.append() }
func (s *failSink) AppendBlob(name string, blob sink.Blob) error {
	return s.append()
}
func (s *failSink) AppendBlobNamed(name string, blob sink.Blob, fileName string) error {
	return s.append()
}
func (s *failSink) AppendNative(name string, obj sink.Native) error {
	return s.append()
}
func (s *failSink) AppendNativeNamed(name string, obj sink.Native, fileName string) error {
	return s.append()
}

func TestEncode_SinkCreationFailed(t *testing.T) {
	cause := fmt.Errorf("no host form builder")
	_, err := Encode(New().Text("a", "1"), &failFactory{createErr: cause})
	if err == nil {
		t.Fatal("expected sink_creation error")
	}
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindSinkCreation {
		t.Fatalf("expected sink_creation, got %v", err)
	}
	if e.Unwrap() != cause {
		t.Error("cause not preserved")
	}
}

func TestEncode_AppendFailedAbortsAndNamesField(t *testing.T) {
	fs := &failSink{failAt: 2}
	form := New().
		Text("first", "1").
		Text("second", "2").
		Text("third", "3")

	_, err := Encode(form, &failFactory{sink: fs})
	if err == nil {
		t.Fatal("expected append_failed error")
	}
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindAppendFailed {
		t.Fatalf("expected append_failed, got %v", err)
	}
	if e.Field != "second" {
		t.Errorf("expected failing field 'second', got %q", e.Field)
	}
	if fs.appends != 2 {
		t.Errorf("encoding should abort after the failure, saw %d appends", fs.appends)
	}
}
