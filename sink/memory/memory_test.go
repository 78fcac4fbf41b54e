package memory

import (
	"bytes"
	"testing"

	"github.com/wippyai/formdata/sink"
)

func TestSink_AppendOrder(t *testing.T) {
	s := NewSink()

	if err := s.AppendString("a", "1"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	if err := s.AppendBlob("b", NewBlob([]byte{2}, "")); err != nil {
		t.Fatalf("AppendBlob: %v", err)
	}
	if err := s.AppendString("a", "3"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "a" || entries[1].Name != "b" || entries[2].Name != "a" {
		t.Errorf("order not preserved: %v", entries)
	}

	// Get returns the first match.
	e, ok := s.Get("a")
	if !ok || e.Value != "1" {
		t.Errorf("Get should return first entry, got %q", e.Value)
	}
}

func TestSink_NamedAndUnnamedBlobs(t *testing.T) {
	s := NewSink()

	if err := s.AppendBlobNamed("f", NewBlob([]byte("x"), "image/png"), "x.png"); err != nil {
		t.Fatalf("AppendBlobNamed: %v", err)
	}
	if err := s.AppendBlob("g", NewBlob([]byte("y"), "")); err != nil {
		t.Fatalf("AppendBlob: %v", err)
	}

	f, _ := s.Get("f")
	if !f.HasName || f.FileName != "x.png" {
		t.Errorf("expected file name x.png, got %q", f.FileName)
	}
	g, _ := s.Get("g")
	if g.HasName {
		t.Error("expected unnamed entry")
	}
}

func TestSink_NativePassThrough(t *testing.T) {
	s := NewSink()
	obj := NewBlob([]byte{0, 42}, "image/jpeg")

	if err := s.AppendNativeNamed("blob", obj, "blob"); err != nil {
		t.Fatalf("AppendNativeNamed: %v", err)
	}

	e, _ := s.Get("blob")
	if e.Blob != obj {
		t.Error("native object should pass through unchanged")
	}
	if e.Blob.ContentType() != "image/jpeg" {
		t.Errorf("content type %q", e.Blob.ContentType())
	}
}

func TestSink_RejectsForeignBlob(t *testing.T) {
	s := NewSink()
	if err := s.AppendBlob("x", foreignBlob{}); err == nil {
		t.Fatal("expected error for a blob from another factory")
	}
}

type foreignBlob struct{}

func (foreignBlob) Size() int { return 0 }

func TestBlob_CopiesData(t *testing.T) {
	data := []byte{1, 2}
	b := NewBlob(data, "")
	data[0] = 9

	if b.Bytes()[0] != 1 {
		t.Error("NewBlob should copy its input")
	}

	out := b.Bytes()
	out[1] = 9
	if b.Bytes()[1] != 2 {
		t.Error("Bytes should return a copy")
	}
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	s, err := f.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.(*Sink).Len() != 0 {
		t.Error("new sink should be empty")
	}

	blob, err := f.BuildBlob([]byte("abc"), "text/csv")
	if err != nil {
		t.Fatalf("BuildBlob: %v", err)
	}
	b := blob.(*Blob)
	if !bytes.Equal(b.Bytes(), []byte("abc")) || b.ContentType() != "text/csv" {
		t.Errorf("blob %v %q", b.Bytes(), b.ContentType())
	}

	var _ sink.Factory = f
	var _ sink.Native = b
}
