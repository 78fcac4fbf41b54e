package wire

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/wippyai/formdata/errors"
	"github.com/wippyai/formdata/sink"
)

// Blob is a binary object destined for the wire body.
type Blob struct {
	data        []byte
	contentType string
}

// NewBlob materializes a blob from bytes. An empty contentType leaves
// the type unset and no Content-Type part header is written.
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

// byteSource is satisfied by blobs that expose their contents, which
// the wire sink needs in order to write them out.
type byteSource interface {
	sink.Blob
	Bytes() []byte
	ContentType() string
}

// Factory creates wire-format sinks.
type Factory struct {
	// Boundary fixes the multipart boundary. Empty picks a random one.
	Boundary string
}

// NewFactory creates a factory for wire-format sinks.
func NewFactory() *Factory {
	return &Factory{}
}

// New creates an empty wire sink.
func (f *Factory) New() (sink.Sink, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if f.Boundary != "" {
		if err := w.SetBoundary(f.Boundary); err != nil {
			return nil, err
		}
	}
	return &Sink{buf: buf, w: w}, nil
}

// BuildBlob materializes a wire blob.
func (f *Factory) BuildBlob(data []byte, mediaType string) (sink.Blob, error) {
	return NewBlob(data, mediaType), nil
}

// Sink writes fields into a real multipart/form-data body as they are
// appended. Field order on the wire is append order.
type Sink struct {
	buf    *bytes.Buffer
	w      *multipart.Writer
	sealed bool
}

// AppendString appends a plain form field with no explicit content type.
func (s *Sink) AppendString(name, value string) error {
	if s.sealed {
		return errors.SinkSealed()
	}
	return s.w.WriteField(name, value)
}

// AppendBlob appends an unnamed binary part.
func (s *Sink) AppendBlob(name string, blob sink.Blob) error {
	return s.writeBlob(name, blob, "", false)
}

// AppendBlobNamed appends a binary part reported under fileName.
func (s *Sink) AppendBlobNamed(name string, blob sink.Blob, fileName string) error {
	return s.writeBlob(name, blob, fileName, true)
}

// AppendNative appends a native object; its embedded type is written as-is.
func (s *Sink) AppendNative(name string, obj sink.Native) error {
	return s.writeBlob(name, obj, "", false)
}

// AppendNativeNamed appends a native object under fileName.
func (s *Sink) AppendNativeNamed(name string, obj sink.Native, fileName string) error {
	return s.writeBlob(name, obj, fileName, true)
}

func (s *Sink) writeBlob(name string, blob sink.Blob, fileName string, named bool) error {
	if s.sealed {
		return errors.SinkSealed()
	}

	src, ok := blob.(byteSource)
	if !ok {
		return errors.InvalidBlob(fmt.Sprintf("blob type %T does not expose its bytes", blob))
	}

	h := make(textproto.MIMEHeader)
	if named {
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`,
				escapeQuotes(name), escapeQuotes(fileName)))
	} else {
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q`, escapeQuotes(name)))
	}
	if ct := src.ContentType(); ct != "" {
		h.Set("Content-Type", ct)
	}

	pw, err := s.w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = pw.Write(src.Bytes())
	return err
}

// Boundary returns the multipart boundary in use.
func (s *Sink) Boundary() string {
	return s.w.Boundary()
}

// FormDataContentType returns the Content-Type header value for the body.
func (s *Sink) FormDataContentType() string {
	return s.w.FormDataContentType()
}

// Body writes the closing boundary and returns the full body. The sink
// is sealed afterwards; further appends fail.
func (s *Sink) Body() ([]byte, error) {
	if !s.sealed {
		if err := s.w.Close(); err != nil {
			return nil, err
		}
		s.sealed = true
	}
	return s.buf.Bytes(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
