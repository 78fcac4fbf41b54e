package multipart

import (
	"fmt"
	"strings"
)

// Part is one field of a multipart form: a payload plus metadata.
// Parts are immutable values; every builder method returns a modified
// copy, so sharing a part across forms is safe.
type Part struct {
	meta Metadata
	body Body
}

// Text makes a plain text part.
func Text(value string) Part {
	return Part{body: textBody(value)}
}

// Bytes makes a part from arbitrary bytes. The slice is copied.
func Bytes(data []byte) Part {
	return Part{body: bytesBody(data)}
}

// Stream makes a part from an opaque byte source: an io.Reader, or a
// host-native object (sink.Native) that is passed through to the sink
// unchanged with its embedded content type.
func Stream(source any) Part {
	return Part{body: streamBody(source)}
}

// WithMediaTypeString parses s and sets it as the part's media type.
// An unparsable string fails immediately with an invalid_mime error.
func (p Part) WithMediaTypeString(s string) (Part, error) {
	mt, err := ParseMediaType(s)
	if err != nil {
		return Part{}, err
	}
	return p.WithMediaType(mt), nil
}

// WithMediaType returns a copy with the media type set.
func (p Part) WithMediaType(mt MediaType) Part {
	p.meta = p.meta.WithMediaType(mt)
	return p
}

// WithFileName returns a copy with the file name set.
func (p Part) WithFileName(name string) Part {
	p.meta = p.meta.WithFileName(name)
	return p
}

// WithHeader returns a copy with the header collection replaced.
func (p Part) WithHeader(h Header) Part {
	p.meta = p.meta.WithHeader(h)
	return p
}

// Metadata returns the part's metadata.
func (p Part) Metadata() Metadata {
	return p.meta
}

// String returns a human-readable description of the part for logging.
// The exact format is not a contract.
func (p Part) String() string {
	var b strings.Builder
	b.WriteString("Part(")
	b.WriteString(p.body.Kind())
	if mt, ok := p.meta.MediaType(); ok {
		fmt.Fprintf(&b, " mime=%s", mt)
	}
	if fn, ok := p.meta.FileName(); ok {
		fmt.Fprintf(&b, " file=%q", fn)
	}
	if names := p.meta.Header().Names(); len(names) > 0 {
		fmt.Fprintf(&b, " headers=%v", names)
	}
	b.WriteByte(')')
	return b.String()
}
