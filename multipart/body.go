package multipart

type bodyKind uint8

const (
	bodyText bodyKind = iota
	bodyBytes
	bodyStream
)

// Body is the payload of a part before encoding: plain text, raw bytes,
// or an opaque stream source. The variant set deliberately excludes a
// multipart form, so nesting is impossible to express. A stream source
// may be an io.Reader or a host-native object (sink.Native); the
// encoder distinguishes the two at the host boundary.
type Body struct {
	kind   bodyKind
	text   string
	data   []byte
	source any
}

func textBody(value string) Body {
	return Body{kind: bodyText, text: value}
}

func bytesBody(data []byte) Body {
	// Parts are immutable values; don't alias the caller's slice.
	owned := make([]byte, len(data))
	copy(owned, data)
	return Body{kind: bodyBytes, data: owned}
}

func streamBody(source any) Body {
	return Body{kind: bodyStream, source: source}
}

// Kind returns "text", "bytes", or "stream" for introspection.
func (b Body) Kind() string {
	switch b.kind {
	case bodyText:
		return "text"
	case bodyBytes:
		return "bytes"
	default:
		return "stream"
	}
}
