package multipart

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/formdata/errors"
	"github.com/wippyai/formdata/sink"
)

// Encode creates an empty sink from factory and appends every field of
// the form to it, strictly in insertion order. Exactly one sink
// operation is issued per field. The first failure aborts the remaining
// fields and surfaces wrapped with the offending field's name; the
// partially populated sink is discarded. Encoding is not idempotent, so
// retries must start over with a fresh Encode call.
func Encode(form Form, factory sink.Factory) (sink.Sink, error) {
	s, err := factory.New()
	if err != nil {
		return nil, errors.SinkCreation(err)
	}

	for _, fld := range form.inner.fields {
		if err := appendField(s, factory, fld.name, fld.field); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func appendField(s sink.Sink, factory sink.Factory, name string, p Part) error {
	Logger().Debug("append field",
		zap.String("name", name),
		zap.String("kind", p.body.Kind()))

	switch p.body.kind {
	case bodyStream:
		return appendStream(s, factory, name, p)
	case bodyText:
		return appendText(s, factory, name, p)
	default:
		// Raw bytes travel with the configured media type unmodified;
		// unset is allowed.
		return appendAsBlob(s, factory, name, p.meta, p.body.data, mediaTypeString(p.meta))
	}
}

func appendStream(s sink.Sink, factory sink.Factory, name string, p Part) error {
	switch src := p.body.source.(type) {
	case Form, *Form:
		return errors.NestedMultipart(name)

	case sink.Native:
		// The object's embedded content type is authoritative; a media
		// type configured on the part is ignored here.
		var err error
		if fn, ok := p.meta.FileName(); ok {
			err = s.AppendNativeNamed(name, src, fn)
		} else {
			err = s.AppendNative(name, src)
		}
		if err != nil {
			return errors.AppendFailed(name, err)
		}
		return nil

	case io.Reader:
		data, err := io.ReadAll(src)
		if err != nil {
			return errors.AppendFailed(name, err)
		}
		return appendAsBlob(s, factory, name, p.meta, data, mediaTypeString(p.meta))

	default:
		return errors.UnsupportedValue(name, fmt.Sprintf("%T", src))
	}
}

func appendText(s sink.Sink, factory sink.Factory, name string, p Part) error {
	mt, hasType := p.meta.MediaType()
	_, hasFileName := p.meta.FileName()

	// Fast path: a default-typed string with no file name travels as a
	// plain value and the sink applies its own defaults.
	if (!hasType || mt.IsPlainText()) && !hasFileName {
		if err := s.AppendString(name, p.body.text); err != nil {
			return errors.AppendFailed(name, err)
		}
		return nil
	}

	// The host cannot attach an arbitrary content type to a string
	// value, so a configured type is forced down to text/plain before
	// the text is promoted to a binary attachment.
	effective := ""
	if hasType {
		effective = TextPlain.String()
	}

	return appendAsBlob(s, factory, name, p.meta, []byte(p.body.text), effective)
}

func appendAsBlob(s sink.Sink, factory sink.Factory, name string, meta Metadata, data []byte, mediaType string) error {
	blob, err := factory.BuildBlob(data, mediaType)
	if err != nil {
		return errors.AppendFailed(name, err)
	}

	if fn, ok := meta.FileName(); ok {
		err = s.AppendBlobNamed(name, blob, fn)
	} else {
		err = s.AppendBlob(name, blob)
	}
	if err != nil {
		return errors.AppendFailed(name, err)
	}
	return nil
}

// mediaTypeString returns the configured media type formatted for the
// sink, or "" when unset.
func mediaTypeString(meta Metadata) string {
	if mt, ok := meta.MediaType(); ok {
		return mt.String()
	}
	return ""
}
