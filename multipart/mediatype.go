package multipart

import (
	"mime"

	"github.com/wippyai/formdata/errors"
)

// MediaType is a parsed MIME media type: an essence such as "text/plain"
// plus optional parameters.
type MediaType struct {
	essence string
	params  map[string]string
}

// TextPlain is the canonical plain-text media type.
var TextPlain = MediaType{essence: "text/plain"}

// ParseMediaType parses a media type string such as
// "application/json; charset=utf-8". Parse failures surface as
// invalid_mime errors at build time, never at encode time.
func ParseMediaType(s string) (MediaType, error) {
	essence, params, err := mime.ParseMediaType(s)
	if err != nil {
		return MediaType{}, errors.InvalidMime(s)
	}
	return MediaType{essence: essence, params: params}, nil
}

// Essence returns the type/subtype without parameters.
func (m MediaType) Essence() string {
	return m.essence
}

// Param returns the value of a parameter, if present.
func (m MediaType) Param(key string) (string, bool) {
	v, ok := m.params[key]
	return v, ok
}

// IsPlainText reports whether m is the canonical "text/plain" type with
// no parameters. "text/plain; charset=utf-8" is not canonical.
func (m MediaType) IsPlainText() bool {
	return m.essence == "text/plain" && len(m.params) == 0
}

// String formats the media type including parameters.
func (m MediaType) String() string {
	return mime.FormatMediaType(m.essence, m.params)
}
