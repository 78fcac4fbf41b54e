package multipart

// Metadata carries the optional media type, optional file name, and
// headers of a part. The zero value is empty metadata.
type Metadata struct {
	mediaType   *MediaType
	fileName    string
	hasFileName bool
	header      Header
}

// NewMetadata returns empty metadata.
func NewMetadata() Metadata {
	return Metadata{}
}

// WithMediaType returns a copy with the media type set.
func (m Metadata) WithMediaType(mt MediaType) Metadata {
	m.mediaType = &mt
	return m
}

// WithFileName returns a copy with the file name set.
func (m Metadata) WithFileName(name string) Metadata {
	m.fileName = name
	m.hasFileName = true
	return m
}

// WithHeader returns a copy with the header collection replaced.
func (m Metadata) WithHeader(h Header) Metadata {
	m.header = h
	return m
}

// MediaType returns the configured media type, if set.
func (m Metadata) MediaType() (MediaType, bool) {
	if m.mediaType == nil {
		return MediaType{}, false
	}
	return *m.mediaType, true
}

// FileName returns the configured file name, if set.
func (m Metadata) FileName() (string, bool) {
	return m.fileName, m.hasFileName
}

// Header returns the part's header collection.
func (m Metadata) Header() Header {
	return m.header
}
