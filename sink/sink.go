package sink

// Blob is an opaque handle to a host-materialized binary object.
// Blobs are created by a Factory and consumed by the sink that owns them;
// the encoder never inspects their contents.
type Blob interface {
	// Size returns the byte length of the blob's contents.
	Size() int
}

// Native is a blob that was materialized by the host itself and carries
// its own embedded content type. When a native object is appended, the
// embedded type is authoritative and any separately configured media
// type is ignored.
type Native interface {
	Blob

	// ContentType returns the object's embedded media type, or "" if the
	// host left it unset.
	ContentType() string
}

// Factory creates sinks and materializes blobs for one host environment.
type Factory interface {
	// New creates an empty sink.
	New() (Sink, error)

	// BuildBlob materializes a binary object from raw bytes. An empty
	// mediaType leaves the blob's content type unset.
	BuildBlob(data []byte, mediaType string) (Blob, error)
}

// Sink accumulates encoded multipart fields. Implementations that
// support enumeration must preserve append order, including duplicate
// field names.
type Sink interface {
	// AppendString appends a plain string value; the sink applies its own
	// defaults for content type and disposition.
	AppendString(name, value string) error

	// AppendBlob appends a binary attachment without a file name.
	AppendBlob(name string, blob Blob) error

	// AppendBlobNamed appends a binary attachment reported under fileName.
	AppendBlobNamed(name string, blob Blob, fileName string) error

	// AppendNative appends a host-native object without a file name.
	AppendNative(name string, obj Native) error

	// AppendNativeNamed appends a host-native object under fileName.
	AppendNativeNamed(name string, obj Native, fileName string) error
}
