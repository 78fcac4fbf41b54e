package host

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/formdata/multipart"
	"github.com/wippyai/formdata/sink"
	"github.com/wippyai/formdata/sink/memory"
)

// Namespace is the WIT interface path of the formdata sink capability.
const Namespace = "wippy:formdata/sink@0.1.0"

// Errno values returned by capability functions.
const (
	ErrnoOK        uint32 = 0
	ErrnoBadHandle uint32 = 1
	ErrnoAppend    uint32 = 2
	ErrnoMemory    uint32 = 3
)

// SinkHost exposes the form-data sink capability to guests. Sinks and
// blobs live in a handle table; guests refer to them by uint32 handles.
type SinkHost struct {
	resources *Table
	factory   sink.Factory
}

// NewSinkHost creates a capability host backed by factory. A nil
// factory defaults to the in-memory sink.
func NewSinkHost(factory sink.Factory) *SinkHost {
	if factory == nil {
		factory = memory.NewFactory()
	}
	return &SinkHost{
		resources: NewTable(),
		factory:   factory,
	}
}

// Namespace returns the WIT interface name.
func (h *SinkHost) Namespace() string {
	return Namespace
}

// Sink returns the host-side sink behind a guest handle, so the
// embedder can collect the populated sink after the guest finishes.
func (h *SinkHost) Sink(handle uint32) (sink.Sink, bool) {
	v, ok := h.resources.GetTyped(handle, TypeFormData)
	if !ok {
		return nil, false
	}
	return v.(sink.Sink), true
}

// ConstructorFormData creates an empty sink.
// [constructor]form-data() -> form-data
func (h *SinkHost) ConstructorFormData(_ context.Context) uint32 {
	s, err := h.factory.New()
	if err != nil {
		multipart.Logger().Warn("sink creation failed", zap.Error(err))
		return 0
	}
	return h.resources.Add(TypeFormData, s)
}

// MethodFormDataAppendString appends a plain string field.
// [method]form-data.append-string(name: string, value: string) -> errno
func (h *SinkHost) MethodFormDataAppendString(_ context.Context, self uint32, name, value string) uint32 {
	s, ok := h.Sink(self)
	if !ok {
		return ErrnoBadHandle
	}
	if err := s.AppendString(name, value); err != nil {
		return ErrnoAppend
	}
	return ErrnoOK
}

// MethodFormDataAppendBlob appends an unnamed blob field.
// [method]form-data.append-blob(name: string, blob: blob) -> errno
func (h *SinkHost) MethodFormDataAppendBlob(_ context.Context, self uint32, name string, blob uint32) uint32 {
	s, ok := h.Sink(self)
	if !ok {
		return ErrnoBadHandle
	}
	b, ok := h.blob(blob)
	if !ok {
		return ErrnoBadHandle
	}
	if err := s.AppendBlob(name, b); err != nil {
		return ErrnoAppend
	}
	return ErrnoOK
}

// MethodFormDataAppendBlobNamed appends a blob field under fileName.
// [method]form-data.append-blob-named(name: string, blob: blob, file-name: string) -> errno
func (h *SinkHost) MethodFormDataAppendBlobNamed(_ context.Context, self uint32, name string, blob uint32, fileName string) uint32 {
	s, ok := h.Sink(self)
	if !ok {
		return ErrnoBadHandle
	}
	b, ok := h.blob(blob)
	if !ok {
		return ErrnoBadHandle
	}
	if err := s.AppendBlobNamed(name, b, fileName); err != nil {
		return ErrnoAppend
	}
	return ErrnoOK
}

// MethodFormDataAppendNative appends a native object unchanged.
// [method]form-data.append-native(name: string, obj: blob) -> errno
func (h *SinkHost) MethodFormDataAppendNative(_ context.Context, self uint32, name string, obj uint32) uint32 {
	s, ok := h.Sink(self)
	if !ok {
		return ErrnoBadHandle
	}
	n, ok := h.native(obj)
	if !ok {
		return ErrnoBadHandle
	}
	if err := s.AppendNative(name, n); err != nil {
		return ErrnoAppend
	}
	return ErrnoOK
}

// MethodFormDataAppendNativeNamed appends a native object under fileName.
// [method]form-data.append-native-named(name: string, obj: blob, file-name: string) -> errno
func (h *SinkHost) MethodFormDataAppendNativeNamed(_ context.Context, self uint32, name string, obj uint32, fileName string) uint32 {
	s, ok := h.Sink(self)
	if !ok {
		return ErrnoBadHandle
	}
	n, ok := h.native(obj)
	if !ok {
		return ErrnoBadHandle
	}
	if err := s.AppendNativeNamed(name, n, fileName); err != nil {
		return ErrnoAppend
	}
	return ErrnoOK
}

// StaticBlobNew materializes a blob from bytes. An empty mediaType
// leaves the content type unset. Returns 0 on failure.
// [static]blob.new(data: list<u8>, media-type: string) -> blob
func (h *SinkHost) StaticBlobNew(_ context.Context, data []byte, mediaType string) uint32 {
	b, err := h.factory.BuildBlob(data, mediaType)
	if err != nil {
		multipart.Logger().Warn("blob creation failed", zap.Error(err))
		return 0
	}
	return h.resources.Add(TypeBlob, b)
}

// MethodBlobSize returns the blob's byte length, or 0 for a bad handle.
// [method]blob.size() -> u32
func (h *SinkHost) MethodBlobSize(_ context.Context, self uint32) uint32 {
	b, ok := h.blob(self)
	if !ok {
		return 0
	}
	return uint32(b.Size())
}

// ResourceDropFormData drops a form-data resource.
func (h *SinkHost) ResourceDropFormData(_ context.Context, self uint32) {
	h.resources.Remove(self)
}

// ResourceDropBlob drops a blob resource.
func (h *SinkHost) ResourceDropBlob(_ context.Context, self uint32) {
	h.resources.Remove(self)
}

// Register returns the capability functions under their WIT names.
func (h *SinkHost) Register() map[string]any {
	return map[string]any{
		"[constructor]form-data":                h.ConstructorFormData,
		"[method]form-data.append-string":       h.MethodFormDataAppendString,
		"[method]form-data.append-blob":         h.MethodFormDataAppendBlob,
		"[method]form-data.append-blob-named":   h.MethodFormDataAppendBlobNamed,
		"[method]form-data.append-native":       h.MethodFormDataAppendNative,
		"[method]form-data.append-native-named": h.MethodFormDataAppendNativeNamed,
		"[static]blob.new":                      h.StaticBlobNew,
		"[method]blob.size":                     h.MethodBlobSize,
		"[resource-drop]form-data":              h.ResourceDropFormData,
		"[resource-drop]blob":                   h.ResourceDropBlob,
	}
}

func (h *SinkHost) blob(handle uint32) (sink.Blob, bool) {
	v, ok := h.resources.GetTyped(handle, TypeBlob)
	if !ok {
		return nil, false
	}
	b, ok := v.(sink.Blob)
	return b, ok
}

func (h *SinkHost) native(handle uint32) (sink.Native, bool) {
	v, ok := h.resources.GetTyped(handle, TypeBlob)
	if !ok {
		return nil, false
	}
	n, ok := v.(sink.Native)
	return n, ok
}
