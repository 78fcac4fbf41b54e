package host

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// Instantiate binds the capability as a wazero host module under
// Namespace. Strings cross the boundary as (ptr, len) pairs into guest
// linear memory; byte lists the same way.
func Instantiate(ctx context.Context, r wazero.Runtime, h *SinkHost) (api.Module, error) {
	b := r.NewHostModuleBuilder(Namespace)

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context) uint32 {
			return h.ConstructorFormData(ctx)
		}).
		Export("[constructor]form-data")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, self, namePtr, nameLen, valPtr, valLen uint32) uint32 {
			name, ok := readString(m, namePtr, nameLen)
			if !ok {
				return ErrnoMemory
			}
			value, ok := readString(m, valPtr, valLen)
			if !ok {
				return ErrnoMemory
			}
			return h.MethodFormDataAppendString(ctx, self, name, value)
		}).
		Export("[method]form-data.append-string")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, self, namePtr, nameLen, blob uint32) uint32 {
			name, ok := readString(m, namePtr, nameLen)
			if !ok {
				return ErrnoMemory
			}
			return h.MethodFormDataAppendBlob(ctx, self, name, blob)
		}).
		Export("[method]form-data.append-blob")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, self, namePtr, nameLen, blob, fnPtr, fnLen uint32) uint32 {
			name, ok := readString(m, namePtr, nameLen)
			if !ok {
				return ErrnoMemory
			}
			fileName, ok := readString(m, fnPtr, fnLen)
			if !ok {
				return ErrnoMemory
			}
			return h.MethodFormDataAppendBlobNamed(ctx, self, name, blob, fileName)
		}).
		Export("[method]form-data.append-blob-named")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, self, namePtr, nameLen, obj uint32) uint32 {
			name, ok := readString(m, namePtr, nameLen)
			if !ok {
				return ErrnoMemory
			}
			return h.MethodFormDataAppendNative(ctx, self, name, obj)
		}).
		Export("[method]form-data.append-native")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, self, namePtr, nameLen, obj, fnPtr, fnLen uint32) uint32 {
			name, ok := readString(m, namePtr, nameLen)
			if !ok {
				return ErrnoMemory
			}
			fileName, ok := readString(m, fnPtr, fnLen)
			if !ok {
				return ErrnoMemory
			}
			return h.MethodFormDataAppendNativeNamed(ctx, self, name, obj, fileName)
		}).
		Export("[method]form-data.append-native-named")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, dataPtr, dataLen, mimePtr, mimeLen uint32) uint32 {
			data, ok := readBytes(m, dataPtr, dataLen)
			if !ok {
				return 0
			}
			mediaType, ok := readString(m, mimePtr, mimeLen)
			if !ok {
				return 0
			}
			return h.StaticBlobNew(ctx, data, mediaType)
		}).
		Export("[static]blob.new")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, self uint32) uint32 {
			return h.MethodBlobSize(ctx, self)
		}).
		Export("[method]blob.size")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, self uint32) {
			h.ResourceDropFormData(ctx, self)
		}).
		Export("[resource-drop]form-data")

	b.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, self uint32) {
			h.ResourceDropBlob(ctx, self)
		}).
		Export("[resource-drop]blob")

	return b.Instantiate(ctx)
}

func readString(m api.Module, ptr, length uint32) (string, bool) {
	data, ok := readBytes(m, ptr, length)
	if !ok {
		return "", false
	}
	return string(data), true
}

func readBytes(m api.Module, ptr, length uint32) ([]byte, bool) {
	if length == 0 {
		return nil, true
	}
	data, ok := m.Memory().Read(ptr, length)
	if !ok {
		return nil, false
	}
	// Memory().Read returns a view into linear memory; copy before the
	// guest can touch it again.
	owned := make([]byte, len(data))
	copy(owned, data)
	return owned, true
}
