package host

import "sync"

// Resource type IDs for the formdata capability.
const (
	TypeFormData uint32 = 1
	TypeBlob     uint32 = 2
)

// Table maps opaque uint32 handles to host-side values. Handle 0 is
// reserved and always invalid. Freed handles are reused.
type Table struct {
	entries  []entry
	freeList []uint32
	mu       sync.RWMutex
}

type entry struct {
	value  any
	typeID uint32
	valid  bool
}

// NewTable creates an empty handle table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 16),
		freeList: make([]uint32, 0, 4),
	}
}

// Add stores a value and returns its handle.
func (t *Table) Add(typeID uint32, value any) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := entry{typeID: typeID, value: value, valid: true}

	if n := len(t.freeList); n > 0 {
		handle := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[handle-1] = e
		return handle
	}

	t.entries = append(t.entries, e)
	return uint32(len(t.entries))
}

// Get retrieves a value by handle.
func (t *Table) Get(handle uint32) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(handle)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// GetTyped retrieves a value only if it matches the expected type.
func (t *Table) GetTyped(handle, typeID uint32) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(handle)
	if !ok || e.typeID != typeID {
		return nil, false
	}
	return e.value, true
}

// Remove drops a resource and returns (value, true) if it existed.
func (t *Table) Remove(handle uint32) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.lookup(handle)
	if !ok {
		return nil, false
	}

	t.entries[handle-1] = entry{}
	t.freeList = append(t.freeList, handle)
	return e.value, true
}

// Len returns the number of live resources.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Clear drops all resources.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = t.entries[:0]
	t.freeList = t.freeList[:0]
}

func (t *Table) lookup(handle uint32) (entry, bool) {
	if handle == 0 || int(handle) > len(t.entries) {
		return entry{}, false
	}
	e := t.entries[handle-1]
	if !e.valid {
		return entry{}, false
	}
	return e, true
}
