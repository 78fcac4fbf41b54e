package multipart

import "strings"

// HeaderEntry is one name/value pair of a part header.
type HeaderEntry struct {
	Name  string
	Value string
}

// Header is an ordered collection of part header entries. Duplicate
// names are allowed and insertion order is preserved; maps like
// net/http.Header would lose it.
type Header struct {
	entries []HeaderEntry
}

// Add returns a copy of the header with the entry appended.
func (h Header) Add(name, value string) Header {
	entries := make([]HeaderEntry, len(h.entries), len(h.entries)+1)
	copy(entries, h.entries)
	return Header{entries: append(entries, HeaderEntry{Name: name, Value: value})}
}

// Get returns the first value for name, matching case-insensitively.
func (h Header) Get(name string) (string, bool) {
	for _, e := range h.entries {
		if strings.EqualFold(e.Name, name) {
			return e.Value, true
		}
	}
	return "", false
}

// Values returns all values for name in insertion order.
func (h Header) Values(name string) []string {
	var vals []string
	for _, e := range h.entries {
		if strings.EqualFold(e.Name, name) {
			vals = append(vals, e.Value)
		}
	}
	return vals
}

// Names returns the header names in insertion order, duplicates included.
func (h Header) Names() []string {
	names := make([]string, len(h.entries))
	for i, e := range h.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of all entries in insertion order.
func (h Header) Entries() []HeaderEntry {
	out := make([]HeaderEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h Header) Len() int {
	return len(h.entries)
}
