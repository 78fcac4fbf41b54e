// Package sink defines the capability contract between the multipart
// encoder and the host object that accumulates encoded fields.
//
// The byte-level multipart encoding (boundary selection, content length,
// transfer) is the sink's concern, not the encoder's. A sink may be a
// browser FormData object reached through a guest binding, the in-memory
// double in sink/memory, or the wire-format writer in sink/wire.
//
// A Factory ties sink creation and blob materialization to one host
// environment so that blobs are never appended to a sink from a
// different host.
package sink
