// Package memory provides an in-memory sink that records appended
// fields the way browser FormData enumeration would report them.
//
// It backs the host capability module and the encoder's tests, and its
// Blob doubles as a native object (it carries an embedded content type),
// so pass-through behavior can be exercised without a real host.
package memory
