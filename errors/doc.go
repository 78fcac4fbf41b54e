// Package errors provides structured error types for the formdata library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending form field name and a cause
// chain, so callers can tell which field broke an encode.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindAppendFailed).
//		Field("avatar").
//		Cause(sinkErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidMime("not a valid mime")
//	err := errors.AppendFailed("avatar", sinkErr)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
