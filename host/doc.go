// Package host exposes the form-data sink capability to WASM guests.
//
// Guests see the capability as the WIT interface
// "wippy:formdata/sink@0.1.0": form-data and blob resources referenced
// by opaque uint32 handles, with errno-style results. The host side is
// backed by any sink.Factory; the in-memory factory is the default, so
// the embedder can enumerate what the guest appended.
//
//	h := host.NewSinkHost(nil)
//	mod, err := host.Instantiate(ctx, r, h)
//
// Register returns the same functions keyed by WIT name for embedders
// that bind host modules reflectively instead of through wazero.
package host
