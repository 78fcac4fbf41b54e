// Package formdata builds multipart/form-data request bodies against a
// host-provided sink capability, such as a browser form builder reached
// from a WASM guest.
//
// The library is organized into several packages with distinct responsibilities:
//
//	formdata/
//	├── multipart/       Form, Part and the sink encoder
//	├── sink/            The sink capability contract
//	│   ├── memory/      In-memory FormData-analogue sink
//	│   └── wire/        multipart/form-data wire-format sink
//	├── host/            The capability exposed to WASM guests via wazero
//	├── errors/          Structured error types
//	└── cmd/formtool/    CLI and interactive form builder
//
// # Quick Start
//
// Build a form and encode it against a sink:
//
//	form := multipart.New().
//		Text("username", "amos").
//		Part("avatar", multipart.Bytes(img).WithFileName("avatar.png"))
//
//	s, err := multipart.Encode(form, memory.NewFactory())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// To expose the sink to a WASM guest, instantiate the capability host:
//
//	h := host.NewSinkHost(nil)
//	mod, err := host.Instantiate(ctx, r, h)
package formdata
