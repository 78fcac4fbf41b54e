// Package multipart builds multipart/form-data request bodies against a
// host-provided sink capability.
//
// A Form is an ordered list of named parts, grown by chaining pure value
// transformations:
//
//	form := multipart.New().
//		Text("username", "seanmonstar").
//		Part("avatar", multipart.Bytes(img).
//			WithFileName("avatar.png"))
//
//	mt, err := multipart.Text(`{"a":1}`).WithMediaTypeString("application/json")
//
// At send time, Encode walks the form in insertion order and issues one
// sink operation per field:
//
//	s, err := multipart.Encode(form, memory.NewFactory())
//
// The sink owns the byte-level encoding (boundaries, buffering); this
// package only decides, per field, how the logical value is attached:
// plain string, named or unnamed blob, or native object pass-through.
// One host limitation is reproduced deliberately: a string value cannot
// carry an arbitrary content type, so text parts with a custom media
// type are promoted to attachments with the type forced to text/plain.
package multipart
