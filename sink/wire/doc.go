// Package wire provides a sink that materializes a real
// multipart/form-data body, for hosts without a native form builder.
//
// Boundary selection and part framing are handled by the standard
// library's mime/multipart writer; the sink only maps the capability
// contract onto part headers. Blobs with an unset media type are
// written without a Content-Type part header, leaving the decoder's
// defaults in charge, which mirrors how a browser treats untyped blobs.
package wire
