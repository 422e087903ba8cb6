// Package nrrd reads and writes the NRRD ("nearly raw raster data")
// scientific image format: a small text header followed by a raw binary
// pixel payload.
//
// A stream is parsed into an [Nrrd] record, the validated header plus the
// payload bytes:
//
//	rec, err := nrrd.Read(f)
//
// A record with the raw encoding can be reconstructed as a typed
// N-dimensional [Image], and any image can be encoded back to a record:
//
//	img, err := nrrd.ImageFromNrrd[float32](rec, 2)
//	err = nrrd.Write(img.Nrrd(), out)
//
// # Header model
//
// The header is line oriented. The first line is a magic token naming the
// format revision (NRRD0001 through NRRD0005). Each following line is a
// comment (starting with '#'), a structured field ("identifier: descriptor",
// unique by identifier), or, at revision 2 and newer, a free-form metadata
// entry ("key:=value", last occurrence wins). A blank line separates the
// header from the payload.
//
// Field identifiers are normalized to lower case. The structural fields
// (dimension, sizes, type, encoding, block size, endian) are validated
// across each other: sizes must match dimension, a block type needs a
// positive block size, and any scalar type wider than one byte needs an
// explicit endian. The payload length must equal the product of the sizes
// times the pixel width.
//
// # Encodings
//
// The ascii, gzip and bzip2 encodings are recognized in headers but are
// not decoded; converting such a record to an [Image] fails with
// [ErrUnsupportedEncoding]. Unknown encoding tokens are preserved verbatim.
//
// The package performs no logging and no retries; every failure is
// returned to the caller as an error that wraps one of the package
// sentinels or, for stream failures, the underlying I/O error.
package nrrd
