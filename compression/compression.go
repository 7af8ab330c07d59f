// Package compression implements the pluggable payload compression layer
// used by bitmap and bit-vector commands. A Code selects one of
// a small set of algorithms; which algorithms are actually linked into the
// binary is controlled by build tags, so callers only pay for the codecs
// they ask for.
package compression

import "fmt"

// Code identifies a compression algorithm on the wire. It is encoded as one
// of the header's big-endian uint16 fields.
type Code uint16

const (
	Uncompressed Code = 0x0000
	Zlib         Code = 0x677a
	Bzip2        Code = 0x627a
	Lzma         Code = 0x6c7a
	Zstd         Code = 0x7a73
)

func (c Code) String() string {
	switch c {
	case Uncompressed:
		return "Uncompressed"
	case Zlib:
		return "Zlib"
	case Bzip2:
		return "Bzip2"
	case Lzma:
		return "Lzma"
	case Zstd:
		return "Zstd"
	default:
		return fmt.Sprintf("Code(0x%04x)", uint16(c))
	}
}

// InvalidCodeError is returned for a Code that is not one of the five
// defined constants, or that names a real algorithm this build was not
// compiled to support.
type InvalidCodeError struct {
	Code Code
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid or unsupported compression code: %s", e.Code)
}

// DecompressionFailedError wraps the underlying codec error when a payload
// fails to decompress, e.g. because it was corrupted or truncated in
// transit.
type DecompressionFailedError struct {
	Code Code
	Err  error
}

func (e *DecompressionFailedError) Error() string {
	return fmt.Sprintf("decompression failed for %s: %v", e.Code, e.Err)
}

func (e *DecompressionFailedError) Unwrap() error {
	return e.Err
}

// Compress compresses data using the algorithm named by code.
func Compress(code Code, data []byte) ([]byte, error) {
	c, ok := Get(code)
	if !ok {
		return nil, &InvalidCodeError{Code: code}
	}
	out, err := c.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compression failed for %s: %w", code, err)
	}
	return out, nil
}

// Decompress decompresses data using the algorithm named by code.
func Decompress(code Code, data []byte) ([]byte, error) {
	c, ok := Get(code)
	if !ok {
		return nil, &InvalidCodeError{Code: code}
	}
	out, err := c.Decompress(data)
	if err != nil {
		return nil, &DecompressionFailedError{Code: code, Err: err}
	}
	return out, nil
}
