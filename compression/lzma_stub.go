//go:build !lzma && !servicepointall

package compression

// Lzma support is compiled out unless this module is built with the
// lzma or servicepointall build tag; the code is reserved but unusable,
// so Compress/Decompress with Code Lzma report InvalidCodeError.
