//go:build !zstd && !servicepointall

package compression

// Zstd support is compiled out unless this module is built with the
// zstd or servicepointall build tag; the code is reserved but unusable,
// so Compress/Decompress with Code Zstd report InvalidCodeError.
