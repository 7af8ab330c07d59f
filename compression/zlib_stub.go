//go:build !zlib && !servicepointall

package compression

// Zlib support is compiled out unless this module is built with the zlib
// or servicepointall build tag; the code is reserved but unusable, so
// Compress/Decompress with Code Zlib report InvalidCodeError.
