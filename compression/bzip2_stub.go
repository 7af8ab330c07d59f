//go:build !bzip2 && !servicepointall

package compression

// Bzip2 support is compiled out unless this module is built with the
// bzip2 or servicepointall build tag; the code is reserved but unusable,
// so Compress/Decompress with Code Bzip2 report InvalidCodeError.
